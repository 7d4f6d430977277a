package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

const sessionContextKey = "SESSION"

type SessionClaims struct {
	UserID string
	Name   string
	Email  string
}

func parseSessionToken(tokenStr string, signingSecret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	exp, ok := claims["exp"].(float64)
	if !ok || time.Now().UTC().Unix() > int64(exp) {
		return nil, fmt.Errorf("session token is expired")
	}

	session := &SessionClaims{}
	if sub, ok := claims["sub"].(string); ok {
		session.UserID = sub
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	return session, nil
}

func (m ApiHandler) requireSession(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		returnErrorJsonCode(fmt.Errorf("missing bearer token"), c, 401)
		return
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	session, err := parseSessionToken(tokenStr, m.SigningSecret)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Set(sessionContextKey, session)
	c.Next()
}
