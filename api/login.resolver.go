package api

import (
	"portfoliowatch/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (m ApiHandler) login(c *gin.Context) {
	var requestBody loginRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	session, err := m.AuthService.SignIn(service.SignInInput{
		Email:    requestBody.Email,
		Password: requestBody.Password,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, session)
}

func (m ApiHandler) logout(c *gin.Context) {
	if err := m.AuthService.SignOut(); err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, map[string]string{"message": "ok"})
}
