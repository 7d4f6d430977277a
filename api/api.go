package api

import (
	"fmt"
	"time"

	"portfoliowatch/internal/logger"
	"portfoliowatch/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	PortfolioService service.PortfolioService
	AlertService     service.AlertService
	AuthService      service.AuthService
	SigningSecret    string
}

func (m ApiHandler) StartApi(port int) error {
	router := m.buildRouter()
	return router.Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliowatch"})
	})
	router.POST("/auth/login", m.login)
	router.POST("/auth/register", m.register)
	router.POST("/auth/forgotPassword", m.forgotPassword)

	authed := router.Group("/", m.requireSession)
	authed.GET("/portfolio", m.portfolio)
	authed.GET("/assets", m.getAssets)
	authed.POST("/assets", m.addAsset)
	authed.GET("/assets/export", m.exportAssets)
	authed.GET("/alerts", m.getAlerts)
	authed.GET("/profile", m.getProfile)
	authed.PATCH("/profile", m.updateProfile)
	authed.POST("/auth/logout", m.logout)

	return router
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Errorw("request failed", "route", c.Request.URL.Path, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	logger.Infow("request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"ip", ctx.ClientIP(),
	)
}
