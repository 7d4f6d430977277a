package api

import (
	"github.com/gin-gonic/gin"
)

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

func (m ApiHandler) forgotPassword(c *gin.Context) {
	var requestBody forgotPasswordRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.AuthService.ForgotPassword(requestBody.Email); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, map[string]string{"message": "ok"})
}
