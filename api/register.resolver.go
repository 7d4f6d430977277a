package api

import (
	"portfoliowatch/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (m ApiHandler) register(c *gin.Context) {
	var requestBody registerRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	session, err := m.AuthService.SignUp(service.SignUpInput{
		Name:     requestBody.Name,
		Email:    requestBody.Email,
		Password: requestBody.Password,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, session)
}
