package api

import (
	"portfoliowatch/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getProfile(c *gin.Context) {
	profile, err := m.AuthService.GetProfile()
	if err != nil {
		returnErrorJsonCode(err, c, 404)
		return
	}
	c.JSON(200, profile)
}

func (m ApiHandler) updateProfile(c *gin.Context) {
	var requestBody domain.ProfileUpdate
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile, err := m.AuthService.UpdateProfile(requestBody)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, profile)
}
