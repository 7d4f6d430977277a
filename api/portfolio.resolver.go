package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) portfolio(c *gin.Context) {
	statistics, err := m.PortfolioService.Statistics()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, statistics)
}
