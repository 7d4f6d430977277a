package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAlerts(c *gin.Context) {
	timeRange := c.DefaultQuery("timeRange", "all")

	alerts, err := m.AlertService.List(timeRange)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, alerts)
}
