package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) exportAssets(c *gin.Context) {
	out, err := m.PortfolioService.ExportCSV()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="assets.csv"`)
	c.Data(200, "text/csv", []byte(out))
}
