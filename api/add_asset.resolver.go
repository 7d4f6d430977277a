package api

import (
	"portfoliowatch/internal/domain"
	"portfoliowatch/internal/service"

	"github.com/gin-gonic/gin"
)

type addAssetRequest struct {
	Type     string  `json:"type" binding:"required"`
	Ticker   string  `json:"ticker" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
}

func (m ApiHandler) addAsset(c *gin.Context) {
	var requestBody addAssetRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	asset, err := m.PortfolioService.AddAsset(service.AddAssetInput{
		Type:     domain.AssetType(requestBody.Type),
		Ticker:   requestBody.Ticker,
		Quantity: requestBody.Quantity,
		Price:    requestBody.Price,
	})
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, asset)
}
