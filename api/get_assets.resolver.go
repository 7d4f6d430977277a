package api

import (
	"portfoliowatch/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getAssets(c *gin.Context) {
	filter := domain.DefaultAssetFilter()
	if t := c.Query("type"); t != "" {
		filter.Type = domain.AssetTypeFilter(t)
	}
	if sortBy := c.Query("sortBy"); sortBy != "" {
		filter.SortBy = domain.AssetSortField(sortBy)
	}
	if order := c.Query("order"); order != "" {
		filter.Order = domain.SortOrder(order)
	}

	assets, err := m.PortfolioService.ListAssets(filter)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, assets)
}
