package domain

import (
	"fmt"
	"time"
)

type AssetType string

const (
	AssetTypeStock AssetType = "stock"
	AssetTypeFii   AssetType = "fii"
)

// Asset is a single tracked holding. HistoricalPrices is an ordered series of
// past unit prices; all assets in a portfolio are assumed to share the same
// sampling grid.
type Asset struct {
	ID               string    `json:"id" csv:"id"`
	Ticker           string    `json:"ticker" csv:"ticker"`
	Name             string    `json:"name" csv:"name"`
	Type             AssetType `json:"type" csv:"type"`
	Price            float64   `json:"price" csv:"price"`
	Change           float64   `json:"change" csv:"change"`
	Quantity         float64   `json:"quantity" csv:"quantity"`
	Sector           string    `json:"sector,omitempty" csv:"sector"`
	MonthlyChange    float64   `json:"monthlyChange" csv:"monthlyChange"`
	YearlyChange     float64   `json:"yearlyChange" csv:"yearlyChange"`
	LastDividend     float64   `json:"lastDividend" csv:"lastDividend"`
	DividendYield    float64   `json:"dividendYield" csv:"dividendYield"`
	Volume           float64   `json:"volume" csv:"volume"`
	HistoricalPrices []float64 `json:"historicalPrices" csv:"-"`
	LastUpdate       time.Time `json:"lastUpdate" csv:"lastUpdate"`
}

func (a Asset) Validate() error {
	if a.Ticker == "" {
		return fmt.Errorf("asset ticker must not be empty")
	}
	if a.Type != AssetTypeStock && a.Type != AssetTypeFii {
		return fmt.Errorf("unknown asset type %q", a.Type)
	}
	if a.Price < 0 {
		return fmt.Errorf("asset price must be >= 0. got %f", a.Price)
	}
	if a.Quantity < 0 {
		return fmt.Errorf("asset quantity must be >= 0. got %f", a.Quantity)
	}
	return nil
}

type AssetTypeFilter string

const (
	AssetTypeFilterAll   AssetTypeFilter = "all"
	AssetTypeFilterStock AssetTypeFilter = "stock"
	AssetTypeFilterFii   AssetTypeFilter = "fii"
)

type AssetSortField string

const (
	AssetSortByName   AssetSortField = "name"
	AssetSortByPrice  AssetSortField = "price"
	AssetSortByChange AssetSortField = "change"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type AssetFilter struct {
	Type   AssetTypeFilter
	SortBy AssetSortField
	Order  SortOrder
}

func DefaultAssetFilter() AssetFilter {
	return AssetFilter{
		Type:   AssetTypeFilterAll,
		SortBy: AssetSortByName,
		Order:  SortOrderAsc,
	}
}
