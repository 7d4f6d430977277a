package repository

import (
	"fmt"

	"portfoliowatch/internal/domain"
)

// mock holdings used to populate a brand-new install so the dashboard has
// something to show before the user adds their own assets
var seedAssets = []domain.Asset{
	{
		Ticker:           "PETR4",
		Name:             "Petrobras PN",
		Type:             domain.AssetTypeStock,
		Price:            38.42,
		Change:           1.25,
		Quantity:         100,
		Sector:           "Oil & Gas",
		MonthlyChange:    3.1,
		YearlyChange:     18.4,
		LastDividend:     1.12,
		DividendYield:    11.3,
		Volume:           52_000_000,
		HistoricalPrices: []float64{35.1, 36.2, 35.8, 37.0, 37.9, 38.42},
	},
	{
		Ticker:           "VALE3",
		Name:             "Vale ON",
		Type:             domain.AssetTypeStock,
		Price:            61.75,
		Change:           -0.84,
		Quantity:         50,
		Sector:           "Mining",
		MonthlyChange:    -1.9,
		YearlyChange:     6.2,
		LastDividend:     2.35,
		DividendYield:    8.7,
		Volume:           38_000_000,
		HistoricalPrices: []float64{64.0, 63.1, 62.5, 62.9, 62.0, 61.75},
	},
	{
		Ticker:           "ITUB4",
		Name:             "Itaú Unibanco PN",
		Type:             domain.AssetTypeStock,
		Price:            33.18,
		Change:           0.42,
		Quantity:         120,
		Sector:           "Banking",
		MonthlyChange:    2.4,
		YearlyChange:     14.9,
		LastDividend:     0.27,
		DividendYield:    5.6,
		Volume:           27_000_000,
		HistoricalPrices: []float64{31.5, 32.0, 32.4, 32.1, 32.8, 33.18},
	},
	{
		Ticker:           "HGLG11",
		Name:             "CSHG Logística FII",
		Type:             domain.AssetTypeFii,
		Price:            162.30,
		Change:           0.15,
		Quantity:         30,
		MonthlyChange:    0.8,
		YearlyChange:     9.6,
		LastDividend:     1.10,
		DividendYield:    8.1,
		Volume:           95_000,
		HistoricalPrices: []float64{158.0, 159.4, 160.1, 161.0, 161.8, 162.3},
	},
	{
		Ticker:           "MXRF11",
		Name:             "Maxi Renda FII",
		Type:             domain.AssetTypeFii,
		Price:            10.45,
		Change:           -0.10,
		Quantity:         400,
		MonthlyChange:    0.3,
		YearlyChange:     7.8,
		LastDividend:     0.10,
		DividendYield:    12.2,
		Volume:           1_800_000,
		HistoricalPrices: []float64{10.2, 10.3, 10.25, 10.4, 10.5, 10.45},
	},
}

var seedAlerts = []domain.Alert{
	{
		Ticker:  "PETR4",
		Message: "PETR4 added to portfolio",
		Type:    domain.AlertTypeSuccess,
	},
	{
		Ticker:  "HGLG11",
		Message: "HGLG11 dividend payout registered",
		Type:    domain.AlertTypeSuccess,
	},
	{
		Ticker:  "VALE3",
		Message: "failed to refresh VALE3 quote",
		Type:    domain.AlertTypeError,
	},
}

// SeedMockData populates the asset and alert stores with mock records, but
// only when the corresponding store is empty.
func SeedMockData(assets AssetRepository, alerts AlertRepository) error {
	existingAssets, err := assets.List()
	if err != nil {
		return fmt.Errorf("failed to check existing assets: %w", err)
	}
	if len(existingAssets) == 0 {
		for _, a := range seedAssets {
			if _, err := assets.Add(a); err != nil {
				return fmt.Errorf("failed to seed asset %s: %w", a.Ticker, err)
			}
		}
	}

	existingAlerts, err := alerts.List()
	if err != nil {
		return fmt.Errorf("failed to check existing alerts: %w", err)
	}
	if len(existingAlerts) == 0 {
		for _, a := range seedAlerts {
			if _, err := alerts.Add(a); err != nil {
				return fmt.Errorf("failed to seed alert for %s: %w", a.Ticker, err)
			}
		}
	}

	return nil
}
