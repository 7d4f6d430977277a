package service

import (
	"fmt"
	"sort"
	"strings"

	"portfoliowatch/internal/calculator"
	"portfoliowatch/internal/domain"
	"portfoliowatch/internal/repository"

	"github.com/gocarina/gocsv"
)

type PortfolioService interface {
	AddAsset(input AddAssetInput) (*domain.Asset, error)
	ListAssets(filter domain.AssetFilter) ([]domain.Asset, error)
	Statistics() (*calculator.PortfolioStatistics, error)
	ExportCSV() (string, error)
}

type portfolioServiceHandler struct {
	AssetRepository repository.AssetRepository
	AlertRepository repository.AlertRepository
}

func NewPortfolioService(assetRepository repository.AssetRepository, alertRepository repository.AlertRepository) PortfolioService {
	return portfolioServiceHandler{
		AssetRepository: assetRepository,
		AlertRepository: alertRepository,
	}
}

type AddAssetInput struct {
	Type     domain.AssetType
	Ticker   string
	Quantity float64
	Price    float64
}

func (h portfolioServiceHandler) AddAsset(input AddAssetInput) (*domain.Asset, error) {
	if strings.TrimSpace(input.Ticker) == "" {
		return nil, fmt.Errorf("ticker must not be empty")
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be > 0. got %f", input.Quantity)
	}
	if input.Price <= 0 {
		return nil, fmt.Errorf("price must be > 0. got %f", input.Price)
	}

	asset, err := h.AssetRepository.Add(domain.Asset{
		Ticker:           strings.TrimSpace(input.Ticker),
		Type:             input.Type,
		Price:            input.Price,
		Quantity:         input.Quantity,
		HistoricalPrices: []float64{},
	})
	if err != nil {
		return nil, err
	}

	_, err = h.AlertRepository.Add(domain.Alert{
		Ticker:  asset.Ticker,
		Message: fmt.Sprintf("%s added to portfolio", asset.Ticker),
		Type:    domain.AlertTypeSuccess,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record alert for %s: %w", asset.Ticker, err)
	}

	return asset, nil
}

func (h portfolioServiceHandler) ListAssets(filter domain.AssetFilter) ([]domain.Asset, error) {
	assets, err := h.AssetRepository.List()
	if err != nil {
		return nil, err
	}

	filtered := []domain.Asset{}
	for _, a := range assets {
		if filter.Type == domain.AssetTypeFilterAll || string(a.Type) == string(filter.Type) {
			filtered = append(filtered, a)
		}
	}

	sortAssets(filtered, filter)
	return filtered, nil
}

func sortAssets(assets []domain.Asset, filter domain.AssetFilter) {
	direction := 1
	if filter.Order == domain.SortOrderDesc {
		direction = -1
	}

	sort.SliceStable(assets, func(i, j int) bool {
		switch filter.SortBy {
		case domain.AssetSortByPrice:
			return direction*compareFloats(assets[i].Price, assets[j].Price) < 0
		case domain.AssetSortByChange:
			return direction*compareFloats(assets[i].Change, assets[j].Change) < 0
		default:
			return direction*strings.Compare(assets[i].Name, assets[j].Name) < 0
		}
	})
}

func compareFloats(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

func (h portfolioServiceHandler) Statistics() (*calculator.PortfolioStatistics, error) {
	assets, err := h.AssetRepository.List()
	if err != nil {
		return nil, err
	}

	statistics := calculator.ComputeStatistics(assets)
	return &statistics, nil
}

func (h portfolioServiceHandler) ExportCSV() (string, error) {
	assets, err := h.AssetRepository.List()
	if err != nil {
		return "", err
	}

	out, err := gocsv.MarshalString(&assets)
	if err != nil {
		return "", fmt.Errorf("failed to encode assets as csv: %w", err)
	}
	return out, nil
}
