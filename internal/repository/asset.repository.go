package repository

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"portfoliowatch/internal/domain"

	"github.com/google/uuid"
)

const assetsKey = "assets"

type AssetRepository interface {
	List() ([]domain.Asset, error)
	Add(asset domain.Asset) (*domain.Asset, error)
	Overwrite(assets []domain.Asset) error
}

type AssetRepositoryHandler struct {
	Store Store
}

func NewAssetRepository(store Store) AssetRepository {
	return AssetRepositoryHandler{Store: store}
}

func (h AssetRepositoryHandler) List() ([]domain.Asset, error) {
	value, ok, err := h.Store.Read(assetsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets: %w", err)
	}
	if !ok {
		return []domain.Asset{}, nil
	}

	assets := []domain.Asset{}
	if err := json.Unmarshal(value, &assets); err != nil {
		return nil, fmt.Errorf("failed to decode assets: %w", err)
	}
	return assets, nil
}

func (h AssetRepositoryHandler) Add(asset domain.Asset) (*domain.Asset, error) {
	asset.Ticker = strings.ToUpper(asset.Ticker)
	if asset.Name == "" {
		asset.Name = asset.Ticker
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}

	asset.ID = uuid.NewString()
	asset.LastUpdate = time.Now().UTC()
	if asset.HistoricalPrices == nil {
		asset.HistoricalPrices = []float64{}
	}

	assets, err := h.List()
	if err != nil {
		return nil, err
	}
	assets = append(assets, asset)

	if err := h.Overwrite(assets); err != nil {
		return nil, err
	}
	return &asset, nil
}

func (h AssetRepositoryHandler) Overwrite(assets []domain.Asset) error {
	value, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("failed to encode assets: %w", err)
	}
	if err := h.Store.Write(assetsKey, value); err != nil {
		return fmt.Errorf("failed to save assets: %w", err)
	}
	return nil
}
