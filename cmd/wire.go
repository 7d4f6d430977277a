package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"portfoliowatch/api"
	"portfoliowatch/internal/repository"
	"portfoliowatch/internal/service"
)

const (
	defaultDataDir       = "./data"
	defaultSigningSecret = "portfoliowatch-dev-secret"
	defaultAuthDelayMs   = 1000
)

// InitializeDependencies wires the file-backed stores, services, and API
// handler from environment configuration.
func InitializeDependencies() (*api.ApiHandler, error) {
	dataDir := os.Getenv("PORTFOLIOWATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = defaultDataDir
	}

	store, err := repository.NewFileStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	assetRepository := repository.NewAssetRepository(store)
	alertRepository := repository.NewAlertRepository(store)
	userRepository := repository.NewUserRepository(store)

	if err := repository.SeedMockData(assetRepository, alertRepository); err != nil {
		return nil, fmt.Errorf("failed to seed mock data: %w", err)
	}

	signingSecret := os.Getenv("PORTFOLIOWATCH_JWT_SECRET")
	if signingSecret == "" {
		signingSecret = defaultSigningSecret
	}

	authDelay := time.Duration(envInt("PORTFOLIOWATCH_AUTH_DELAY_MS", defaultAuthDelayMs)) * time.Millisecond

	handler := &api.ApiHandler{
		PortfolioService: service.NewPortfolioService(assetRepository, alertRepository),
		AlertService:     service.NewAlertService(alertRepository),
		AuthService:      service.NewAuthService(userRepository, signingSecret, authDelay),
		SigningSecret:    signingSecret,
	}
	return handler, nil
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
