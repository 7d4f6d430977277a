package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"portfoliowatch/internal/domain"

	"github.com/google/uuid"
)

const alertsKey = "alerts"

type AlertRepository interface {
	List() ([]domain.Alert, error)
	Add(alert domain.Alert) (*domain.Alert, error)
}

type AlertRepositoryHandler struct {
	Store Store
}

func NewAlertRepository(store Store) AlertRepository {
	return AlertRepositoryHandler{Store: store}
}

func (h AlertRepositoryHandler) List() ([]domain.Alert, error) {
	value, ok, err := h.Store.Read(alertsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load alerts: %w", err)
	}
	if !ok {
		return []domain.Alert{}, nil
	}

	alerts := []domain.Alert{}
	if err := json.Unmarshal(value, &alerts); err != nil {
		return nil, fmt.Errorf("failed to decode alerts: %w", err)
	}
	return alerts, nil
}

func (h AlertRepositoryHandler) Add(alert domain.Alert) (*domain.Alert, error) {
	alert.ID = uuid.NewString()
	alert.Timestamp = time.Now().UTC()

	alerts, err := h.List()
	if err != nil {
		return nil, err
	}
	// newest first
	alerts = append([]domain.Alert{alert}, alerts...)

	value, err := json.Marshal(alerts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode alerts: %w", err)
	}
	if err := h.Store.Write(alertsKey, value); err != nil {
		return nil, fmt.Errorf("failed to save alerts: %w", err)
	}
	return &alert, nil
}
