package service

import (
	"sort"
	"time"

	"portfoliowatch/internal/domain"
	"portfoliowatch/internal/repository"
)

type AlertService interface {
	// List returns alerts within the given time range ("1h", "24h", "7d",
	// "30d" or "all"), newest first. Unknown ranges behave like "all".
	List(timeRange string) ([]domain.Alert, error)
}

type alertServiceHandler struct {
	AlertRepository repository.AlertRepository
}

func NewAlertService(alertRepository repository.AlertRepository) AlertService {
	return alertServiceHandler{AlertRepository: alertRepository}
}

var timeRanges = map[string]time.Duration{
	"1h":  time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

func (h alertServiceHandler) List(timeRange string) ([]domain.Alert, error) {
	alerts, err := h.AlertRepository.List()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	filtered := []domain.Alert{}
	for _, alert := range alerts {
		window, ok := timeRanges[timeRange]
		if ok && now.Sub(alert.Timestamp) > window {
			continue
		}
		filtered = append(filtered, alert)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.After(filtered[j].Timestamp)
	})
	return filtered, nil
}
