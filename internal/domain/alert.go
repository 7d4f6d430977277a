package domain

import "time"

type AlertType string

const (
	AlertTypeSuccess AlertType = "success"
	AlertTypeError   AlertType = "error"
)

// Alert is a notification record. Alerts are append-only and displayed in
// reverse-chronological order.
type Alert struct {
	ID        string    `json:"id"`
	Ticker    string    `json:"ticker"`
	Message   string    `json:"message"`
	Type      AlertType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}
