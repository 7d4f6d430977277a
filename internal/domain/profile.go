package domain

import "time"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TradingExperience string

const (
	TradingExperienceBeginner     TradingExperience = "beginner"
	TradingExperienceIntermediate TradingExperience = "intermediate"
	TradingExperienceAdvanced     TradingExperience = "advanced"
	TradingExperienceProfessional TradingExperience = "professional"
)

type NotificationPreferences struct {
	Email         bool `json:"email"`
	Push          bool `json:"push"`
	PriceAlerts   bool `json:"priceAlerts"`
	NewsAlerts    bool `json:"newsAlerts"`
	MarketUpdates bool `json:"marketUpdates"`
}

type Profile struct {
	ID                string                  `json:"id"`
	Name              string                  `json:"name"`
	Email             string                  `json:"email"`
	Phone             string                  `json:"phone"`
	Occupation        string                  `json:"occupation"`
	TradingExperience TradingExperience       `json:"tradingExperience"`
	PreferredMarkets  []string                `json:"preferredMarkets"`
	Notifications     NotificationPreferences `json:"notifications"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// ProfileUpdate is a partial update; nil fields are left untouched.
type ProfileUpdate struct {
	Name              *string                        `json:"name"`
	Phone             *string                        `json:"phone"`
	Occupation        *string                        `json:"occupation"`
	TradingExperience *TradingExperience             `json:"tradingExperience"`
	PreferredMarkets  []string                       `json:"preferredMarkets"`
	Notifications     *NotificationPreferencesUpdate `json:"notifications"`
}

type NotificationPreferencesUpdate struct {
	Email         *bool `json:"email"`
	Push          *bool `json:"push"`
	PriceAlerts   *bool `json:"priceAlerts"`
	NewsAlerts    *bool `json:"newsAlerts"`
	MarketUpdates *bool `json:"marketUpdates"`
}
