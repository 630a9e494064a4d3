package models

import "github.com/Princebca/heatshield-backend/internal/risk"

// ForecastRequest asks for a personalized risk forecast. Coordinates are
// optional; the configured default location is used when omitted.
type ForecastRequest struct {
	UserID    string   `json:"user_id"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Forecast bundles the environmental readings with the risk assessment.
type Forecast struct {
	Weather *Weather             `json:"weather"`
	AQI     *AirQuality          `json:"aqi"`
	Risk    *risk.RiskAssessment `json:"risk"`
}

// ForecastResponse wraps a forecast.
type ForecastResponse struct {
	Forecast *Forecast `json:"forecast"`
	Success  bool      `json:"success"`
}
