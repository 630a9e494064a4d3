// Package weather provides current weather observations and the heat-index
// calculation used by the risk engine.
package weather

import (
	"errors"
	"time"
)

// Weather errors.
var (
	ErrProviderUnavailable = errors.New("weather provider unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// Reading represents ambient conditions at a specific point and time.
// Readings are immutable once produced by a provider.
type Reading struct {
	// Temperature is the dry-bulb temperature in Celsius.
	Temperature float64

	// HeatIndex is the perceived ("feels-like") temperature in Celsius,
	// derived from Temperature and Humidity via HeatIndex().
	HeatIndex float64

	// Humidity is the relative humidity percentage (0-100).
	Humidity float64

	// UVIndex is the UV index (0-11+).
	UVIndex float64

	// Description is a human-readable condition summary.
	Description string

	// Location is a human-readable place name, if known.
	Location string

	// Timestamp is when the reading was produced.
	Timestamp time.Time
}
