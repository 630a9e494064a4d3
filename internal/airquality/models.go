// Package airquality provides air quality readings on the Indian AQI scale.
package airquality

import (
	"errors"
	"time"
)

// Air quality errors.
var (
	ErrProviderUnavailable = errors.New("air quality provider unavailable")
	ErrInvalidCoordinates  = errors.New("invalid coordinates")
)

// Category labels an AQI value per Indian national standards.
type Category string

const (
	CategoryGood         Category = "Good"
	CategorySatisfactory Category = "Satisfactory"
	CategoryModerate     Category = "Moderate"
	CategoryPoor         Category = "Poor"
	CategoryVeryPoor     Category = "Very Poor"
	CategorySevere       Category = "Severe"
)

// Reading represents pollutant concentrations at a specific point and time.
// Readings are immutable once produced by a provider.
type Reading struct {
	// AQI on the Indian 0-500 scale.
	AQI float64

	// Category is the Indian AQI band label for AQI.
	Category Category

	// Pollutant concentrations in source units (µg/m³ except CO).
	PM25 float64
	PM10 float64
	NO2  float64
	SO2  float64
	CO   float64
	O3   float64

	// Timestamp is when the reading was produced.
	Timestamp time.Time
}

// indianAQIBreakpoints maps the upstream 1-5 coarse index to the Indian scale.
var indianAQIBreakpoints = map[int]float64{
	1: 50,
	2: 100,
	3: 200,
	4: 300,
	5: 400,
}

// IndianAQI converts the upstream 1-5 coarse air quality index to the Indian
// 0-500 scale. Unknown values map to 100.
func IndianAQI(coarseIndex int) float64 {
	if aqi, ok := indianAQIBreakpoints[coarseIndex]; ok {
		return aqi
	}
	return 100
}

// CategoryFor returns the Indian AQI band label for an AQI value.
func CategoryFor(aqi float64) Category {
	switch {
	case aqi <= 50:
		return CategoryGood
	case aqi <= 100:
		return CategorySatisfactory
	case aqi <= 200:
		return CategoryModerate
	case aqi <= 300:
		return CategoryPoor
	case aqi <= 400:
		return CategoryVeryPoor
	default:
		return CategorySevere
	}
}
