package risk

import (
	"math"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// FeatureCount is the fixed length of a feature vector.
const FeatureCount = 9

// FeatureVector is the fixed-order numeric input to the classifier:
// [temperature, heatIndex, humidity, uvIndex, aqi, pm2_5, age, outdoorHours,
// hasHealthConditions]. The order is a contract with the trained model and
// must never change.
type FeatureVector [FeatureCount]float64

// Vectorization defaults for missing profile fields.
const (
	DefaultAge          = 30.0
	DefaultOutdoorHours = 4.0
)

// Vectorize maps a (profile, weather, air quality) triple into a feature
// vector. Missing profile fields use defaults; nil or malformed readings
// fail with a ValidationError.
func Vectorize(profile Profile, w *weather.Reading, aq *airquality.Reading) (FeatureVector, error) {
	var v FeatureVector

	if w == nil {
		return v, &ValidationError{Field: "weather", Reason: "reading is required"}
	}
	if aq == nil {
		return v, &ValidationError{Field: "air_quality", Reason: "reading is required"}
	}

	weatherFields := []struct {
		name  string
		value float64
	}{
		{"weather.temperature", w.Temperature},
		{"weather.heat_index", w.HeatIndex},
		{"weather.humidity", w.Humidity},
		{"weather.uv_index", w.UVIndex},
		{"air_quality.aqi", aq.AQI},
		{"air_quality.pm2_5", aq.PM25},
	}
	for _, f := range weatherFields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return v, &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
	}

	age := DefaultAge
	if profile.Age != nil {
		age = *profile.Age
	}

	outdoorHours := DefaultOutdoorHours
	if profile.OutdoorHours != nil {
		outdoorHours = *profile.OutdoorHours
	}

	hasConditions := 0.0
	if profile.HasHealthConditions() {
		hasConditions = 1.0
	}

	v = FeatureVector{
		w.Temperature,
		w.HeatIndex,
		w.Humidity,
		w.UVIndex,
		aq.AQI,
		aq.PM25,
		age,
		outdoorHours,
		hasConditions,
	}

	return v, nil
}
