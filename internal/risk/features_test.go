package risk_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

func float64Ptr(v float64) *float64 { return &v }

func testWeather() *weather.Reading {
	return &weather.Reading{
		Temperature: 38.5,
		HeatIndex:   45.2,
		Humidity:    65.0,
		UVIndex:     8.5,
		Description: "hot and humid",
		Location:    "Rourkela",
		Timestamp:   time.Date(2026, 5, 12, 11, 0, 0, 0, time.UTC),
	}
}

func testAir() *airquality.Reading {
	return &airquality.Reading{
		AQI:  180,
		PM25: 85.5,
		PM10: 120.3,
		NO2:  45.2,
		SO2:  25.1,
		CO:   1200.5,
		O3:   60.8,
	}
}

func TestVectorize_FullProfile(t *testing.T) {
	profile := risk.Profile{
		Age:              float64Ptr(45),
		OutdoorHours:     float64Ptr(6),
		HealthConditions: []string{"asthma"},
	}

	v, err := risk.Vectorize(profile, testWeather(), testAir())
	require.NoError(t, err)

	expected := risk.FeatureVector{38.5, 45.2, 65.0, 8.5, 180, 85.5, 45, 6, 1}
	assert.Equal(t, expected, v)
}

func TestVectorize_DefaultsForMissingProfileFields(t *testing.T) {
	v, err := risk.Vectorize(risk.Profile{}, testWeather(), testAir())
	require.NoError(t, err)

	assert.Equal(t, risk.DefaultAge, v[6])
	assert.Equal(t, risk.DefaultOutdoorHours, v[7])
	assert.Equal(t, 0.0, v[8])
}

func TestVectorize_NilWeather(t *testing.T) {
	_, err := risk.Vectorize(risk.Profile{}, nil, testAir())
	require.Error(t, err)

	var verr *risk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weather", verr.Field)
}

func TestVectorize_NilAirQuality(t *testing.T) {
	_, err := risk.Vectorize(risk.Profile{}, testWeather(), nil)
	require.Error(t, err)

	var verr *risk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "air_quality", verr.Field)
}

func TestVectorize_RejectsNonFiniteInputs(t *testing.T) {
	w := testWeather()
	w.Temperature = math.NaN()

	_, err := risk.Vectorize(risk.Profile{}, w, testAir())
	require.Error(t, err)

	var verr *risk.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "weather.temperature", verr.Field)

	aq := testAir()
	aq.AQI = math.Inf(1)

	_, err = risk.Vectorize(risk.Profile{}, testWeather(), aq)
	require.Error(t, err)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "air_quality.aqi", verr.Field)
}

func TestSeverityFor_Bands(t *testing.T) {
	tests := []struct {
		score    float64
		expected risk.Severity
	}{
		{0, risk.SeverityLow},
		{2, risk.SeverityLow},
		{2.1, risk.SeverityModerate},
		{5, risk.SeverityModerate},
		{5.5, risk.SeverityHigh},
		{7, risk.SeverityHigh},
		{7.1, risk.SeverityVeryHigh},
		{10, risk.SeverityVeryHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, risk.SeverityFor(tt.score), "score %v", tt.score)
	}
}
