package airquality_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Princebca/heatshield-backend/internal/airquality"
)

func TestIndianAQI(t *testing.T) {
	tests := []struct {
		name        string
		coarseIndex int
		want        float64
	}{
		{"good", 1, 50},
		{"fair", 2, 100},
		{"moderate", 3, 200},
		{"poor", 4, 300},
		{"very poor", 5, 400},
		{"zero is unknown", 0, 100},
		{"above range is unknown", 6, 100},
		{"negative is unknown", -1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, airquality.IndianAQI(tt.coarseIndex))
		})
	}
}

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		name string
		aqi  float64
		want airquality.Category
	}{
		{"zero", 0, airquality.CategoryGood},
		{"good upper bound", 50, airquality.CategoryGood},
		{"satisfactory lower", 50.5, airquality.CategorySatisfactory},
		{"satisfactory upper bound", 100, airquality.CategorySatisfactory},
		{"moderate lower", 100.5, airquality.CategoryModerate},
		{"moderate upper bound", 200, airquality.CategoryModerate},
		{"poor lower", 200.5, airquality.CategoryPoor},
		{"poor upper bound", 300, airquality.CategoryPoor},
		{"very poor lower", 300.5, airquality.CategoryVeryPoor},
		{"very poor upper bound", 400, airquality.CategoryVeryPoor},
		{"severe lower", 400.5, airquality.CategorySevere},
		{"severe extreme", 500, airquality.CategorySevere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, airquality.CategoryFor(tt.aqi))
		})
	}
}

func TestMockProvider_GetCurrent(t *testing.T) {
	reading, err := airquality.NewMockProvider().GetCurrent(context.Background(), 22.2604, 84.8536)
	assert.NoError(t, err)

	assert.Equal(t, 180.0, reading.AQI)
	assert.Equal(t, airquality.CategoryModerate, reading.Category)
	assert.Equal(t, 85.5, reading.PM25)
	assert.Equal(t, 120.3, reading.PM10)
	assert.False(t, reading.Timestamp.IsZero())
}
