package models

import (
	"time"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// Weather is the API view of a weather reading.
type Weather struct {
	Temperature float64   `json:"temperature"`
	HeatIndex   float64   `json:"heat_index"`
	Humidity    float64   `json:"humidity"`
	UVIndex     float64   `json:"uv_index"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"timestamp"`
}

// AirQuality is the API view of an air quality reading.
type AirQuality struct {
	AQI       float64   `json:"aqi"`
	Category  string    `json:"category"`
	PM25      float64   `json:"pm2_5"`
	PM10      float64   `json:"pm10"`
	NO2       float64   `json:"no2"`
	SO2       float64   `json:"so2"`
	CO        float64   `json:"co"`
	O3        float64   `json:"o3"`
	Timestamp time.Time `json:"timestamp"`
}

// WeatherResponse wraps a weather reading.
type WeatherResponse struct {
	Weather *Weather `json:"weather"`
	Success bool     `json:"success"`
}

// AirQualityResponse wraps an air quality reading.
type AirQualityResponse struct {
	AQIData *AirQuality `json:"aqi_data"`
	Success bool        `json:"success"`
}

// ToWeather converts a domain weather reading to its API view.
func ToWeather(r *weather.Reading) *Weather {
	return &Weather{
		Temperature: r.Temperature,
		HeatIndex:   r.HeatIndex,
		Humidity:    r.Humidity,
		UVIndex:     r.UVIndex,
		Description: r.Description,
		Location:    r.Location,
		Timestamp:   r.Timestamp,
	}
}

// ToAirQuality converts a domain air quality reading to its API view.
func ToAirQuality(r *airquality.Reading) *AirQuality {
	return &AirQuality{
		AQI:       r.AQI,
		Category:  string(r.Category),
		PM25:      r.PM25,
		PM10:      r.PM10,
		NO2:       r.NO2,
		SO2:       r.SO2,
		CO:        r.CO,
		O3:        r.O3,
		Timestamp: r.Timestamp,
	}
}
