package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// Default coordinates (Rourkela, Odisha) used when a request omits them.
const (
	DefaultLatitude  = 22.2604
	DefaultLongitude = 84.8536
)

// EnvironmentHandler handles weather and air quality endpoints.
type EnvironmentHandler struct {
	weather    *weather.Service
	airQuality *airquality.Service
}

// NewEnvironmentHandler creates a new EnvironmentHandler.
func NewEnvironmentHandler(w *weather.Service, aq *airquality.Service) *EnvironmentHandler {
	return &EnvironmentHandler{weather: w, airQuality: aq}
}

// GetWeather handles GET /v1/weather - current weather for a location.
func (h *EnvironmentHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinatesFromQuery(r)
	if err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}

	reading, err := h.weather.GetCurrent(r.Context(), lat, lon)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.WeatherResponse{
		Weather: models.ToWeather(reading),
		Success: true,
	})
}

// GetAirQuality handles GET /v1/air-quality - current air quality for a
// location.
func (h *EnvironmentHandler) GetAirQuality(w http.ResponseWriter, r *http.Request) {
	lat, lon, err := coordinatesFromQuery(r)
	if err != nil {
		response.BadRequest(w, r, err.Error(), nil)
		return
	}

	reading, err := h.airQuality.GetCurrent(r.Context(), lat, lon)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	response.JSON(w, r, http.StatusOK, models.AirQualityResponse{
		AQIData: models.ToAirQuality(reading),
		Success: true,
	})
}

// coordinatesFromQuery parses optional latitude/longitude query parameters,
// falling back to the default location.
func coordinatesFromQuery(r *http.Request) (float64, float64, error) {
	lat := DefaultLatitude
	lon := DefaultLongitude

	if v := r.URL.Query().Get("latitude"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, errors.New("latitude must be a number")
		}
		lat = parsed
	}
	if v := r.URL.Query().Get("longitude"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, 0, errors.New("longitude must be a number")
		}
		lon = parsed
	}
	return lat, lon, nil
}

// writeProviderError maps environmental data errors to API responses.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, weather.ErrInvalidCoordinates),
		errors.Is(err, airquality.ErrInvalidCoordinates):
		response.BadRequest(w, r, "coordinates out of range", nil)
	case errors.Is(err, weather.ErrProviderUnavailable),
		errors.Is(err, airquality.ErrProviderUnavailable):
		response.ServiceUnavailable(w, r, "environmental data temporarily unavailable")
	default:
		response.InternalError(w, r, "could not fetch environmental data")
	}
}
