package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Princebca/heatshield-backend/internal/airquality"
	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/risk"
	"github.com/Princebca/heatshield-backend/internal/user"
	"github.com/Princebca/heatshield-backend/internal/weather"
)

// ForecastHandler handles the personalized risk forecast endpoint.
type ForecastHandler struct {
	users      *user.Service
	weather    *weather.Service
	airQuality *airquality.Service
	engine     *risk.Engine
}

// NewForecastHandler creates a new ForecastHandler.
func NewForecastHandler(users *user.Service, w *weather.Service, aq *airquality.Service, engine *risk.Engine) *ForecastHandler {
	return &ForecastHandler{
		users:      users,
		weather:    w,
		airQuality: aq,
		engine:     engine,
	}
}

// Forecast handles POST /v1/forecast - personalized health risk forecast.
// It joins the user's profile with live environmental readings and runs the
// risk engine over them.
func (h *ForecastHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req models.ForecastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}
	if req.UserID == "" {
		response.BadRequest(w, r, "missing user_id", []models.FieldError{
			{Field: "user_id", Message: "required", Code: "REQUIRED"},
		})
		return
	}

	u, err := h.users.Get(r.Context(), req.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(w, r, "user not found")
			return
		}
		response.InternalError(w, r, "could not load user")
		return
	}

	lat := DefaultLatitude
	if req.Latitude != nil {
		lat = *req.Latitude
	}
	lon := DefaultLongitude
	if req.Longitude != nil {
		lon = *req.Longitude
	}

	weatherReading, err := h.weather.GetCurrent(r.Context(), lat, lon)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}
	airReading, err := h.airQuality.GetCurrent(r.Context(), lat, lon)
	if err != nil {
		writeProviderError(w, r, err)
		return
	}

	assessment, err := h.engine.PredictRisk(u.RiskProfile(), weatherReading, airReading)
	if err != nil {
		if errors.Is(err, risk.ErrModelNotReady) {
			response.ServiceUnavailable(w, r, "risk model is still starting up")
			return
		}
		var verr *risk.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, err.Error(), nil)
			return
		}
		response.InternalError(w, r, "could not compute risk forecast")
		return
	}

	response.JSON(w, r, http.StatusOK, models.ForecastResponse{
		Forecast: &models.Forecast{
			Weather: models.ToWeather(weatherReading),
			AQI:     models.ToAirQuality(airReading),
			Risk:    assessment,
		},
		Success: true,
	})
}
