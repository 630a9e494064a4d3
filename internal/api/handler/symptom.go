package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/symptom"
)

// SymptomHandler handles symptom logging and history endpoints.
type SymptomHandler struct {
	symptoms *symptom.Service
}

// NewSymptomHandler creates a new SymptomHandler.
func NewSymptomHandler(symptoms *symptom.Service) *SymptomHandler {
	return &SymptomHandler{symptoms: symptoms}
}

// Log handles POST /v1/symptoms - log and triage a symptom report.
func (h *SymptomHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req models.SymptomLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	var fieldErrors []models.FieldError
	if req.UserID == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "user_id", Message: "required", Code: "REQUIRED"})
	}
	if len(req.Symptoms) == 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "symptoms", Message: "required", Code: "REQUIRED"})
	}
	if req.Severity == 0 {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "severity", Message: "required", Code: "REQUIRED"})
	}
	if len(fieldErrors) > 0 {
		response.BadRequest(w, r, "missing required fields", fieldErrors)
		return
	}

	log, err := h.symptoms.LogSymptoms(r.Context(), req.UserID, req.Symptoms, req.Severity, req.Notes)
	if err != nil {
		if errors.Is(err, symptom.ErrInvalidSeverity) {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: "severity", Message: "must be between 1 and 10", Code: "OUT_OF_RANGE"},
			})
			return
		}
		response.InternalError(w, r, "could not log symptoms")
		return
	}

	response.Created(w, r, "", models.SymptomLogResponse{
		Message:  "Symptoms logged successfully",
		Log:      log,
		Analysis: log.Analysis,
		Success:  true,
	})
}

// History handles GET /v1/symptoms/{userId} - symptom history for a user.
func (h *SymptomHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, r, "limit must be an integer", nil)
			return
		}
		limit = parsed
	}

	logs, err := h.symptoms.History(r.Context(), userID, limit)
	if err != nil {
		response.InternalError(w, r, "could not load symptom history")
		return
	}

	response.JSON(w, r, http.StatusOK, models.SymptomHistoryResponse{
		Symptoms: logs,
		Count:    len(logs),
		Success:  true,
	})
}
