// Package handler provides HTTP handlers for the HeatShield API.
package handler

import (
	"net/http"
	"time"

	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/provider/resilience"
	"github.com/Princebca/heatshield-backend/internal/risk"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	engine    *risk.Engine
	registry  *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, engine *risk.Engine, registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		engine:    engine,
		registry:  registry,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"service":   "HeatShield India API",
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. The service
// is ready once the risk model has been trained or loaded.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.engine != nil && !h.engine.Ready() {
		health.Status = models.HealthStatusFail
		health.Details = map[string]interface{}{
			"riskModel": "not ready",
		}
		response.JSON(w, r, http.StatusServiceUnavailable, health)
		return
	}

	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /v1/ops/status - provider and subsystem status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	now := models.Timestamp(time.Now())

	status := models.SystemStatus{
		Status:     models.HealthStatusOK,
		Time:       now,
		Subsystems: []models.SubsystemStatus{h.riskModelStatus()},
		Providers:  []models.ProviderStatus{},
	}

	if h.registry != nil {
		for _, health := range h.registry.GetAllHealth() {
			status.Providers = append(status.Providers, toProviderStatus(health))
		}
	}

	for _, sub := range status.Subsystems {
		if sub.Status != models.HealthStatusOK {
			status.Status = models.HealthStatusDegraded
		}
	}
	for _, p := range status.Providers {
		if p.Status == models.HealthStatusFail {
			status.Status = models.HealthStatusDegraded
		}
	}

	response.JSON(w, r, http.StatusOK, status)
}

func (h *OpsHandler) riskModelStatus() models.SubsystemStatus {
	status := models.SubsystemStatus{
		Name:   "risk-model",
		Status: models.HealthStatusOK,
	}
	if h.engine == nil || !h.engine.Ready() {
		status.Status = models.HealthStatusFail
		detail := "model not loaded"
		status.Detail = &detail
	}
	return status
}

func toProviderStatus(health *resilience.ProviderHealth) models.ProviderStatus {
	status := models.ProviderStatus{
		Provider: health.Name,
		Status:   models.HealthStatusOK,
	}

	switch {
	case health.IsUnhealthy():
		status.Status = models.HealthStatusFail
	case health.IsDegraded():
		status.Status = models.HealthStatusDegraded
	}

	if health.LastSuccessAt != nil {
		ts := models.Timestamp(*health.LastSuccessAt)
		status.LastSuccessAt = &ts
	}
	if health.LastFailureAt != nil {
		ts := models.Timestamp(*health.LastFailureAt)
		status.LastFailureAt = &ts
	}
	if health.LastError != "" {
		msg := health.LastError
		status.Message = &msg
	}

	return status
}
