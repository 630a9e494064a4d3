package models

import "github.com/Princebca/heatshield-backend/internal/symptom"

// SymptomLogRequest records a symptom report.
type SymptomLogRequest struct {
	UserID   string   `json:"user_id"`
	Symptoms []string `json:"symptoms"`
	Severity int      `json:"severity"`
	Notes    string   `json:"notes"`
}

// SymptomLogResponse wraps a stored symptom log and its analysis.
type SymptomLogResponse struct {
	Message  string            `json:"message"`
	Log      *symptom.Log      `json:"log"`
	Analysis *symptom.Analysis `json:"analysis"`
	Success  bool              `json:"success"`
}

// SymptomHistoryResponse wraps a user's symptom history.
type SymptomHistoryResponse struct {
	Symptoms []*symptom.Log `json:"symptoms"`
	Count    int            `json:"count"`
	Success  bool           `json:"success"`
}
