// Package symptom provides symptom logging and rule-based triage analysis.
package symptom

import (
	"errors"
	"time"
)

// Package errors.
var (
	ErrInvalidSeverity = errors.New("severity must be between 1 and 10")
	ErrLogNotFound     = errors.New("symptom log not found")
)

// AlertLevel ranks a triage alert.
type AlertLevel string

const (
	AlertMedium   AlertLevel = "medium"
	AlertHigh     AlertLevel = "high"
	AlertCritical AlertLevel = "critical"
)

// Alert is a structured triage warning.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	Action  string     `json:"action"`
}

// Analysis is the result of triaging one symptom report. The analyzer never
// sets AnalysisTimestamp; callers stamp it when they persist or serve the
// analysis.
type Analysis struct {
	IsUrgent          bool       `json:"is_urgent"`
	Alerts            []Alert    `json:"alerts"`
	Recommendations   []string   `json:"recommendations"`
	AnalysisTimestamp *time.Time `json:"analysis_timestamp"`
}

// Log is one persisted symptom report with its triage analysis.
type Log struct {
	// ID is the unique log identifier (format: sym_XXXX).
	ID string `json:"log_id"`

	// UserID identifies the reporting user.
	UserID string `json:"user_id"`

	// Symptoms is the list of reported symptom tags.
	Symptoms []string `json:"symptoms"`

	// Severity is the self-reported intensity on a 1-10 scale.
	Severity int `json:"severity"`

	// Notes is optional free text from the user.
	Notes string `json:"notes,omitempty"`

	// Analysis is the triage result computed when the log was created.
	Analysis *Analysis `json:"ai_analysis,omitempty"`

	// LoggedAt is when the report was recorded.
	LoggedAt time.Time `json:"logged_at"`
}
