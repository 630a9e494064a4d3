// Package risk implements the personal heat and pollution risk engine:
// feature derivation, a trained classifier producing a 0-10 risk score,
// severity banding and rule-driven recommendations.
package risk

import (
	"errors"
	"fmt"
	"time"
)

// ErrModelNotReady is returned when inference is attempted before the
// classifier bootstrap has completed. Retryable once bootstrap finishes.
var ErrModelNotReady = errors.New("risk model not ready")

// ValidationError indicates malformed or missing required input fields.
// Requests failing validation are rejected with no partial result.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Profile is the risk-engine view of a user. Nil fields fall back to
// documented defaults during vectorization; all other profile fields are
// opaque to the engine.
type Profile struct {
	// Age in years.
	Age *float64

	// OutdoorHours is the average daily hours spent outdoors.
	OutdoorHours *float64

	// HealthConditions is the user's condition list. A non-empty list marks
	// the user as having health conditions.
	HealthConditions []string
}

// HasHealthConditions reports whether the profile carries any health condition.
func (p Profile) HasHealthConditions() bool {
	return len(p.HealthConditions) > 0
}

// Severity bands a risk score for presentation.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityModerate Severity = "Moderate"
	SeverityHigh     Severity = "High"
	SeverityVeryHigh Severity = "Very High"
)

// SeverityFor maps a risk score in [0, 10] to its severity band.
func SeverityFor(score float64) Severity {
	switch {
	case score <= 2:
		return SeverityLow
	case score <= 5:
		return SeverityModerate
	case score <= 7:
		return SeverityHigh
	default:
		return SeverityVeryHigh
	}
}

// AdvisoryCategory classifies an advisory.
type AdvisoryCategory string

const (
	CategoryHeat         AdvisoryCategory = "heat"
	CategoryHydration    AdvisoryCategory = "hydration"
	CategoryAirQuality   AdvisoryCategory = "air_quality"
	CategoryUVProtection AdvisoryCategory = "uv_protection"
	CategoryHealth       AdvisoryCategory = "health"
	CategoryGeneral      AdvisoryCategory = "general"
)

// AdvisoryPriority ranks an advisory.
type AdvisoryPriority string

const (
	PriorityMedium   AdvisoryPriority = "medium"
	PriorityHigh     AdvisoryPriority = "high"
	PriorityCritical AdvisoryPriority = "critical"
)

// Advisory is one piece of personalized guidance.
type Advisory struct {
	Category AdvisoryCategory `json:"category"`
	Priority AdvisoryPriority `json:"priority"`
	Message  string           `json:"message"`
	Action   string           `json:"action"`
}

// RiskAssessment is the result of one inference: score, band and the ordered
// advisory list. Created per request, never persisted by the engine.
type RiskAssessment struct {
	RiskScore       float64    `json:"risk_score"`
	SeverityLevel   Severity   `json:"severity_level"`
	Recommendations []Advisory `json:"recommendations"`
	Timestamp       time.Time  `json:"timestamp"`
}
