// Package worker provides background job processing for HeatShield.
package worker

import (
	"time"

	"github.com/Princebca/heatshield-backend/internal/risk"
)

// SweepConfig holds configuration for the risk alert sweep job.
type SweepConfig struct {
	// Latitude of the region the sweep evaluates conditions for.
	// Default: Rourkela.
	Latitude float64

	// Longitude of the region the sweep evaluates conditions for.
	Longitude float64

	// Concurrency is the number of concurrent user evaluations.
	// Default: 3
	Concurrency int

	// Timeout is the timeout for each user evaluation.
	// Default: 15 seconds
	Timeout time.Duration

	// AlertSeverities are the severity bands that trigger an alert.
	// If empty, uses High and Very High.
	AlertSeverities []risk.Severity
}

// DefaultSweepConfig returns the default sweep configuration.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Latitude:        22.2604,
		Longitude:       84.8536,
		Concurrency:     3,
		Timeout:         15 * time.Second,
		AlertSeverities: []risk.Severity{risk.SeverityHigh, risk.SeverityVeryHigh},
	}
}

// Alertable reports whether a severity band should trigger an alert.
func (c SweepConfig) Alertable(severity risk.Severity) bool {
	for _, s := range c.AlertSeverities {
		if s == severity {
			return true
		}
	}
	return false
}
