package symptom

import (
	"fmt"
	"strings"
)

// severeSymptoms is the fixed set of symptom tags that make a report urgent
// on their own, regardless of the reported severity.
var severeSymptoms = map[string]bool{
	"chest_pain":            true,
	"severe_headache":       true,
	"difficulty_breathing":  true,
	"confusion":             true,
	"loss_of_consciousness": true,
	"severe_nausea":         true,
}

// Analyze triages a symptom report against the rule set. History entries are
// ordered most recent first; only their severities are inspected. The
// returned analysis carries a nil timestamp.
//
// Urgency is set only by the severe-symptom rule and the severity>=8 rule.
// The persistent-symptom history rule raises a high alert without marking
// the report urgent.
func Analyze(symptoms []string, severity int, history []*Log) (*Analysis, error) {
	if severity < 1 || severity > 10 {
		return nil, ErrInvalidSeverity
	}

	analysis := &Analysis{
		Alerts:          []Alert{},
		Recommendations: []string{},
	}

	var severeFound []string
	for _, s := range symptoms {
		if severeSymptoms[s] {
			severeFound = append(severeFound, s)
		}
	}
	if len(severeFound) > 0 {
		analysis.IsUrgent = true
		analysis.Alerts = append(analysis.Alerts, Alert{
			Level:   AlertCritical,
			Message: fmt.Sprintf("URGENT: %s detected", strings.Join(severeFound, ", ")),
			Action:  "Seek immediate medical attention",
		})
	}

	switch {
	case severity >= 8:
		analysis.IsUrgent = true
		analysis.Alerts = append(analysis.Alerts, Alert{
			Level:   AlertHigh,
			Message: "High severity symptoms reported",
			Action:  "Contact doctor or visit hospital",
		})
	case severity >= 6:
		analysis.Alerts = append(analysis.Alerts, Alert{
			Level:   AlertMedium,
			Message: "Moderate symptoms detected",
			Action:  "Rest and monitor. Consult doctor if worsens",
		})
	}

	if len(history) >= 3 {
		persistent := true
		for _, entry := range history[:3] {
			if entry.Severity < 5 {
				persistent = false
				break
			}
		}
		if persistent {
			analysis.Alerts = append(analysis.Alerts, Alert{
				Level:   AlertHigh,
				Message: "Persistent symptoms detected",
				Action:  "Schedule medical checkup",
			})
		}
	}

	analysis.Recommendations = adviceFor(symptoms, severity)

	return analysis, nil
}

// adviceFor returns symptom-specific care advice. Each rule triggers
// independently and contributes at most one line.
func adviceFor(symptoms []string, severity int) []string {
	reported := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		reported[s] = true
	}

	advice := []string{}

	if reported["headache"] {
		advice = append(advice, "Rest in cool, dark room. Stay hydrated")
	}
	if reported["fatigue"] || reported["dizziness"] {
		advice = append(advice, "Drink water and electrolyte solution. Avoid exertion")
	}
	if reported["breathing_difficulty"] {
		advice = append(advice, "Stay in air-conditioned space. Avoid polluted areas")
	}
	if reported["nausea"] {
		advice = append(advice, "Sip water slowly. Eat light foods. Rest")
	}
	if severity >= 5 {
		advice = append(advice, "Monitor temperature. Take rest. Stay cool")
	}

	return advice
}
