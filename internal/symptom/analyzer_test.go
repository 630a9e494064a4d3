package symptom_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Princebca/heatshield-backend/internal/symptom"
)

func TestAnalyze_SevereSymptomIsUrgent(t *testing.T) {
	analysis, err := symptom.Analyze([]string{"chest_pain"}, 9, nil)
	require.NoError(t, err)

	assert.True(t, analysis.IsUrgent)
	require.Len(t, analysis.Alerts, 2)

	assert.Equal(t, symptom.AlertCritical, analysis.Alerts[0].Level)
	assert.Equal(t, "URGENT: chest_pain detected", analysis.Alerts[0].Message)
	assert.Equal(t, "Seek immediate medical attention", analysis.Alerts[0].Action)

	assert.Equal(t, symptom.AlertHigh, analysis.Alerts[1].Level)
	assert.Equal(t, "High severity symptoms reported", analysis.Alerts[1].Message)

	assert.Nil(t, analysis.AnalysisTimestamp)
}

func TestAnalyze_MultipleSevereSymptoms(t *testing.T) {
	analysis, err := symptom.Analyze([]string{"confusion", "severe_nausea"}, 4, nil)
	require.NoError(t, err)

	assert.True(t, analysis.IsUrgent)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, "URGENT: confusion, severe_nausea detected", analysis.Alerts[0].Message)
}

func TestAnalyze_MildSymptomNotUrgent(t *testing.T) {
	analysis, err := symptom.Analyze([]string{"headache"}, 3, nil)
	require.NoError(t, err)

	assert.False(t, analysis.IsUrgent)
	assert.Empty(t, analysis.Alerts)
	require.Len(t, analysis.Recommendations, 1)
	assert.Equal(t, "Rest in cool, dark room. Stay hydrated", analysis.Recommendations[0])
}

func TestAnalyze_ModerateSeverityAlertWithoutUrgency(t *testing.T) {
	analysis, err := symptom.Analyze([]string{"fatigue"}, 6, nil)
	require.NoError(t, err)

	assert.False(t, analysis.IsUrgent)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, symptom.AlertMedium, analysis.Alerts[0].Level)
	assert.Equal(t, "Moderate symptoms detected", analysis.Alerts[0].Message)
}

func TestAnalyze_PersistentHistoryAlertIsNotUrgent(t *testing.T) {
	history := []*symptom.Log{
		{Severity: 6},
		{Severity: 7},
		{Severity: 5},
	}

	analysis, err := symptom.Analyze([]string{"cough"}, 3, history)
	require.NoError(t, err)

	assert.False(t, analysis.IsUrgent)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, symptom.AlertHigh, analysis.Alerts[0].Level)
	assert.Equal(t, "Persistent symptoms detected", analysis.Alerts[0].Message)
	assert.Equal(t, "Schedule medical checkup", analysis.Alerts[0].Action)
}

func TestAnalyze_HistoryBelowThresholdNoPatternAlert(t *testing.T) {
	history := []*symptom.Log{
		{Severity: 6},
		{Severity: 4},
		{Severity: 7},
	}

	analysis, err := symptom.Analyze([]string{"cough"}, 3, history)
	require.NoError(t, err)
	assert.Empty(t, analysis.Alerts)
}

func TestAnalyze_OnlyThreeMostRecentHistoryEntriesMatter(t *testing.T) {
	history := []*symptom.Log{
		{Severity: 6},
		{Severity: 7},
		{Severity: 5},
		{Severity: 1},
		{Severity: 2},
	}

	analysis, err := symptom.Analyze([]string{"cough"}, 3, history)
	require.NoError(t, err)
	require.Len(t, analysis.Alerts, 1)
	assert.Equal(t, "Persistent symptoms detected", analysis.Alerts[0].Message)
}

func TestAnalyze_AdviceRules(t *testing.T) {
	analysis, err := symptom.Analyze(
		[]string{"headache", "dizziness", "breathing_difficulty", "nausea"}, 5, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Rest in cool, dark room. Stay hydrated",
		"Drink water and electrolyte solution. Avoid exertion",
		"Stay in air-conditioned space. Avoid polluted areas",
		"Sip water slowly. Eat light foods. Rest",
		"Monitor temperature. Take rest. Stay cool",
	}, analysis.Recommendations)
}

func TestAnalyze_InvalidSeverity(t *testing.T) {
	_, err := symptom.Analyze([]string{"headache"}, 0, nil)
	assert.ErrorIs(t, err, symptom.ErrInvalidSeverity)

	_, err = symptom.Analyze([]string{"headache"}, 11, nil)
	assert.ErrorIs(t, err, symptom.ErrInvalidSeverity)
}

func TestService_LogSymptomsAndHistory(t *testing.T) {
	svc := symptom.NewService(symptom.NewInMemoryRepository())
	ctx := context.Background()

	log, err := svc.LogSymptoms(ctx, "usr_1", []string{"headache"}, 4, "after morning shift")
	require.NoError(t, err)

	assert.NotEmpty(t, log.ID)
	assert.Contains(t, log.ID, "sym_")
	assert.Equal(t, "usr_1", log.UserID)
	require.NotNil(t, log.Analysis)
	assert.NotNil(t, log.Analysis.AnalysisTimestamp)
	assert.False(t, log.Analysis.IsUrgent)

	history, err := svc.History(ctx, "usr_1", 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, log.ID, history[0].ID)
}

func TestService_PersistentPatternAcrossLogs(t *testing.T) {
	svc := symptom.NewService(symptom.NewInMemoryRepository())
	ctx := context.Background()

	for i, severity := range []int{6, 7, 5} {
		_, err := svc.LogSymptoms(ctx, "usr_1", []string{"fatigue"}, severity, "")
		require.NoError(t, err, "log %d", i)
		time.Sleep(time.Millisecond)
	}

	log, err := svc.LogSymptoms(ctx, "usr_1", []string{"cough"}, 3, "")
	require.NoError(t, err)

	require.NotNil(t, log.Analysis)
	require.Len(t, log.Analysis.Alerts, 1)
	assert.Equal(t, "Persistent symptoms detected", log.Analysis.Alerts[0].Message)
	assert.False(t, log.Analysis.IsUrgent)
}

func TestService_RejectsInvalidSeverity(t *testing.T) {
	svc := symptom.NewService(symptom.NewInMemoryRepository())

	_, err := svc.LogSymptoms(context.Background(), "usr_1", []string{"headache"}, 15, "")
	assert.ErrorIs(t, err, symptom.ErrInvalidSeverity)
}
