package symptom

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// historyWindow is how many prior logs the analyzer inspects for the
// persistent-symptom pattern.
const historyWindow = 10

// defaultHistoryLimit caps symptom history queries when the caller gives
// no explicit limit.
const defaultHistoryLimit = 50

// Service provides symptom logging with triage analysis.
type Service struct {
	repo Repository
}

// NewService creates a new symptom service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// LogSymptoms analyzes a symptom report against the user's recent history,
// persists the log with its analysis attached and returns it. The analysis
// timestamp is stamped here, at persistence time.
func (s *Service) LogSymptoms(ctx context.Context, userID string, symptoms []string, severity int, notes string) (*Log, error) {
	history, err := s.repo.ListByUser(ctx, userID, historyWindow)
	if err != nil {
		return nil, err
	}

	analysis, err := Analyze(symptoms, severity, history)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	analysis.AnalysisTimestamp = &now

	log := &Log{
		ID:       "sym_" + uuid.New().String()[:22],
		UserID:   userID,
		Symptoms: symptoms,
		Severity: severity,
		Notes:    notes,
		Analysis: analysis,
		LoggedAt: now,
	}

	if err := s.repo.Create(ctx, log); err != nil {
		return nil, err
	}

	return log, nil
}

// History returns up to limit symptom logs for a user, most recent first.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]*Log, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
