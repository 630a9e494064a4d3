package symptom

import (
	"context"
	"sort"
	"sync"
)

// Repository defines the interface for symptom log persistence.
type Repository interface {
	// Create stores a new symptom log.
	Create(ctx context.Context, log *Log) error

	// ListByUser returns up to limit logs for a user, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]*Log, error)
}

// InMemoryRepository is an in-memory implementation of Repository used for
// tests and local development.
type InMemoryRepository struct {
	mu   sync.RWMutex
	logs map[string][]*Log
}

// NewInMemoryRepository creates a new in-memory symptom log repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		logs: make(map[string][]*Log),
	}
}

// Create stores a new symptom log.
func (r *InMemoryRepository) Create(_ context.Context, log *Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logs[log.UserID] = append(r.logs[log.UserID], copyLog(log))
	return nil
}

// ListByUser returns up to limit logs for a user, most recent first.
func (r *InMemoryRepository) ListByUser(_ context.Context, userID string, limit int) ([]*Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.logs[userID]
	result := make([]*Log, 0, len(stored))
	for _, log := range stored {
		result = append(result, copyLog(log))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LoggedAt.After(result[j].LoggedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// copyLog creates a deep copy of a log.
func copyLog(l *Log) *Log {
	if l == nil {
		return nil
	}

	logCopy := &Log{
		ID:       l.ID,
		UserID:   l.UserID,
		Severity: l.Severity,
		Notes:    l.Notes,
		LoggedAt: l.LoggedAt,
	}
	logCopy.Symptoms = append([]string(nil), l.Symptoms...)

	if l.Analysis != nil {
		analysisCopy := &Analysis{
			IsUrgent:        l.Analysis.IsUrgent,
			Alerts:          append([]Alert(nil), l.Analysis.Alerts...),
			Recommendations: append([]string(nil), l.Analysis.Recommendations...),
		}
		if l.Analysis.AnalysisTimestamp != nil {
			ts := *l.Analysis.AnalysisTimestamp
			analysisCopy.AnalysisTimestamp = &ts
		}
		logCopy.Analysis = analysisCopy
	}

	return logCopy
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
