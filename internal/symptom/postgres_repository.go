package symptom

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL symptom log repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create stores a new symptom log.
func (r *PostgresRepository) Create(ctx context.Context, log *Log) error {
	query := `
		INSERT INTO symptom_logs (
			log_id, user_id, symptoms, severity, notes, ai_analysis, logged_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	symptomsJSON, err := json.Marshal(log.Symptoms)
	if err != nil {
		return err
	}

	var analysisJSON []byte
	if log.Analysis != nil {
		analysisJSON, err = json.Marshal(log.Analysis)
		if err != nil {
			return err
		}
	}

	_, err = r.pool.Exec(ctx, query,
		log.ID,
		log.UserID,
		symptomsJSON,
		log.Severity,
		log.Notes,
		analysisJSON,
		log.LoggedAt,
	)
	return err
}

// ListByUser returns up to limit logs for a user, most recent first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*Log, error) {
	query := `
		SELECT log_id, user_id, symptoms, severity, notes, ai_analysis, logged_at
		FROM symptom_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := []*Log{}
	for rows.Next() {
		var (
			log          Log
			symptomsJSON []byte
			analysisJSON []byte
		)
		if err := rows.Scan(
			&log.ID,
			&log.UserID,
			&symptomsJSON,
			&log.Severity,
			&log.Notes,
			&analysisJSON,
			&log.LoggedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(symptomsJSON, &log.Symptoms); err != nil {
			return nil, err
		}
		if len(analysisJSON) > 0 {
			log.Analysis = &Analysis{}
			if err := json.Unmarshal(analysisJSON, log.Analysis); err != nil {
				return nil, err
			}
		}

		logs = append(logs, &log)
	}

	return logs, rows.Err()
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
