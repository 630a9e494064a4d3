package user

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const userColumns = `
	user_id, phone, name, age, location, language, occupation,
	outdoor_hours, health_conditions, created_at, updated_at
`

// Get retrieves a user by ID.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

// GetByPhone retrieves a user by phone number.
func (r *PostgresRepository) GetByPhone(ctx context.Context, phone string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`
	return r.scanOne(r.pool.QueryRow(ctx, query, phone))
}

// Create creates a new user.
func (r *PostgresRepository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			user_id, phone, name, age, location, language, occupation,
			outdoor_hours, health_conditions, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	conditionsJSON, err := json.Marshal(user.HealthConditions)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		user.ID,
		user.Phone,
		user.Name,
		user.Age,
		user.Location,
		user.Language,
		user.Occupation,
		user.OutdoorHours,
		conditionsJSON,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return err
}

// Update updates an existing user.
func (r *PostgresRepository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users SET
			phone = $2,
			name = $3,
			age = $4,
			location = $5,
			language = $6,
			occupation = $7,
			outdoor_hours = $8,
			health_conditions = $9,
			updated_at = $10
		WHERE user_id = $1
	`

	conditionsJSON, err := json.Marshal(user.HealthConditions)
	if err != nil {
		return err
	}

	result, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Phone,
		user.Name,
		user.Age,
		user.Location,
		user.Language,
		user.Occupation,
		user.OutdoorHours,
		conditionsJSON,
		user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// List returns all users.
func (r *PostgresRepository) List(ctx context.Context) ([]*User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*User{}
	for rows.Next() {
		user, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) scanOne(row pgx.Row) (*User, error) {
	user, err := r.scanRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (r *PostgresRepository) scanRow(row pgx.Row) (*User, error) {
	var (
		user           User
		conditionsJSON []byte
	)
	if err := row.Scan(
		&user.ID,
		&user.Phone,
		&user.Name,
		&user.Age,
		&user.Location,
		&user.Language,
		&user.Occupation,
		&user.OutdoorHours,
		&conditionsJSON,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(conditionsJSON) > 0 {
		if err := json.Unmarshal(conditionsJSON, &user.HealthConditions); err != nil {
			return nil, err
		}
	}
	if user.HealthConditions == nil {
		user.HealthConditions = []string{}
	}

	return &user, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
