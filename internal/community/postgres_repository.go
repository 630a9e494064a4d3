package community

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL community repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// CreatePost stores a new post.
func (r *PostgresRepository) CreatePost(ctx context.Context, post *Post) error {
	query := `
		INSERT INTO community_posts (
			post_id, user_id, author_name, content, category, likes, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		post.ID,
		post.UserID,
		post.AuthorName,
		post.Content,
		post.Category,
		post.Likes,
		post.CreatedAt,
	)
	return err
}

// ListPosts returns up to limit posts, most recent first.
func (r *PostgresRepository) ListPosts(ctx context.Context, limit int, category PostCategory) ([]*Post, error) {
	query := `
		SELECT post_id, user_id, author_name, content, category, likes, created_at
		FROM community_posts
		WHERE ($2 = '' OR category = $2)
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*Post{}
	for rows.Next() {
		var post Post
		if err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.AuthorName,
			&post.Content,
			&post.Category,
			&post.Likes,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// CreateChallenge stores a new challenge.
func (r *PostgresRepository) CreateChallenge(ctx context.Context, challenge *Challenge) error {
	query := `
		INSERT INTO challenges (
			challenge_id, title, description, challenge_type, goal,
			participants, start_date, end_date, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		challenge.ID,
		challenge.Title,
		challenge.Description,
		challenge.Type,
		challenge.Goal,
		challenge.Participants,
		challenge.StartDate,
		challenge.EndDate,
		challenge.IsActive,
	)
	return err
}

// ListActiveChallenges returns active challenges, newest start first.
func (r *PostgresRepository) ListActiveChallenges(ctx context.Context) ([]*Challenge, error) {
	query := `
		SELECT challenge_id, title, description, challenge_type, goal,
			participants, start_date, end_date, is_active
		FROM challenges
		WHERE is_active
		ORDER BY start_date DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	challenges := []*Challenge{}
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		challenges = append(challenges, challenge)
	}
	return challenges, rows.Err()
}

// JoinChallenge increments a challenge's participant count.
func (r *PostgresRepository) JoinChallenge(ctx context.Context, challengeID string) (*Challenge, error) {
	query := `
		UPDATE challenges
		SET participants = participants + 1
		WHERE challenge_id = $1
		RETURNING challenge_id, title, description, challenge_type, goal,
			participants, start_date, end_date, is_active
	`

	challenge, err := scanChallenge(r.pool.QueryRow(ctx, query, challengeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}

func scanChallenge(row pgx.Row) (*Challenge, error) {
	var challenge Challenge
	if err := row.Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Type,
		&challenge.Goal,
		&challenge.Participants,
		&challenge.StartDate,
		&challenge.EndDate,
		&challenge.IsActive,
	); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Ensure PostgresRepository implements Repository interface.
var _ Repository = (*PostgresRepository)(nil)
