package community

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// defaultPostLimit caps post listings when the caller gives no limit.
const defaultPostLimit = 50

// PostInput carries the fields accepted when creating a post.
type PostInput struct {
	UserID     string       `json:"user_id"`
	AuthorName string       `json:"author_name"`
	Content    string       `json:"content"`
	Category   PostCategory `json:"category"`
}

// ValidationError indicates a post field is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Service provides community feed and challenge operations.
type Service struct {
	repo Repository
}

// NewService creates a new community service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreatePost validates and stores a new post.
func (s *Service) CreatePost(ctx context.Context, input *PostInput) (*Post, error) {
	switch {
	case input.UserID == "":
		return nil, &ValidationError{Field: "user_id"}
	case input.AuthorName == "":
		return nil, &ValidationError{Field: "author_name"}
	case input.Content == "":
		return nil, &ValidationError{Field: "content"}
	}

	category := input.Category
	if category == "" {
		category = CategoryGeneral
	}

	post := &Post{
		ID:         "pst_" + uuid.New().String()[:22],
		UserID:     input.UserID,
		AuthorName: input.AuthorName,
		Content:    input.Content,
		Category:   category,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns recent posts. An empty feed falls back to seeded sample
// posts so new deployments are never blank.
func (s *Service) ListPosts(ctx context.Context, limit int, category PostCategory) ([]*Post, error) {
	if limit <= 0 {
		limit = defaultPostLimit
	}

	posts, err := s.repo.ListPosts(ctx, limit, category)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return samplePosts(), nil
	}
	return posts, nil
}

// ListChallenges returns active challenges, seeding samples when none exist.
func (s *Service) ListChallenges(ctx context.Context) ([]*Challenge, error) {
	challenges, err := s.repo.ListActiveChallenges(ctx)
	if err != nil {
		return nil, err
	}
	if len(challenges) == 0 {
		return sampleChallenges(), nil
	}
	return challenges, nil
}

// JoinChallenge adds a participant to a challenge and returns the updated
// challenge.
func (s *Service) JoinChallenge(ctx context.Context, challengeID, userID string) (*Challenge, error) {
	if userID == "" {
		return nil, &ValidationError{Field: "user_id"}
	}
	return s.repo.JoinChallenge(ctx, challengeID)
}

func samplePosts() []*Post {
	now := time.Now().UTC()
	return []*Post{
		{
			ID:         "sample-1",
			UserID:     "system",
			AuthorName: "HeatShield Team",
			Content:    "Welcome to HeatShield India! Share your heat protection tips here.",
			Category:   CategoryGeneral,
			Likes:      25,
			CreatedAt:  now,
		},
		{
			ID:         "sample-2",
			UserID:     "system",
			AuthorName: "Health Expert",
			Content:    "Remember: Drink water before you feel thirsty! Stay hydrated in this heat.",
			Category:   CategoryTips,
			Likes:      42,
			CreatedAt:  now,
		},
	}
}

func sampleChallenges() []*Challenge {
	now := time.Now().UTC()
	return []*Challenge{
		{
			ID:           "sample-1",
			Title:        "30-Day Hydration Challenge",
			Description:  "Drink 3L+ water daily for 30 days",
			Type:         ChallengeHydration,
			Goal:         30,
			Participants: 156,
			StartDate:    now,
			IsActive:     true,
		},
		{
			ID:           "sample-2",
			Title:        "Plant 10 Trees",
			Description:  "Help cool your community by planting trees",
			Type:         ChallengeTreePlanting,
			Goal:         10,
			Participants: 89,
			StartDate:    now,
			IsActive:     true,
		},
	}
}
