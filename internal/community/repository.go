package community

import (
	"context"
	"sort"
	"sync"
)

// Repository defines the interface for community data persistence.
type Repository interface {
	// CreatePost stores a new post.
	CreatePost(ctx context.Context, post *Post) error

	// ListPosts returns up to limit posts, most recent first, optionally
	// filtered by category.
	ListPosts(ctx context.Context, limit int, category PostCategory) ([]*Post, error)

	// CreateChallenge stores a new challenge.
	CreateChallenge(ctx context.Context, challenge *Challenge) error

	// ListActiveChallenges returns active challenges, newest start first.
	ListActiveChallenges(ctx context.Context) ([]*Challenge, error)

	// JoinChallenge increments a challenge's participant count and returns
	// the updated challenge.
	JoinChallenge(ctx context.Context, challengeID string) (*Challenge, error)
}

// InMemoryRepository is an in-memory implementation of Repository used for
// tests and local development.
type InMemoryRepository struct {
	mu         sync.RWMutex
	posts      []*Post
	challenges map[string]*Challenge
}

// NewInMemoryRepository creates a new in-memory community repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		challenges: make(map[string]*Challenge),
	}
}

// CreatePost stores a new post.
func (r *InMemoryRepository) CreatePost(_ context.Context, post *Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *post
	r.posts = append(r.posts, &stored)
	return nil
}

// ListPosts returns up to limit posts, most recent first.
func (r *InMemoryRepository) ListPosts(_ context.Context, limit int, category PostCategory) ([]*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Post, 0, len(r.posts))
	for _, post := range r.posts {
		if category != "" && post.Category != category {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// CreateChallenge stores a new challenge.
func (r *InMemoryRepository) CreateChallenge(_ context.Context, challenge *Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *challenge
	r.challenges[challenge.ID] = &stored
	return nil
}

// ListActiveChallenges returns active challenges, newest start first.
func (r *InMemoryRepository) ListActiveChallenges(_ context.Context) ([]*Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*Challenge{}
	for _, challenge := range r.challenges {
		if !challenge.IsActive {
			continue
		}
		challengeCopy := *challenge
		result = append(result, &challengeCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartDate.After(result[j].StartDate)
	})
	return result, nil
}

// JoinChallenge increments a challenge's participant count.
func (r *InMemoryRepository) JoinChallenge(_ context.Context, challengeID string) (*Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	challenge, ok := r.challenges[challengeID]
	if !ok {
		return nil, ErrChallengeNotFound
	}

	challenge.Participants++
	challengeCopy := *challenge
	return &challengeCopy, nil
}

// Ensure InMemoryRepository implements Repository interface.
var _ Repository = (*InMemoryRepository)(nil)
