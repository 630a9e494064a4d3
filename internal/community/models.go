// Package community provides the community feed and health challenge
// features: posts, post categories and joinable challenges.
package community

import (
	"errors"
	"time"
)

// Package errors.
var (
	ErrChallengeNotFound = errors.New("challenge not found")
)

// PostCategory classifies a community post.
type PostCategory string

const (
	CategoryGeneral PostCategory = "general"
	CategoryTips    PostCategory = "tips"
	CategoryAlert   PostCategory = "alert"
	CategorySuccess PostCategory = "success"
)

// Post is one community feed entry.
type Post struct {
	// ID is the unique post identifier (format: pst_XXXX).
	ID string `json:"post_id"`

	// UserID identifies the author.
	UserID string `json:"user_id"`

	// AuthorName is the display name shown with the post.
	AuthorName string `json:"author_name"`

	// Content is the post body.
	Content string `json:"content"`

	// Category classifies the post.
	Category PostCategory `json:"category"`

	// Likes is the like count.
	Likes int `json:"likes"`

	// CreatedAt is when the post was created.
	CreatedAt time.Time `json:"created_at"`
}

// ChallengeType classifies a health challenge.
type ChallengeType string

const (
	ChallengeHydration    ChallengeType = "hydration"
	ChallengeTreePlanting ChallengeType = "tree_planting"
	ChallengeAwareness    ChallengeType = "awareness"
)

// Challenge is a joinable community health challenge.
type Challenge struct {
	// ID is the unique challenge identifier (format: chl_XXXX).
	ID string `json:"challenge_id"`

	// Title is the challenge headline.
	Title string `json:"title"`

	// Description explains the challenge.
	Description string `json:"description"`

	// Type classifies the challenge.
	Type ChallengeType `json:"type"`

	// Goal is the target quantity (days, trees, etc).
	Goal int `json:"goal"`

	// Participants is the current participant count.
	Participants int `json:"participants"`

	// StartDate is when the challenge opened.
	StartDate time.Time `json:"start_date"`

	// EndDate is when the challenge closes, if set.
	EndDate *time.Time `json:"end_date"`

	// IsActive reports whether the challenge accepts new participants.
	IsActive bool `json:"is_active"`
}
