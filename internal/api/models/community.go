package models

import "github.com/Princebca/heatshield-backend/internal/community"

// PostsResponse wraps a page of community posts.
type PostsResponse struct {
	Posts   []*community.Post `json:"posts"`
	Count   int               `json:"count"`
	Success bool              `json:"success"`
}

// PostResponse wraps a single created post.
type PostResponse struct {
	Message string          `json:"message"`
	Post    *community.Post `json:"post"`
	Success bool            `json:"success"`
}

// ChallengesResponse wraps the active challenge list.
type ChallengesResponse struct {
	Challenges []*community.Challenge `json:"challenges"`
	Count      int                    `json:"count"`
	Success    bool                   `json:"success"`
}

// ChallengeResponse wraps a single challenge.
type ChallengeResponse struct {
	Message   string               `json:"message"`
	Challenge *community.Challenge `json:"challenge"`
	Success   bool                 `json:"success"`
}

// JoinChallengeRequest identifies the joining user.
type JoinChallengeRequest struct {
	UserID string `json:"user_id"`
}
