package models

import "github.com/Princebca/heatshield-backend/internal/user"

// UserResponse wraps a single user profile.
type UserResponse struct {
	Message string     `json:"message,omitempty"`
	User    *user.User `json:"user"`
}
