// Package user provides user registration and profile management.
//
// Profiles carry the personal attributes the risk engine needs (age, outdoor
// hours, health conditions) plus contact and locale details used by the
// serving layer. Phone numbers are the registration key; a repeat
// registration for a known phone returns the existing profile.
package user

import (
	"time"

	"github.com/Princebca/heatshield-backend/internal/risk"
)

// DefaultOutdoorHours is assumed when a registration omits outdoor hours.
const DefaultOutdoorHours = 4.0

// DefaultLanguage is assumed when a registration omits a language.
const DefaultLanguage = "English"

// User represents a registered user profile.
type User struct {
	// ID is the unique user identifier (format: usr_XXXX).
	ID string `json:"user_id"`

	// Phone is the user's phone number, unique across users.
	Phone string `json:"phone"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Age in years.
	Age int `json:"age"`

	// Location is a free-form place description (e.g., "Rourkela, Odisha").
	Location string `json:"location"`

	// Language is the user's preferred language.
	Language string `json:"language"`

	// Occupation is the user's occupation, if provided.
	Occupation string `json:"occupation,omitempty"`

	// OutdoorHours is the average daily hours spent outdoors.
	OutdoorHours float64 `json:"outdoor_hours"`

	// HealthConditions is the user's list of health conditions.
	HealthConditions []string `json:"health_conditions"`

	// CreatedAt is when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}

// RiskProfile converts the user into the risk engine's profile view.
func (u *User) RiskProfile() risk.Profile {
	age := float64(u.Age)
	outdoorHours := u.OutdoorHours
	return risk.Profile{
		Age:              &age,
		OutdoorHours:     &outdoorHours,
		HealthConditions: append([]string(nil), u.HealthConditions...),
	}
}
