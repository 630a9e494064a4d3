package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// RegistrationInput carries the fields accepted at registration.
type RegistrationInput struct {
	Phone            string   `json:"phone"`
	Name             string   `json:"name"`
	Age              int      `json:"age"`
	Location         string   `json:"location"`
	Language         string   `json:"language"`
	Occupation       string   `json:"occupation"`
	OutdoorHours     *float64 `json:"outdoor_hours"`
	HealthConditions []string `json:"health_conditions"`
}

// UpdateInput carries optional profile updates; nil fields are unchanged.
type UpdateInput struct {
	Name             *string  `json:"name"`
	Age              *int     `json:"age"`
	Location         *string  `json:"location"`
	Language         *string  `json:"language"`
	Occupation       *string  `json:"occupation"`
	OutdoorHours     *float64 `json:"outdoor_hours"`
	HealthConditions []string `json:"health_conditions"`
}

// ValidationError indicates a registration field is missing or malformed.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}

// Service provides user registration and profile operations.
type Service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new user. Registering an already-known phone number is
// idempotent and returns the existing profile with created=false.
func (s *Service) Register(ctx context.Context, input *RegistrationInput) (*User, bool, error) {
	if err := validateRegistration(input); err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetByPhone(ctx, input.Phone)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	now := time.Now().UTC()

	outdoorHours := DefaultOutdoorHours
	if input.OutdoorHours != nil {
		outdoorHours = *input.OutdoorHours
	}
	language := input.Language
	if language == "" {
		language = DefaultLanguage
	}
	conditions := input.HealthConditions
	if conditions == nil {
		conditions = []string{}
	}

	user := &User{
		ID:               "usr_" + uuid.New().String()[:22],
		Phone:            input.Phone,
		Name:             input.Name,
		Age:              input.Age,
		Location:         input.Location,
		Language:         language,
		Occupation:       input.Occupation,
		OutdoorHours:     outdoorHours,
		HealthConditions: conditions,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

// Get retrieves a user by ID.
func (s *Service) Get(ctx context.Context, userID string) (*User, error) {
	return s.repo.Get(ctx, userID)
}

// Update applies partial profile updates and returns the updated user.
func (s *Service) Update(ctx context.Context, userID string, input *UpdateInput) (*User, error) {
	user, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Age != nil {
		user.Age = *input.Age
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Language != nil {
		user.Language = *input.Language
	}
	if input.Occupation != nil {
		user.Occupation = *input.Occupation
	}
	if input.OutdoorHours != nil {
		user.OutdoorHours = *input.OutdoorHours
	}
	if input.HealthConditions != nil {
		user.HealthConditions = input.HealthConditions
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns all registered users.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func validateRegistration(input *RegistrationInput) error {
	switch {
	case input.Phone == "":
		return &ValidationError{Field: "phone"}
	case input.Name == "":
		return &ValidationError{Field: "name"}
	case input.Age == 0:
		return &ValidationError{Field: "age"}
	case input.Location == "":
		return &ValidationError{Field: "location"}
	}
	return nil
}
