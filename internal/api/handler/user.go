package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/user"
)

// UserHandler handles user registration and profile endpoints.
type UserHandler struct {
	users *user.Service
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /v1/users - register a new user. Registering a
// known phone number returns the existing profile with 200 instead of 201.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input user.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	registered, created, err := h.users.Register(r.Context(), &input)
	if err != nil {
		var verr *user.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: verr.Field, Message: "required", Code: "REQUIRED"},
			})
			return
		}
		response.InternalError(w, r, "could not register user")
		return
	}

	if !created {
		response.JSON(w, r, http.StatusOK, models.UserResponse{
			Message: "User already registered",
			User:    registered,
		})
		return
	}

	response.Created(w, r, "/v1/users/"+registered.ID, models.UserResponse{
		Message: "User registered successfully",
		User:    registered,
	})
}

// Get handles GET /v1/users/{userId} - get user profile.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	u, err := h.users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(w, r, "user not found")
			return
		}
		response.InternalError(w, r, "could not load user")
		return
	}

	response.JSON(w, r, http.StatusOK, models.UserResponse{User: u})
}

// Update handles PUT /v1/users/{userId} - update user profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var input user.UpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	u, err := h.users.Update(r.Context(), userID, &input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			response.NotFound(w, r, "user not found")
			return
		}
		response.InternalError(w, r, "could not update user")
		return
	}

	response.JSON(w, r, http.StatusOK, models.UserResponse{
		Message: "User updated successfully",
		User:    u,
	})
}
