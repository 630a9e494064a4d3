package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Princebca/heatshield-backend/internal/api/models"
	"github.com/Princebca/heatshield-backend/internal/api/response"
	"github.com/Princebca/heatshield-backend/internal/community"
)

// CommunityHandler handles community feed and challenge endpoints.
type CommunityHandler struct {
	communities *community.Service
}

// NewCommunityHandler creates a new CommunityHandler.
func NewCommunityHandler(communities *community.Service) *CommunityHandler {
	return &CommunityHandler{communities: communities}
}

// ListPosts handles GET /v1/community/posts - recent community posts.
func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, r, "limit must be an integer", nil)
			return
		}
		limit = parsed
	}
	category := community.PostCategory(r.URL.Query().Get("category"))

	posts, err := h.communities.ListPosts(r.Context(), limit, category)
	if err != nil {
		response.InternalError(w, r, "could not load posts")
		return
	}

	response.JSON(w, r, http.StatusOK, models.PostsResponse{
		Posts:   posts,
		Count:   len(posts),
		Success: true,
	})
}

// CreatePost handles POST /v1/community/posts - create a community post.
func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input community.PostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	post, err := h.communities.CreatePost(r.Context(), &input)
	if err != nil {
		var verr *community.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: verr.Field, Message: "required", Code: "REQUIRED"},
			})
			return
		}
		response.InternalError(w, r, "could not create post")
		return
	}

	response.Created(w, r, "", models.PostResponse{
		Message: "Post created successfully",
		Post:    post,
		Success: true,
	})
}

// ListChallenges handles GET /v1/community/challenges - active challenges.
func (h *CommunityHandler) ListChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.communities.ListChallenges(r.Context())
	if err != nil {
		response.InternalError(w, r, "could not load challenges")
		return
	}

	response.JSON(w, r, http.StatusOK, models.ChallengesResponse{
		Challenges: challenges,
		Count:      len(challenges),
		Success:    true,
	})
}

// JoinChallenge handles POST /v1/community/challenges/{challengeId}/join.
func (h *CommunityHandler) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID := chi.URLParam(r, "challengeId")

	var req models.JoinChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	challenge, err := h.communities.JoinChallenge(r.Context(), challengeID, req.UserID)
	if err != nil {
		var verr *community.ValidationError
		switch {
		case errors.As(err, &verr):
			response.BadRequest(w, r, err.Error(), []models.FieldError{
				{Field: verr.Field, Message: "required", Code: "REQUIRED"},
			})
		case errors.Is(err, community.ErrChallengeNotFound):
			response.NotFound(w, r, "challenge not found")
		default:
			response.InternalError(w, r, "could not join challenge")
		}
		return
	}

	response.JSON(w, r, http.StatusOK, models.ChallengeResponse{
		Message:   "Joined challenge successfully",
		Challenge: challenge,
		Success:   true,
	})
}
