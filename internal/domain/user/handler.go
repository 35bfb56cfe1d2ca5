package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/venuehall/venue-api/internal/middleware"
	"github.com/venuehall/venue-api/internal/pkg/password"
	"github.com/venuehall/venue-api/internal/pkg/response"
	"github.com/venuehall/venue-api/internal/pkg/validator"
)

// Handler handles user HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates user handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.repo.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")
		response.InternalError(w)
		return
	}

	items := make([]*UserResponse, len(users))
	for i, u := range users {
		items[i] = ToResponse(u)
	}

	response.OK(w, items)
}

// Create handles POST /users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		response.InternalError(w)
		return
	}

	lang := Language(req.Language)
	if lang == "" {
		lang = LanguageEN
	}

	now := time.Now()
	u := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
		Role:         Role(req.Role),
		Language:     lang,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repo.Create(r.Context(), u); err != nil {
		if err == ErrUsernameTaken {
			response.Conflict(w, "Username already taken")
			return
		}
		log.Error().Err(err).Str("username", req.Username).Msg("failed to create user")
		response.InternalError(w)
		return
	}

	response.Created(w, ToResponse(u))
}

// UpdateLanguage handles PATCH /users/me/language
func (h *Handler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	var req UpdateLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errors := validator.Validate(&req); errors != nil {
		response.ValidationError(w, errors)
		return
	}

	userID := middleware.GetUserID(r.Context())
	if err := h.repo.UpdateLanguage(r.Context(), userID, Language(req.Language)); err != nil {
		if err == ErrUserNotFound {
			response.NotFound(w, "User not found")
			return
		}
		log.Error().Err(err).Str("user_id", userID.String()).Msg("failed to update language")
		response.InternalError(w)
		return
	}

	response.OK(w, map[string]string{"language": req.Language})
}
