package user

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest for POST /users
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Role     string `json:"role" validate:"required,role"`
	Language string `json:"language,omitempty" validate:"language"`
}

// UpdateLanguageRequest for PATCH /users/me/language
type UpdateLanguageRequest struct {
	Language string `json:"language" validate:"required,language"`
}

// UserResponse represents user in API responses, password excluded
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Language  string    `json:"language"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// ToResponse converts entity to response
func ToResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      string(u.Role),
		Language:  string(u.Language),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
