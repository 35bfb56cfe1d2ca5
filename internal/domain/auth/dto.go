package auth

import (
	"github.com/venuehall/venue-api/internal/domain/user"
)

// LoginRequest for POST /auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest for POST /auth/refresh and /auth/logout
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokensResponse represents tokens in API response
type TokensResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"` // seconds until access token expires
}

// AuthResponse returned after login
type AuthResponse struct {
	User   *user.UserResponse `json:"user"`
	Tokens TokensResponse     `json:"tokens"`
}
