package dto

import (
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse defines the structure for the login response.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
}

// ToLoginResponse converts an issued token into its response DTO.
func ToLoginResponse(t *domain.AuthToken) LoginResponse {
	return LoginResponse{
		Token:     t.Token,
		ExpiresAt: t.ExpiresAt,
		UserID:    t.User.ID,
		Username:  t.User.Username,
		Role:      t.User.Role,
	}
}
