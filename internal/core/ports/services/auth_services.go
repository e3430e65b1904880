package services

import (
	"context"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// AuthSvc signs staff in and issues access tokens.
type AuthSvc interface {
	Login(ctx context.Context, username, password string) (*domain.AuthToken, error)
}
