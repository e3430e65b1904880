package repositories

import (
	"context"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// StaffReader defines read operations for staff accounts
type StaffReader interface {
	// FindStaffByUsername retrieves a non-deleted staff user by case-insensitive username.
	FindStaffByUsername(ctx context.Context, username string) (*domain.StaffUser, error)
}
