package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStaffRepository struct {
	db *pgxpool.Pool
}

func newPgxStaffRepository(db *pgxpool.Pool) portsrepo.StaffReader {
	return &PgxStaffRepository{db: db}
}

// Ensure PgxStaffRepository implements portsrepo.StaffReader
var _ portsrepo.StaffReader = (*PgxStaffRepository)(nil)

// Helper to convert models.StaffUser to domain.StaffUser
func toDomainStaffUser(m models.StaffUser) domain.StaffUser {
	return domain.StaffUser{
		ID:           m.ID,
		Username:     m.Username,
		Name:         m.Name.String,
		Role:         m.Role,
		PasswordHash: m.PasswordHash,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		DeletedAt:    m.DeletedAt,
	}
}

func (r *PgxStaffRepository) FindStaffByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	query := `
        SELECT id, username, password_hash, name, role, created_at, updated_at, deleted_at
        FROM staff_users
        WHERE lower(username) = $1 AND deleted_at IS NULL;
    `
	var m models.StaffUser
	err := r.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(username))).Scan(
		&m.ID, &m.Username, &m.PasswordHash, &m.Name, &m.Role, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff user %s: %w", username, err)
	}
	user := toDomainStaffUser(m)
	return &user, nil
}
