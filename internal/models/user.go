package models

import (
	"database/sql"
	"time"
)

// StaffUser is a row of staff_users.
type StaffUser struct {
	ID           string         `db:"id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         sql.NullString `db:"name"`
	Role         string         `db:"role"`
	RowTimestamps
	DeletedAt *time.Time `db:"deleted_at"`
}
