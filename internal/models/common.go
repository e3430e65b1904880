package models

import "time"

// RowTimestamps holds the bookkeeping columns shared by every table.
type RowTimestamps struct {
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
