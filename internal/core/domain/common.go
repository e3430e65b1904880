package domain

import "time"

// Timestamps holds the row bookkeeping columns shared by every table.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
