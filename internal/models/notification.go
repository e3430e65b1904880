package models

import (
	"database/sql"
	"time"
)

// Notification represents a row of the notifications table.
type Notification struct {
	ID               string         `db:"id"`
	RecipientType    string         `db:"recipient_type"`
	RecipientID      string         `db:"recipient_id"`
	Type             string         `db:"type"`
	Title            string         `db:"title"`
	Message          string         `db:"message"`
	RelatedPaymentID sql.NullString `db:"related_payment_id"`
	IsRead           bool           `db:"is_read"`
	Priority         string         `db:"priority"`
	CreatedAt        time.Time      `db:"created_at"`
}

// ActivityLog represents a row of the activity_logs table.
// AffectedResources is stored as JSONB.
type ActivityLog struct {
	ID                string         `db:"id"`
	ActorType         string         `db:"actor_type"`
	ActorID           string         `db:"actor_id"`
	ActorUsername     sql.NullString `db:"actor_username"`
	Action            string         `db:"action"`
	Details           string         `db:"details"`
	Category          string         `db:"category"`
	Status            string         `db:"status"`
	AffectedResources []byte         `db:"affected_resources"`
	CreatedAt         time.Time      `db:"created_at"`
}
