package domain

import "time"

// Notification priorities.
const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// Notification is an append-only message addressed to a staff member or client.
type Notification struct {
	ID               string    `json:"id"`
	RecipientType    string    `json:"recipient_type"`
	RecipientID      string    `json:"recipient_id"`
	Type             string    `json:"type"`
	Title            string    `json:"title"`
	Message          string    `json:"message"`
	RelatedPaymentID string    `json:"related_payment_id,omitempty"`
	IsRead           bool      `json:"is_read"`
	Priority         string    `json:"priority"`
	CreatedAt        time.Time `json:"created_at"`
}
