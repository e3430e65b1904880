package domain

import "time"

// AffectedResource names one row touched by a logged action.
type AffectedResource struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// ActivityLog is one append-only audit entry.
type ActivityLog struct {
	ID                string             `json:"id"`
	ActorType         string             `json:"actor_type"`
	ActorID           string             `json:"actor_id"`
	ActorUsername     string             `json:"actor_username"`
	Action            string             `json:"action"`
	Details           string             `json:"details"`
	Category          string             `json:"category"`
	Status            string             `json:"status"`
	AffectedResources []AffectedResource `json:"affected_resources"`
	CreatedAt         time.Time          `json:"created_at"`
}
