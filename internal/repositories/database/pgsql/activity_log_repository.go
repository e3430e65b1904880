package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityLogRepository struct {
	pool *pgxpool.Pool
}

func newPgxActivityLogRepository(pool *pgxpool.Pool) portsrepo.ActivityLogWriter {
	return &PgxActivityLogRepository{pool: pool}
}

var _ portsrepo.ActivityLogWriter = (*PgxActivityLogRepository)(nil)

func toModelActivityLog(d domain.ActivityLog) (models.ActivityLog, error) {
	resources := d.AffectedResources
	if resources == nil {
		resources = []domain.AffectedResource{}
	}
	raw, err := json.Marshal(resources)
	if err != nil {
		return models.ActivityLog{}, fmt.Errorf("failed to encode affected resources: %w", err)
	}
	return models.ActivityLog{
		ID:                d.ID,
		ActorType:         d.ActorType,
		ActorID:           d.ActorID,
		ActorUsername:     models.NullString(d.ActorUsername),
		Action:            d.Action,
		Details:           d.Details,
		Category:          d.Category,
		Status:            d.Status,
		AffectedResources: raw,
		CreatedAt:         d.CreatedAt,
	}, nil
}

func (r *PgxActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	m, err := toModelActivityLog(entry)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO activity_logs (id, actor_type, actor_id, actor_username, action, details, category, status, affected_resources, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10);
	`
	_, err = r.pool.Exec(ctx, query,
		m.ID,
		m.ActorType,
		m.ActorID,
		m.ActorUsername,
		m.Action,
		m.Details,
		m.Category,
		m.Status,
		string(m.AffectedResources),
		m.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "activity log")
	}
	return nil
}
