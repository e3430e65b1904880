package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	pool *pgxpool.Pool
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{pool: pool}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (id, recipient_type, recipient_id, type, title, message, related_payment_id, is_read, priority, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		n.ID,
		n.RecipientType,
		n.RecipientID,
		n.Type,
		n.Title,
		n.Message,
		models.NullString(n.RelatedPaymentID),
		n.IsRead,
		n.Priority,
		n.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "notification")
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2;`,
		notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return expectOneRow(tag, "notification", notificationID)
}

func (r *PgxNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientType, recipientID string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT id, recipient_type, recipient_id, type, title, message, related_payment_id, is_read, priority, created_at
		FROM notifications
		WHERE recipient_type = $1 AND recipient_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.pool.Query(ctx, query, recipientType, recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(
			&m.ID,
			&m.RecipientType,
			&m.RecipientID,
			&m.Type,
			&m.Title,
			&m.Message,
			&m.RelatedPaymentID,
			&m.IsRead,
			&m.Priority,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, domain.Notification{
			ID:               m.ID,
			RecipientType:    m.RecipientType,
			RecipientID:      m.RecipientID,
			Type:             m.Type,
			Title:            m.Title,
			Message:          m.Message,
			RelatedPaymentID: m.RelatedPaymentID.String,
			IsRead:           m.IsRead,
			Priority:         m.Priority,
			CreatedAt:        m.CreatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}
