package repositories

import (
	"context"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// NotificationWriter appends notifications.
type NotificationWriter interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	// MarkNotificationRead flags a notification owned by recipientID as read.
	MarkNotificationRead(ctx context.Context, notificationID, recipientID string) error
}

// NotificationReader lists notifications for a recipient, newest first.
type NotificationReader interface {
	ListNotificationsByRecipient(ctx context.Context, recipientType, recipientID string, limit, offset int) ([]domain.Notification, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}

// ActivityLogWriter appends audit entries.
type ActivityLogWriter interface {
	SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error
}
