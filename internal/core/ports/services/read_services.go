package services

import (
	"context"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
)

// PaymentReaderSvc exposes stored payments.
type PaymentReaderSvc interface {
	GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)
}

// LotReaderSvc exposes lots with their current balances.
type LotReaderSvc interface {
	GetLotByID(ctx context.Context, lotID string) (*domain.Lot, error)
}

// NotificationSvcFacade exposes a staff member's notifications.
type NotificationSvcFacade interface {
	ListCashierNotifications(ctx context.Context, cashierID string, limit, offset int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, cashierID, notificationID string) error
}
