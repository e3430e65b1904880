package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
)

type paymentReadService struct {
	BaseService
	paymentRepo portsrepo.PaymentReader
}

func NewPaymentReadService(paymentRepo portsrepo.PaymentReader, options ...ServiceOption) portssvc.PaymentReaderSvc {
	return &paymentReadService{BaseService: newBaseService(options...), paymentRepo: paymentRepo}
}

var _ portssvc.PaymentReaderSvc = (*paymentReadService)(nil)

func (s *paymentReadService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("Payment not found")
		}
		s.LogError(ctx, err, "Failed to get payment", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

type lotReadService struct {
	BaseService
	lotRepo portsrepo.LotReader
}

func NewLotReadService(lotRepo portsrepo.LotReader, options ...ServiceOption) portssvc.LotReaderSvc {
	return &lotReadService{BaseService: newBaseService(options...), lotRepo: lotRepo}
}

var _ portssvc.LotReaderSvc = (*lotReadService)(nil)

func (s *lotReadService) GetLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	lot, err := s.lotRepo.FindLotByID(ctx, lotID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundf("Lot not found")
		}
		s.LogError(ctx, err, "Failed to get lot", slog.String("lot_id", lotID))
		return nil, fmt.Errorf("failed to get lot: %w", err)
	}
	return lot, nil
}

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, options ...ServiceOption) portssvc.NotificationSvcFacade {
	return &notificationService{BaseService: newBaseService(options...), notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) ListCashierNotifications(ctx context.Context, cashierID string, limit, offset int) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotificationsByRecipient(ctx, recipientTypeCashier, cashierID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("cashier_id", cashierID))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return notifications, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, cashierID, notificationID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, cashierID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFoundf("Notification not found")
		}
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}
