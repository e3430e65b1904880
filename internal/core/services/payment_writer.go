package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/utils"
	"github.com/google/uuid"
)

type paymentWriter struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
}

func NewPaymentWriter(paymentRepo portsrepo.PaymentRepositoryFacade, options ...ServiceOption) portssvc.PaymentWriterSvc {
	return &paymentWriter{BaseService: newBaseService(options...), paymentRepo: paymentRepo}
}

var _ portssvc.PaymentWriterSvc = (*paymentWriter)(nil)

func (s *paymentWriter) WritePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error) {
	now := s.Now()
	reference := utils.WalkInReferenceNumber(now, draft.ProcessedBy)
	if draft.PaymentStatus == "" {
		draft.PaymentStatus = domain.PaymentCompleted
	}

	if draft.SourcePaymentID != "" {
		updated, err := s.confirmSourcePayment(ctx, draft, reference)
		if err == nil {
			return updated, nil
		}
		s.LogWarn(ctx, "Source payment could not be updated, falling back to insert",
			slog.String("source_payment_id", draft.SourcePaymentID),
			slog.String("error", err.Error()))
	}

	payment := domain.Payment{
		ID:              uuid.NewString(),
		ClientID:        draft.ClientID,
		LotID:           draft.LotID,
		Amount:          draft.Amount,
		PaymentType:     draft.PaymentType,
		PaymentMethod:   draft.PaymentMethod,
		PaymentStatus:   draft.PaymentStatus,
		PaymentDate:     now,
		ProcessedBy:     draft.ProcessedBy,
		ReferenceNumber: reference,
		Notes:           draft.Notes,
		AgreementText:   draft.AgreementText,
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to insert payment", slog.String("client_id", draft.ClientID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	s.LogInfo(ctx, "Payment recorded", slog.String("payment_id", payment.ID), slog.String("reference_number", reference))
	return &payment, nil
}

// confirmSourcePayment overwrites a queued payment in place, keeping its reference number.
func (s *paymentWriter) confirmSourcePayment(ctx context.Context, draft domain.PaymentDraft, reference string) (*domain.Payment, error) {
	existing, err := s.paymentRepo.FindPaymentByID(ctx, draft.SourcePaymentID)
	if err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}

	now := s.Now()
	updated := *existing
	updated.ClientID = draft.ClientID
	updated.LotID = draft.LotID
	updated.Amount = draft.Amount
	updated.PaymentType = draft.PaymentType
	updated.PaymentMethod = draft.PaymentMethod
	updated.PaymentStatus = draft.PaymentStatus
	updated.PaymentDate = now
	updated.ProcessedBy = draft.ProcessedBy
	updated.Notes = draft.Notes
	if draft.AgreementText != "" {
		updated.AgreementText = draft.AgreementText
	}
	updated.UpdatedAt = now
	if updated.ReferenceNumber == "" {
		updated.ReferenceNumber = reference
	}

	if err := s.paymentRepo.UpdatePayment(ctx, updated); err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}

	s.LogInfo(ctx, "Source payment confirmed", slog.String("payment_id", updated.ID), slog.String("reference_number", updated.ReferenceNumber))
	return &updated, nil
}
