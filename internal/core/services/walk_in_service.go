package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/memorial_park_app/internal/core/ports/services"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/shopspring/decimal"
)

// WalkInDeps are the collaborators of the walk-in orchestrator.
type WalkInDeps struct {
	Clients   portssvc.ClientResolverSvc
	Lots      portssvc.LotResolverSvc
	Payments  portssvc.PaymentWriterSvc
	Balances  portssvc.BalanceSvc
	Documents portssvc.DocumentIssuerSvc
	Notifier  portssvc.NotifierSvc
	ClientDir portsrepo.ClientReader
	Locker    gateways.Locker
	LockTTL   time.Duration
}

type walkInService struct {
	BaseService
	deps WalkInDeps
}

func NewWalkInService(deps WalkInDeps, options ...ServiceOption) portssvc.WalkInSvc {
	if deps.LockTTL <= 0 {
		deps.LockTTL = 30 * time.Second
	}
	return &walkInService{BaseService: newBaseService(options...), deps: deps}
}

var _ portssvc.WalkInSvc = (*walkInService)(nil)

func (s *walkInService) RecordWalkInPayment(ctx context.Context, req dto.WalkInPaymentRequest) (*domain.WalkInResult, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	client, err := s.deps.Clients.ResolveClient(ctx, req.ClientID, req.ClientName, req.ClientEmail)
	if err != nil {
		return nil, err
	}

	// Keyed on the resolved id so requests by id and by email share one lock.
	release := s.lock(ctx, walkInLockKey(client.ID))
	defer release()

	lot, err := s.deps.Lots.ResolveLot(ctx, req.LotID, client.ID)
	if err != nil {
		return nil, err
	}

	payment, err := s.deps.Payments.WritePayment(ctx, domain.PaymentDraft{
		SourcePaymentID: req.SourcePaymentID,
		ClientID:        client.ID,
		LotID:           lot.ID,
		Amount:          req.Amount,
		PaymentType:     req.PaymentType,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.Status(),
		ProcessedBy:     req.CashierID,
		Notes:           req.Notes,
		AgreementText:   req.AgreementText,
	})
	if err != nil {
		return nil, err
	}

	result := &domain.WalkInResult{Payment: *payment, Client: *client, Lot: *lot}

	// The payment is committed; nothing below may fail the request or be cut short by the caller.
	s.runPostWrite(context.WithoutCancel(ctx), req, result)
	return result, nil
}

func (s *walkInService) runPostWrite(ctx context.Context, req dto.WalkInPaymentRequest, result *domain.WalkInResult) {
	s.enrichClient(ctx, &result.Client)

	if result.Payment.PaymentStatus.Settled() {
		snapshot, err := s.deps.Balances.RecomputeBalances(ctx, result.Client.ID, result.Lot.ID)
		result.Balance = snapshot
		s.record(ctx, result, domain.StageBalanceRecomputed, false, err)
	} else {
		s.record(ctx, result, domain.StageBalanceRecomputed, true, nil)
	}

	var remaining *decimal.Decimal
	if result.Balance != nil {
		remaining = &result.Balance.LotBalance
	}
	invoice, err := s.deps.Documents.IssueInvoice(ctx, portssvc.InvoiceRequest{
		Payment:          result.Payment,
		Client:           result.Client,
		Lot:              result.Lot,
		CashierName:      cashierName(req),
		RemainingBalance: remaining,
	})
	if err == nil {
		result.Payment.InvoiceNumber = invoice.Number
		result.Payment.InvoicePDFURL = invoice.URL
	}
	s.record(ctx, result, domain.StageInvoiceIssued, false, err)

	certificate, err := s.deps.Documents.EnsureCertificate(ctx, result.Client.ID)
	if err == nil {
		result.ContractPDFURL = certificate.URL
	}
	s.record(ctx, result, domain.StageCertificateIssued, false, err)

	links := portssvc.DocumentLinks{
		ClientName:      result.Client.Name,
		Email:           result.Client.Email,
		ReferenceNumber: result.Payment.ReferenceNumber,
		InvoiceURL:      result.Payment.InvoicePDFURL,
		ContractURL:     result.ContractPDFURL,
	}
	if links.Email == "" || !links.HasAny() {
		s.record(ctx, result, domain.StageClientNotified, true, nil)
	} else {
		s.record(ctx, result, domain.StageClientNotified, false, s.deps.Notifier.EmailDocuments(ctx, links))
	}

	event := portssvc.WalkInEvent{
		Payment:         result.Payment,
		Client:          result.Client,
		Lot:             result.Lot,
		CashierID:       req.CashierID,
		CashierUsername: req.CashierUsername,
	}
	s.record(ctx, result, domain.StageCashierNotified, false, s.deps.Notifier.NotifyCashier(ctx, event))
	s.record(ctx, result, domain.StageActivityLogged, false, s.deps.Notifier.LogWalkInActivity(ctx, event))
	s.record(ctx, result, domain.StageClientActivated, false, s.deps.Notifier.ActivateClient(ctx, result.Client.ID))

	if failed := result.Failed(); len(failed) > 0 {
		s.LogWarn(ctx, "Walk-in payment recorded with failed follow-up steps",
			slog.String("payment_id", result.Payment.ID),
			slog.Int("failed_stages", len(failed)))
	}
}

// enrichClient fills a caller-supplied client's missing name or email from storage.
func (s *walkInService) enrichClient(ctx context.Context, client *domain.ResolvedClient) {
	if client.Name != "" && client.Email != "" {
		return
	}
	stored, err := s.deps.ClientDir.FindClientByID(ctx, client.ID)
	if err != nil {
		s.LogWarn(ctx, "Could not load client details", slog.String("client_id", client.ID), slog.String("error", err.Error()))
		return
	}
	if client.Name == "" {
		client.Name = stored.Name
	}
	if client.Email == "" {
		client.Email = stored.Email
	}
}

func (s *walkInService) record(ctx context.Context, result *domain.WalkInResult, stage domain.WalkInStage, skipped bool, err error) {
	result.Stages = append(result.Stages, domain.StageResult{Stage: stage, Skipped: skipped, Err: err})
	if err != nil {
		s.LogError(ctx, err, "Walk-in follow-up step failed",
			slog.String("stage", string(stage)),
			slog.String("payment_id", result.Payment.ID))
	}
}

// lock takes the per-client lock when possible. The returned func is always safe to call.
func (s *walkInService) lock(ctx context.Context, key string) func() {
	if s.deps.Locker == nil {
		return func() {}
	}
	lock, err := s.deps.Locker.Obtain(ctx, key, s.deps.LockTTL)
	if err != nil {
		if errors.Is(err, gateways.ErrLockNotObtained) {
			s.LogWarn(ctx, "Walk-in lock held elsewhere, proceeding", slog.String("key", key))
		} else {
			s.LogError(ctx, err, "Walk-in lock unavailable, proceeding", slog.String("key", key))
		}
		return func() {}
	}
	return func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.LogWarn(ctx, "Failed to release walk-in lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

func walkInLockKey(clientID string) string {
	return fmt.Sprintf("walk-in:client:%s", clientID)
}

func cashierName(req dto.WalkInPaymentRequest) string {
	if req.CashierUsername != "" {
		return req.CashierUsername
	}
	return req.CashierID
}
