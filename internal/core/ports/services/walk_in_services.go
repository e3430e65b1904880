package services

import (
	"context"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ClientResolverSvc produces a definite client for a walk-in payment.
type ClientResolverSvc interface {
	// ResolveClient trusts a non-empty clientID; otherwise finds or creates a client by email.
	ResolveClient(ctx context.Context, clientID, name, email string) (*domain.ResolvedClient, error)
}

// LotResolverSvc produces the lot a walk-in payment applies to.
type LotResolverSvc interface {
	// ResolveLot fetches lotID when given, else the client's primary or oldest lot.
	ResolveLot(ctx context.Context, lotID, clientID string) (*domain.ResolvedLot, error)
}

// PaymentWriterSvc persists one payment event.
type PaymentWriterSvc interface {
	// WritePayment updates the source payment in place when possible, else inserts.
	WritePayment(ctx context.Context, draft domain.PaymentDraft) (*domain.Payment, error)
}

// BalanceSvc re-establishes the lot and client balance invariants.
type BalanceSvc interface {
	// RecomputeBalances returns nil, nil when the lot no longer exists.
	RecomputeBalances(ctx context.Context, clientID, lotID string) (*domain.BalanceSnapshot, error)
}

// InvoiceRequest is the input for issuing a payment invoice.
type InvoiceRequest struct {
	Payment          domain.Payment
	Client           domain.ResolvedClient
	Lot              domain.ResolvedLot
	CashierName      string
	RemainingBalance *decimal.Decimal
}

// DocumentIssuerSvc renders, uploads and links invoice and certificate PDFs.
type DocumentIssuerSvc interface {
	IssueInvoice(ctx context.Context, req InvoiceRequest) (*domain.IssuedDocument, error)
	// EnsureCertificate returns the client's existing certificate, issues a personalised one,
	// or falls back to the static template.
	EnsureCertificate(ctx context.Context, clientID string) (*domain.IssuedDocument, error)
}

// DocumentLinks are the document URLs sent to a client by email.
type DocumentLinks struct {
	ClientName      string
	Email           string
	ReferenceNumber string
	InvoiceURL      string
	ContractURL     string
}

// HasAny reports whether at least one link is present.
func (d DocumentLinks) HasAny() bool {
	return d.InvoiceURL != "" || d.ContractURL != ""
}

// WalkInEvent is what the notifier needs to know about a recorded walk-in payment.
type WalkInEvent struct {
	Payment         domain.Payment
	Client          domain.ResolvedClient
	Lot             domain.ResolvedLot
	CashierID       string
	CashierUsername string
}

// NotifierSvc fans out best-effort side effects after a payment is recorded.
type NotifierSvc interface {
	EmailDocuments(ctx context.Context, links DocumentLinks) error
	NotifyCashier(ctx context.Context, event WalkInEvent) error
	LogWalkInActivity(ctx context.Context, event WalkInEvent) error
	ActivateClient(ctx context.Context, clientID string) error
}

// WalkInSvc records a walk-in payment end to end.
type WalkInSvc interface {
	RecordWalkInPayment(ctx context.Context, req dto.WalkInPaymentRequest) (*domain.WalkInResult, error)
}

// DocumentEmailSvc re-sends a client's documents by email.
type DocumentEmailSvc interface {
	SendClientDocuments(ctx context.Context, clientID string) error
}
