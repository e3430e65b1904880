package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a non-deleted payment.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// FindLatestInvoicedPayment returns the client's most recent payment carrying an invoice PDF.
	FindLatestInvoicedPayment(ctx context.Context, clientID string) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment inserts a new payment row.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePayment overwrites the walk-in fields of an existing payment in place.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// UpdatePaymentInvoice links an issued invoice to the payment.
	UpdatePaymentInvoice(ctx context.Context, paymentID, invoiceNumber, invoiceURL, agreementText string, now time.Time) error
}

// PaymentTotals defines aggregate queries used by balance recomputation.
type PaymentTotals interface {
	// SumSettledPaymentsInTx sums non-deleted Completed/Paid payments for (client, lot) inside tx.
	SumSettledPaymentsInTx(ctx context.Context, tx pgx.Tx, clientID, lotID string) (decimal.Decimal, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentTotals
}
