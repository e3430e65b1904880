package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	pool *pgxpool.Pool
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{pool: pool}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `id, client_id, lot_id, amount, payment_type, payment_method, payment_status, payment_date,
	processed_by, reference_number, invoice_number, invoice_pdf_url, notes, agreement_text,
	created_at, updated_at, deleted_at`

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		ID:              d.ID,
		ClientID:        d.ClientID,
		LotID:           models.NullString(d.LotID),
		Amount:          d.Amount,
		PaymentType:     d.PaymentType,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   string(d.PaymentStatus),
		PaymentDate:     d.PaymentDate,
		ProcessedBy:     models.NullString(d.ProcessedBy),
		ReferenceNumber: models.NullString(d.ReferenceNumber),
		InvoiceNumber:   models.NullString(d.InvoiceNumber),
		InvoicePDFURL:   models.NullString(d.InvoicePDFURL),
		Notes:           models.NullString(d.Notes),
		AgreementText:   models.NullString(d.AgreementText),
		RowTimestamps:   models.RowTimestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		DeletedAt:       d.DeletedAt,
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		ID:              m.ID,
		ClientID:        m.ClientID,
		LotID:           m.LotID.String,
		Amount:          m.Amount,
		PaymentType:     m.PaymentType,
		PaymentMethod:   m.PaymentMethod,
		PaymentStatus:   domain.PaymentStatus(m.PaymentStatus),
		PaymentDate:     m.PaymentDate,
		ProcessedBy:     m.ProcessedBy.String,
		ReferenceNumber: m.ReferenceNumber.String,
		InvoiceNumber:   m.InvoiceNumber.String,
		InvoicePDFURL:   m.InvoicePDFURL.String,
		Notes:           m.Notes.String,
		AgreementText:   m.AgreementText.String,
		Timestamps:      domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		DeletedAt:       m.DeletedAt,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var m models.Payment
	err := row.Scan(
		&m.ID,
		&m.ClientID,
		&m.LotID,
		&m.Amount,
		&m.PaymentType,
		&m.PaymentMethod,
		&m.PaymentStatus,
		&m.PaymentDate,
		&m.ProcessedBy,
		&m.ReferenceNumber,
		&m.InvoiceNumber,
		&m.InvoicePDFURL,
		&m.Notes,
		&m.AgreementText,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainPayment(m)
	return &d, nil
}

func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1 AND deleted_at IS NULL;`
	payment, err := scanPayment(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	return payment, nil
}

func (r *PgxPaymentRepository) FindLatestInvoicedPayment(ctx context.Context, clientID string) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE client_id = $1 AND deleted_at IS NULL AND invoice_pdf_url IS NOT NULL AND invoice_pdf_url <> ''
		ORDER BY payment_date DESC, created_at DESC
		LIMIT 1;
	`
	payment, err := scanPayment(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest invoice for client %s: %w", clientID, err)
	}
	return payment, nil
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)
	query := `
		INSERT INTO payments (id, client_id, lot_id, amount, payment_type, payment_method, payment_status, payment_date,
			processed_by, reference_number, notes, agreement_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.ClientID,
		m.LotID,
		m.Amount,
		m.PaymentType,
		m.PaymentMethod,
		m.PaymentStatus,
		m.PaymentDate,
		m.ProcessedBy,
		m.ReferenceNumber,
		m.Notes,
		m.AgreementText,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "payment")
	}
	return nil
}

// UpdatePayment overwrites the confirmation fields; created_at is left alone.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)
	query := `
		UPDATE payments SET
			client_id = $2, lot_id = $3, amount = $4, payment_type = $5, payment_method = $6,
			payment_status = $7, payment_date = $8, processed_by = $9, reference_number = $10,
			notes = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.ID,
		m.ClientID,
		m.LotID,
		m.Amount,
		m.PaymentType,
		m.PaymentMethod,
		m.PaymentStatus,
		m.PaymentDate,
		m.ProcessedBy,
		m.ReferenceNumber,
		m.Notes,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment %s: %w", payment.ID, err)
	}
	return expectOneRow(tag, "payment", payment.ID)
}

func (r *PgxPaymentRepository) UpdatePaymentInvoice(ctx context.Context, paymentID, invoiceNumber, invoiceURL, agreementText string, now time.Time) error {
	query := `
		UPDATE payments SET invoice_number = $2, invoice_pdf_url = $3, agreement_text = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL;
	`
	tag, err := r.pool.Exec(ctx, query, paymentID, invoiceNumber, invoiceURL, models.NullString(agreementText), now)
	if err != nil {
		return fmt.Errorf("failed to link invoice to payment %s: %w", paymentID, err)
	}
	return expectOneRow(tag, "payment", paymentID)
}

func (r *PgxPaymentRepository) SumSettledPaymentsInTx(ctx context.Context, tx pgx.Tx, clientID, lotID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE client_id = $1 AND lot_id = $2 AND deleted_at IS NULL
			AND lower(trim(payment_status)) = ANY($3);
	`
	statuses := make([]string, len(domain.SettledPaymentStatuses))
	for i, s := range domain.SettledPaymentStatuses {
		statuses[i] = strings.ToLower(s)
	}
	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, clientID, lotID, statuses).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for client %s lot %s: %w", clientID, lotID, err)
	}
	return total, nil
}
