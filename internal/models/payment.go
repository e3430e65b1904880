package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a row of the payments table.
type Payment struct {
	ID              string          `db:"id"`
	ClientID        string          `db:"client_id"`
	LotID           sql.NullString  `db:"lot_id"`
	Amount          decimal.Decimal `db:"amount"`
	PaymentType     string          `db:"payment_type"`
	PaymentMethod   string          `db:"payment_method"`
	PaymentStatus   string          `db:"payment_status"`
	PaymentDate     time.Time       `db:"payment_date"`
	ProcessedBy     sql.NullString  `db:"processed_by"`
	ReferenceNumber sql.NullString  `db:"reference_number"`
	InvoiceNumber   sql.NullString  `db:"invoice_number"`
	InvoicePDFURL   sql.NullString  `db:"invoice_pdf_url"`
	Notes           sql.NullString  `db:"notes"`
	AgreementText   sql.NullString  `db:"agreement_text"`
	RowTimestamps
	DeletedAt *time.Time `db:"deleted_at"`
}
