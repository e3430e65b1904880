package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is free text in storage; these are the values the service writes itself.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "Completed"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentPending   PaymentStatus = "Pending"
)

// SettledPaymentStatuses are the statuses summed into a lot's paid total.
var SettledPaymentStatuses = []string{string(PaymentCompleted), string(PaymentPaid)}

// Settled reports whether the status counts toward the lot balance.
func (s PaymentStatus) Settled() bool {
	for _, v := range SettledPaymentStatuses {
		if strings.EqualFold(strings.TrimSpace(string(s)), v) {
			return true
		}
	}
	return false
}

// Payment is one row of the payments table.
type Payment struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	LotID           string          `json:"lot_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentType     string          `json:"payment_type"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentStatus   PaymentStatus   `json:"payment_status"`
	PaymentDate     time.Time       `json:"payment_date"`
	ProcessedBy     string          `json:"processed_by"`
	ReferenceNumber string          `json:"reference_number"`
	InvoiceNumber   string          `json:"invoice_number"`
	InvoicePDFURL   string          `json:"invoice_pdf_url"`
	Notes           string          `json:"notes"`
	AgreementText   string          `json:"agreement_text"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// PaymentDraft is what the payment writer persists for one walk-in event.
type PaymentDraft struct {
	SourcePaymentID string
	ClientID        string
	LotID           string
	Amount          decimal.Decimal
	PaymentType     string
	PaymentMethod   string
	PaymentStatus   PaymentStatus
	ProcessedBy     string
	Notes           string
	AgreementText   string
}
