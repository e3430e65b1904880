package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind distinguishes the PDFs issued for a payment.
type DocumentKind string

const (
	DocumentInvoice     DocumentKind = "invoice"
	DocumentCertificate DocumentKind = "certificate"
)

// IssuedDocument describes a PDF that was uploaded to object storage.
type IssuedDocument struct {
	Kind     DocumentKind
	Number   string
	Bucket   string
	Path     string
	URL      string
	Template bool
}

// InvoiceDocument is everything printed on a payment invoice.
type InvoiceDocument struct {
	OrganizationName string
	InvoiceNumber    string
	IssuedAt         time.Time
	ReferenceNumber  string
	ClientName       string
	ClientEmail      string
	LotNumber        string
	LotType          string
	SectionName      string
	LotPrice         decimal.Decimal
	Amount           decimal.Decimal
	AmountInWords    string
	RemainingBalance decimal.Decimal
	BalanceKnown     bool
	PaymentType      string
	PaymentMethod    string
	PaymentStatus    string
	CashierName      string
	Notes            string
	AgreementText    string
}

// CertificateDocument is everything printed on a certificate of ownership.
type CertificateDocument struct {
	OrganizationName   string
	CertificateNumber  string
	IssuedAt           time.Time
	ClientName         string
	Section            string
	Block              string
	LotNumber          string
	LotType            string
	SignedAt           time.Time
	AuthorizedBy       string
	AuthorizedPosition string
}
