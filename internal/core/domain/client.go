package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ClientStatus is the lifecycle status stored on a client row.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// ContractFields are the ownership details printed on a certificate of ownership.
type ContractFields struct {
	Section            string     `json:"contract_section"`
	Block              string     `json:"contract_block"`
	LotNumber          string     `json:"contract_lot_number"`
	LotType            string     `json:"contract_lot_type"`
	SignedAt           *time.Time `json:"contract_signed_at"`
	AuthorizedBy       string     `json:"contract_authorized_by"`
	AuthorizedPosition string     `json:"contract_authorized_pos"`
}

// Complete reports whether all seven fields needed for a personalised certificate are present.
func (f ContractFields) Complete() bool {
	for _, v := range []string{f.Section, f.Block, f.LotNumber, f.LotType, f.AuthorizedBy, f.AuthorizedPosition} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return f.SignedAt != nil && !f.SignedAt.IsZero()
}

// Client is a lot owner (or prospective owner) as stored in the clients table.
type Client struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Address        string          `json:"address"`
	PasswordHash   string          `json:"-"`
	Balance        decimal.Decimal `json:"balance"`
	Status         ClientStatus    `json:"status"`
	JoinDate       *time.Time      `json:"join_date"`
	ContractPDFURL string          `json:"contract_pdf_url"`
	ContractFields
	Timestamps
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// ResolvedClient is the outcome of client resolution for a walk-in payment.
type ResolvedClient struct {
	ID      string
	Name    string
	Email   string
	Created bool
}
