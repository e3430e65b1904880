package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Section is a named area of the park that lots belong to.
type Section struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lot is a purchasable burial plot.
// Balance is derived from Price and the completed payments against the lot.
type Lot struct {
	ID          string          `json:"id"`
	LotNumber   string          `json:"lot_number"`
	LotType     string          `json:"lot_type"`
	SectionID   string          `json:"section_id"`
	SectionName string          `json:"section_name"`
	Price       decimal.Decimal `json:"price"`
	Balance     decimal.Decimal `json:"balance"`
	OwnerID     string          `json:"owner_id"`
	Status      string          `json:"status"`
	Timestamps
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// DisplaySection returns the joined section name, or the raw section id when the join found nothing.
func (l Lot) DisplaySection() string {
	if l.SectionName != "" {
		return l.SectionName
	}
	return l.SectionID
}

// ResolvedLot carries the denormalised lot fields needed downstream of lot resolution.
type ResolvedLot struct {
	ID          string
	LotNumber   string
	LotType     string
	SectionName string
	Price       decimal.Decimal
}

// LotBalance is max(0, price - totalPaid).
func LotBalance(price, totalPaid decimal.Decimal) decimal.Decimal {
	remaining := price.Sub(totalPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// SumLotBalances adds up the balances of the given lots.
func SumLotBalances(lots []Lot) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lots {
		total = total.Add(l.Balance)
	}
	return total
}

// BalanceSnapshot is the state written back by a balance recomputation.
type BalanceSnapshot struct {
	LotID         string          `json:"lot_id"`
	ClientID      string          `json:"client_id"`
	LotPrice      decimal.Decimal `json:"lot_price"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	LotBalance    decimal.Decimal `json:"lot_balance"`
	ClientBalance decimal.Decimal `json:"client_balance"`
	// ClientMissing is set when no client row existed, so ClientBalance was not written.
	ClientMissing bool `json:"client_missing,omitempty"`
}
