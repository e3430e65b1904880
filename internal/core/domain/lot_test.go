package domain_test

import (
	"testing"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLotBalance(t *testing.T) {
	tests := []struct {
		name  string
		price decimal.Decimal
		paid  decimal.Decimal
		want  decimal.Decimal
	}{
		{"nothing paid", decimal.NewFromInt(5000), decimal.Zero, decimal.NewFromInt(5000)},
		{"partially paid", decimal.NewFromInt(5000), decimal.NewFromInt(3000), decimal.NewFromInt(2000)},
		{"fully paid", decimal.NewFromInt(5000), decimal.NewFromInt(5000), decimal.Zero},
		{"overpaid floors at zero", decimal.NewFromInt(5000), decimal.NewFromInt(6200), decimal.Zero},
		{"cents", decimal.RequireFromString("1250.50"), decimal.RequireFromString("250.25"), decimal.RequireFromString("1000.25")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.LotBalance(tt.price, tt.paid)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestSumLotBalances(t *testing.T) {
	lots := []domain.Lot{
		{ID: "lot-1", Balance: decimal.NewFromInt(2000)},
		{ID: "lot-2", Balance: decimal.NewFromInt(0)},
		{ID: "lot-3", Balance: decimal.RequireFromString("750.50")},
	}
	assert.True(t, decimal.RequireFromString("2750.50").Equal(domain.SumLotBalances(lots)))
	assert.True(t, domain.SumLotBalances(nil).IsZero())
}

func TestLot_DisplaySection(t *testing.T) {
	assert.Equal(t, "Garden of Peace", domain.Lot{SectionID: "sec-9", SectionName: "Garden of Peace"}.DisplaySection())
	assert.Equal(t, "sec-9", domain.Lot{SectionID: "sec-9"}.DisplaySection())
}

func TestPaymentStatus_Settled(t *testing.T) {
	assert.True(t, domain.PaymentCompleted.Settled())
	assert.True(t, domain.PaymentPaid.Settled())
	assert.True(t, domain.PaymentStatus(" paid ").Settled())
	assert.False(t, domain.PaymentPending.Settled())
	assert.False(t, domain.PaymentStatus("Queued").Settled())
}
