package pgsql

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteError(t *testing.T) {
	dup := mapWriteError(&pgconn.PgError{Code: "23505"}, "client")
	assert.True(t, errors.Is(dup, apperrors.ErrDuplicate))

	other := mapWriteError(errors.New("boom"), "client")
	assert.False(t, errors.Is(other, apperrors.ErrDuplicate))
	assert.Contains(t, other.Error(), "failed to save client")
}

func TestExpectOneRow(t *testing.T) {
	assert.NoError(t, expectOneRow(pgconn.NewCommandTag("UPDATE 1"), "lot", "lot-1"))
	assert.ErrorIs(t, expectOneRow(pgconn.NewCommandTag("UPDATE 0"), "lot", "lot-1"), apperrors.ErrNotFound)
}

func TestClientModelRoundTrip(t *testing.T) {
	signed := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	in := domain.Client{
		ID:      "cl-1",
		Name:    "Ana Cruz",
		Email:   "ana@example.com",
		Balance: decimal.NewFromInt(2000),
		Status:  domain.ClientStatusActive,
		ContractFields: domain.ContractFields{
			Section:  "A",
			SignedAt: &signed,
		},
	}

	m := toModelClient(in)
	assert.False(t, m.Phone.Valid)
	assert.True(t, m.ContractSignedAt.Valid)

	out := toDomainClient(m)
	assert.Equal(t, in.Email, out.Email)
	assert.True(t, in.Balance.Equal(out.Balance))
	assert.Equal(t, signed, *out.SignedAt)
	assert.Nil(t, out.JoinDate)
}

func TestPaymentModelKeepsEmptyLotAsNull(t *testing.T) {
	m := toModelPayment(domain.Payment{ID: "p-1", ClientID: "cl-1", PaymentStatus: domain.PaymentCompleted})
	assert.False(t, m.LotID.Valid)
	assert.Equal(t, "Completed", m.PaymentStatus)
	assert.Equal(t, "", toDomainPayment(m).LotID)
}

func TestToDomainStaffUser(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := models.StaffUser{
		ID:            "staff-1",
		Username:      "cashier01",
		PasswordHash:  "$2a$10$hash",
		Name:          sql.NullString{String: "Ana Cruz", Valid: true},
		Role:          domain.RoleCashier,
		RowTimestamps: models.RowTimestamps{CreatedAt: created, UpdatedAt: created},
	}

	u := toDomainStaffUser(m)
	assert.Equal(t, "staff-1", u.ID)
	assert.Equal(t, "Ana Cruz", u.Name)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.Equal(t, created, u.CreatedAt)
	assert.Nil(t, u.DeletedAt)

	m.Name = sql.NullString{}
	assert.Empty(t, toDomainStaffUser(m).Name)
}
