package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LotReader defines read operations for lot data
type LotReader interface {
	// FindLotByID retrieves a non-deleted lot, with its section name joined in.
	FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error)

	// FindPrimaryLotForClient returns the client's primary lot, else its earliest purchase.
	FindPrimaryLotForClient(ctx context.Context, clientID string) (*domain.Lot, error)
}

// LotBalanceSupport defines the locked read-modify-write used by balance recomputation.
type LotBalanceSupport interface {
	// FindLotForUpdate selects a non-deleted lot and locks it inside tx.
	FindLotForUpdate(ctx context.Context, tx pgx.Tx, lotID string) (*domain.Lot, error)

	// UpdateLotBalanceInTx writes the recomputed lot balance inside tx.
	UpdateLotBalanceInTx(ctx context.Context, tx pgx.Tx, lotID string, balance decimal.Decimal, now time.Time) error

	// ListLotsByOwnerInTx lists the non-deleted lots owned by a client inside tx.
	ListLotsByOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) ([]domain.Lot, error)
}

// LotRepositoryFacade combines all lot-related repository interfaces
type LotRepositoryFacade interface {
	LotReader
	LotBalanceSupport
}
