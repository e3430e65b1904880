package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID retrieves a non-deleted client by id.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClientByEmail retrieves a non-deleted client by exact email match.
	FindClientByEmail(ctx context.Context, email string) (*domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// SaveClient inserts a new client row.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClientStatus sets the client's lifecycle status.
	UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, now time.Time) error

	// UpdateContractPDFURL links a certificate of ownership to the client.
	UpdateContractPDFURL(ctx context.Context, clientID string, url string, now time.Time) error
}

// ClientBalanceSupport defines the locked read-modify-write used by balance recomputation.
type ClientBalanceSupport interface {
	// LockClientForUpdate takes a row lock on the client inside tx, soft-deleted rows included.
	// It returns apperrors.ErrNotFound when no row exists.
	LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) error

	// UpdateClientBalanceInTx writes the aggregated client balance inside tx.
	UpdateClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, now time.Time) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientBalanceSupport
}
