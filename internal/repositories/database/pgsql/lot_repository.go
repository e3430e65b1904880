package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLotRepository struct {
	pool *pgxpool.Pool
}

func newPgxLotRepository(pool *pgxpool.Pool) portsrepo.LotRepositoryFacade {
	return &PgxLotRepository{pool: pool}
}

var _ portsrepo.LotRepositoryFacade = (*PgxLotRepository)(nil)

const lotColumns = `l.id, l.lot_number, l.lot_type, l.section_id, s.name, l.price, l.balance,
	l.owner_id, l.status, l.created_at, l.updated_at, l.deleted_at`

func toDomainLot(m models.Lot) domain.Lot {
	return domain.Lot{
		ID:          m.ID,
		LotNumber:   m.LotNumber,
		LotType:     m.LotType.String,
		SectionID:   m.SectionID.String,
		SectionName: m.SectionName.String,
		Price:       m.Price,
		Balance:     m.Balance,
		OwnerID:     m.OwnerID.String,
		Status:      m.Status.String,
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		DeletedAt:   m.DeletedAt,
	}
}

func scanLot(row pgx.Row) (*domain.Lot, error) {
	var m models.Lot
	err := row.Scan(
		&m.ID,
		&m.LotNumber,
		&m.LotType,
		&m.SectionID,
		&m.SectionName,
		&m.Price,
		&m.Balance,
		&m.OwnerID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainLot(m)
	return &d, nil
}

func (r *PgxLotRepository) FindLotByID(ctx context.Context, lotID string) (*domain.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots l
		LEFT JOIN sections s ON s.id = l.section_id
		WHERE l.id = $1 AND l.deleted_at IS NULL;
	`
	lot, err := scanLot(r.pool.QueryRow(ctx, query, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lot by ID %s: %w", lotID, err)
	}
	return lot, nil
}

// FindPrimaryLotForClient prefers the primary link, then the earliest purchase.
func (r *PgxLotRepository) FindPrimaryLotForClient(ctx context.Context, clientID string) (*domain.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM client_lots cl
		JOIN lots l ON l.id = cl.lot_id AND l.deleted_at IS NULL
		LEFT JOIN sections s ON s.id = l.section_id
		WHERE cl.client_id = $1
		ORDER BY cl.is_primary DESC, cl.purchase_date ASC NULLS LAST, cl.created_at ASC
		LIMIT 1;
	`
	lot, err := scanLot(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find primary lot for client %s: %w", clientID, err)
	}
	return lot, nil
}

func (r *PgxLotRepository) FindLotForUpdate(ctx context.Context, tx pgx.Tx, lotID string) (*domain.Lot, error) {
	// FOR UPDATE OF l: the outer join to sections cannot be locked.
	query := `
		SELECT ` + lotColumns + `
		FROM lots l
		LEFT JOIN sections s ON s.id = l.section_id
		WHERE l.id = $1 AND l.deleted_at IS NULL
		FOR UPDATE OF l;
	`
	lot, err := scanLot(tx.QueryRow(ctx, query, lotID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock lot %s: %w", lotID, err)
	}
	return lot, nil
}

func (r *PgxLotRepository) UpdateLotBalanceInTx(ctx context.Context, tx pgx.Tx, lotID string, balance decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx, `UPDATE lots SET balance = $2, updated_at = $3 WHERE id = $1;`, lotID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for lot %s: %w", lotID, err)
	}
	return expectOneRow(tag, "lot", lotID)
}

func (r *PgxLotRepository) ListLotsByOwnerInTx(ctx context.Context, tx pgx.Tx, ownerID string) ([]domain.Lot, error) {
	query := `
		SELECT ` + lotColumns + `
		FROM lots l
		LEFT JOIN sections s ON s.id = l.section_id
		WHERE l.owner_id = $1 AND l.deleted_at IS NULL
		ORDER BY l.created_at ASC;
	`
	rows, err := tx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lots for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	lots := []domain.Lot{}
	for rows.Next() {
		lot, err := scanLot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lot row: %w", err)
		}
		lots = append(lots, *lot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lot rows: %w", err)
	}
	return lots, nil
}
