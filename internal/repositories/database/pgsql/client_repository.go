package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/memorial_park_app/internal/apperrors"
	"github.com/SscSPs/memorial_park_app/internal/core/domain"
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/SscSPs/memorial_park_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxClientRepository struct {
	pool *pgxpool.Pool
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{pool: pool}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

const clientColumns = `id, name, email, phone, address, password_hash, balance, status, join_date,
	contract_pdf_url, contract_section, contract_block, contract_lot_number, contract_lot_type,
	contract_signed_at, contract_authorized_by, contract_authorized_pos, created_at, updated_at, deleted_at`

func toModelClient(d domain.Client) models.Client {
	return models.Client{
		ID:                    d.ID,
		Name:                  d.Name,
		Email:                 models.NullString(d.Email),
		Phone:                 models.NullString(d.Phone),
		Address:               models.NullString(d.Address),
		PasswordHash:          models.NullString(d.PasswordHash),
		Balance:               d.Balance,
		Status:                string(d.Status),
		JoinDate:              models.NullTime(d.JoinDate),
		ContractPDFURL:        models.NullString(d.ContractPDFURL),
		ContractSection:       models.NullString(d.Section),
		ContractBlock:         models.NullString(d.Block),
		ContractLotNumber:     models.NullString(d.LotNumber),
		ContractLotType:       models.NullString(d.LotType),
		ContractSignedAt:      models.NullTime(d.SignedAt),
		ContractAuthorizedBy:  models.NullString(d.AuthorizedBy),
		ContractAuthorizedPos: models.NullString(d.AuthorizedPosition),
		RowTimestamps:         models.RowTimestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt},
		DeletedAt:             d.DeletedAt,
	}
}

func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email.String,
		Phone:          m.Phone.String,
		Address:        m.Address.String,
		PasswordHash:   m.PasswordHash.String,
		Balance:        m.Balance,
		Status:         domain.ClientStatus(m.Status),
		JoinDate:       models.TimePtr(m.JoinDate),
		ContractPDFURL: m.ContractPDFURL.String,
		ContractFields: domain.ContractFields{
			Section:            m.ContractSection.String,
			Block:              m.ContractBlock.String,
			LotNumber:          m.ContractLotNumber.String,
			LotType:            m.ContractLotType.String,
			SignedAt:           models.TimePtr(m.ContractSignedAt),
			AuthorizedBy:       m.ContractAuthorizedBy.String,
			AuthorizedPosition: m.ContractAuthorizedPos.String,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		DeletedAt:  m.DeletedAt,
	}
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.PasswordHash,
		&m.Balance,
		&m.Status,
		&m.JoinDate,
		&m.ContractPDFURL,
		&m.ContractSection,
		&m.ContractBlock,
		&m.ContractLotNumber,
		&m.ContractLotType,
		&m.ContractSignedAt,
		&m.ContractAuthorizedBy,
		&m.ContractAuthorizedPos,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	d := toDomainClient(m)
	return &d, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1 AND deleted_at IS NULL;`
	client, err := scanClient(r.pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	return client, nil
}

// FindClientByEmail matches the email exactly, as stored.
func (r *PgxClientRepository) FindClientByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE email = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC LIMIT 1;`
	client, err := scanClient(r.pool.QueryRow(ctx, query, strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by email: %w", err)
	}
	return client, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := toModelClient(client)
	query := `
		INSERT INTO clients (id, name, email, phone, address, password_hash, balance, status, join_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.PasswordHash,
		m.Balance,
		m.Status,
		m.JoinDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "client")
	}
	return nil
}

func (r *PgxClientRepository) UpdateClientStatus(ctx context.Context, clientID string, status domain.ClientStatus, now time.Time) error {
	query := `UPDATE clients SET status = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.pool.Exec(ctx, query, clientID, string(status), now)
	if err != nil {
		return fmt.Errorf("failed to update status for client %s: %w", clientID, err)
	}
	return expectOneRow(tag, "client", clientID)
}

func (r *PgxClientRepository) UpdateContractPDFURL(ctx context.Context, clientID string, url string, now time.Time) error {
	query := `UPDATE clients SET contract_pdf_url = $2, updated_at = $3 WHERE id = $1 AND deleted_at IS NULL;`
	tag, err := r.pool.Exec(ctx, query, clientID, url, now)
	if err != nil {
		return fmt.Errorf("failed to update contract url for client %s: %w", clientID, err)
	}
	return expectOneRow(tag, "client", clientID)
}

func (r *PgxClientRepository) LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) error {
	var id string
	err := tx.QueryRow(ctx, `SELECT id FROM clients WHERE id = $1 FOR UPDATE;`, clientID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: client %s", apperrors.ErrNotFound, clientID)
		}
		return fmt.Errorf("failed to lock client %s: %w", clientID, err)
	}
	return nil
}

func (r *PgxClientRepository) UpdateClientBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, now time.Time) error {
	tag, err := tx.Exec(ctx, `UPDATE clients SET balance = $2, updated_at = $3 WHERE id = $1;`, clientID, balance, now)
	if err != nil {
		return fmt.Errorf("failed to update balance for client %s: %w", clientID, err)
	}
	return expectOneRow(tag, "client", clientID)
}
