package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Client represents a row of the clients table.
// Most descriptive columns are nullable.
type Client struct {
	ID                    string          `db:"id"`
	Name                  string          `db:"name"`
	Email                 sql.NullString  `db:"email"`
	Phone                 sql.NullString  `db:"phone"`
	Address               sql.NullString  `db:"address"`
	PasswordHash          sql.NullString  `db:"password_hash"`
	Balance               decimal.Decimal `db:"balance"`
	Status                string          `db:"status"`
	JoinDate              sql.NullTime    `db:"join_date"`
	ContractPDFURL        sql.NullString  `db:"contract_pdf_url"`
	ContractSection       sql.NullString  `db:"contract_section"`
	ContractBlock         sql.NullString  `db:"contract_block"`
	ContractLotNumber     sql.NullString  `db:"contract_lot_number"`
	ContractLotType       sql.NullString  `db:"contract_lot_type"`
	ContractSignedAt      sql.NullTime    `db:"contract_signed_at"`
	ContractAuthorizedBy  sql.NullString  `db:"contract_authorized_by"`
	ContractAuthorizedPos sql.NullString  `db:"contract_authorized_pos"`
	RowTimestamps
	DeletedAt *time.Time `db:"deleted_at"`
}
