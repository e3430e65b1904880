package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Lot represents a row of the lots table with the section name joined in.
type Lot struct {
	ID          string          `db:"id"`
	LotNumber   string          `db:"lot_number"`
	LotType     sql.NullString  `db:"lot_type"`
	SectionID   sql.NullString  `db:"section_id"`
	SectionName sql.NullString  `db:"section_name"`
	Price       decimal.Decimal `db:"price"`
	Balance     decimal.Decimal `db:"balance"`
	OwnerID     sql.NullString  `db:"owner_id"`
	Status      sql.NullString  `db:"status"`
	RowTimestamps
	DeletedAt *time.Time `db:"deleted_at"`
}
