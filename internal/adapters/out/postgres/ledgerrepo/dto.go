// Package ledgerrepo provides data transfer objects and mapping functions for ledger persistence.
// The ledger is strictly append-only: entries are inserted in the same
// transaction as the balance change they describe and never modified.
package ledgerrepo

import (
	"time"

	"cctexpress/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryDTO represents the database structure for persisting ledger entries.
// OrderID is null for deposits, which are not tied to an order.
type LedgerEntryDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderID    *uuid.UUID      `gorm:"type:uuid;index"`
	EntryType  string          `gorm:"type:varchar(32);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for ledger entries.
// Overrides GORM's default naming convention to use "ledger_entries".
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) LedgerEntryDTO {
	var orderID *uuid.UUID
	if id := entry.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return LedgerEntryDTO{
		ID:         entry.ID().Bytes(),
		CustomerID: entry.CustomerID().Bytes(),
		OrderID:    orderID,
		EntryType:  entry.Type().String(),
		Amount:     entry.Amount().Amount(),
		CreatedAt:  entry.CreatedAt(),
	}
}
