package ports

import (
	"context"

	"cctexpress/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for account ledger entries.
// The ledger is strictly append-only: entries are inserted in the same
// transaction as the balance change they describe and never modified.
type LedgerRepository interface {
	// Add appends a ledger entry.
	Add(ctx context.Context, entry *ledger.Entry) error
}
