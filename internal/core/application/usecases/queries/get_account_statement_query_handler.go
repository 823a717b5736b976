package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAccountStatementQueryHandler retrieves customer account snapshots
// with their ledger history.
type GetAccountStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountStatementQueryHandler creates a handler for statement queries.
func NewGetAccountStatementQueryHandler(db *gorm.DB) GetAccountStatementQueryHandler {
	return GetAccountStatementQueryHandler{db: db}
}

// Handle executes the statement query.
// Returns an object not found error when the customer does not exist.
// Ledger entries come back newest first.
func (h GetAccountStatementQueryHandler) Handle(
	ctx context.Context,
	query GetAccountStatementQuery,
) (GetAccountStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountStatementQueryResponse{}, err
	}

	response, err := h.loadAccount(ctx, query)
	if err != nil {
		return GetAccountStatementQueryResponse{}, err
	}

	response.Entries, err = h.loadEntries(ctx, query)
	if err != nil {
		return GetAccountStatementQueryResponse{}, err
	}

	return response, nil
}

func (h GetAccountStatementQueryHandler) loadAccount(
	ctx context.Context,
	query GetAccountStatementQuery,
) (GetAccountStatementQueryResponse, error) {
	var response GetAccountStatementQueryResponse
	var id uuid.UUID
	var balance, totalSpent decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			balance,
			total_spent,
			order_count,
			warning_count,
			vip,
			blacklisted
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Name,
		&balance,
		&totalSpent,
		&response.OrderCount,
		&response.WarningCount,
		&response.Vip,
		&response.Blacklisted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return response, errs.NewObjectNotFoundErrorWithCause("customerId", query.CustomerID(), err)
	}
	if err != nil {
		return response, err
	}

	response.CustomerID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return response, err
	}

	response.Balance, err = kernel.NewMoney(balance)
	if err != nil {
		return response, err
	}

	response.TotalSpent, err = kernel.NewMoney(totalSpent)
	if err != nil {
		return response, err
	}

	return response, nil
}

func (h GetAccountStatementQueryHandler) loadEntries(
	ctx context.Context,
	query GetAccountStatementQuery,
) ([]AccountStatementEntry, error) {
	entries := make([]AccountStatementEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			entry_type,
			amount,
			created_at
		FROM ledger_entries
		WHERE customer_id = ?
		ORDER BY created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry AccountStatementEntry
		var id uuid.UUID
		var orderID *uuid.UUID
		var amount decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&entry.EntryType,
			&amount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if orderID != nil {
			ref, refErr := kernel.UUIDFromBytes(orderID[:])
			if refErr != nil {
				return nil, refErr
			}
			entry.OrderID = &ref
		}

		entry.Amount, err = kernel.NewMoney(amount)
		if err != nil {
			return nil, err
		}

		entry.CreatedAt = createdAt
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
