package queries

import (
	"errors"
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/pkg/guard"
)

var (
	ErrGetAccountStatementQueryIsNotConstructed = errors.New(
		"GetAccountStatementQuery must be created via NewGetAccountStatementQuery constructor",
	)
)

// GetAccountStatementQuery retrieves a customer's account snapshot with
// the full ledger history. The ledger entries explain every balance
// movement since the account was opened.
//
// Example:
//
//	query, err := NewGetAccountStatementQuery(customerID)
//	if err != nil {
//	    return err
//	}
//
//	statement, err := NewGetAccountStatementQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve statement: %w", err)
//	}
//
//	fmt.Printf("%s has %s available\n", statement.Name, statement.Balance)
type GetAccountStatementQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountStatementQuery creates a query for a customer's statement.
// Validates that the customer ID is a proper UUID.
func NewGetAccountStatementQuery(customerID kernel.UUID) (GetAccountStatementQuery, error) {
	query := GetAccountStatementQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetAccountStatementQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAccountStatementQueryIsNotConstructed if validation fails.
func (q GetAccountStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountStatementQueryIsNotConstructed)
}

// CustomerID returns the customer ID from the query.
func (q GetAccountStatementQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetAccountStatementQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}

// AccountStatementEntry represents one ledger line in the statement.
// OrderID is nil for deposits, which are not tied to an order.
type AccountStatementEntry struct {
	ID        kernel.UUID
	OrderID   *kernel.UUID
	EntryType string
	Amount    kernel.Money
	CreatedAt time.Time
}

// GetAccountStatementQueryResponse represents a customer account snapshot
// together with its ledger history, newest entries first.
type GetAccountStatementQueryResponse struct {
	CustomerID   kernel.UUID
	Name         string
	Balance      kernel.Money
	TotalSpent   kernel.Money
	OrderCount   int
	WarningCount int
	Vip          bool
	Blacklisted  bool
	Entries      []AccountStatementEntry
}
