package http

import (
	"net/http"
	"time"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/application/usecases/queries"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterCustomerRequest is the body of POST /api/v1/customers.
type RegisterCustomerRequest struct {
	Name string `json:"name"`
}

// CustomerCreatedResponse returns the ID assigned to a new customer.
type CustomerCreatedResponse struct {
	ID string `json:"id"`
}

// DepositFundsRequest is the body of POST /api/v1/customers/:customerID/deposits.
// The amount is a decimal string to avoid float rounding on the wire.
type DepositFundsRequest struct {
	Amount string `json:"amount"`
}

// AccountStatementResponse is a customer account snapshot with its
// ledger history, newest entries first.
type AccountStatementResponse struct {
	CustomerID   string                `json:"customer_id"`
	Name         string                `json:"name"`
	Balance      string                `json:"balance"`
	TotalSpent   string                `json:"total_spent"`
	OrderCount   int                   `json:"order_count"`
	WarningCount int                   `json:"warning_count"`
	Vip          bool                  `json:"vip"`
	Blacklisted  bool                  `json:"blacklisted"`
	Entries      []LedgerEntryResponse `json:"entries"`
}

// LedgerEntryResponse is one ledger line of an account statement.
// OrderID is omitted for deposits, which are not tied to an order.
type LedgerEntryResponse struct {
	ID        string    `json:"id"`
	OrderID   *string   `json:"order_id,omitempty"`
	EntryType string    `json:"entry_type"`
	Amount    string    `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterCustomer handles POST /api/v1/customers. Managers enroll a new
// customer account; the generated ID is returned so the gateway can link
// it to its own user record.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var request RegisterCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID := kernel.NewUUID()

	cmd, err := commands.NewRegisterCustomerCommand(customerID, request.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CustomerCreatedResponse{ID: customerID.String()})
}

// DepositFunds handles POST /api/v1/customers/:customerID/deposits.
// Customers can only top up their own account.
func (s *Server) DepositFunds(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if callerIdentity(ctx).UserID != customerID {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Customers can only deposit to their own account",
		})
	}

	var request DepositFundsRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	amount, err := kernel.NewMoneyFromString(request.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDepositFundsCommand(customerID, amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.depositFundsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAccountStatement handles GET /api/v1/customers/:customerID/statement.
// Customers see their own account; managers can inspect any account.
func (s *Server) GetAccountStatement(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerID"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	identity := callerIdentity(ctx)
	if identity.Role == RoleCustomer && identity.UserID != customerID {
		return ctx.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "Customers can only view their own statement",
		})
	}

	query, err := queries.NewGetAccountStatementQuery(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	statement, err := s.getAccountStatementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entries := make([]LedgerEntryResponse, len(statement.Entries))
	for i, entry := range statement.Entries {
		var orderID *string
		if entry.OrderID != nil {
			id := entry.OrderID.String()
			orderID = &id
		}

		entries[i] = LedgerEntryResponse{
			ID:        entry.ID.String(),
			OrderID:   orderID,
			EntryType: entry.EntryType,
			Amount:    entry.Amount.String(),
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, AccountStatementResponse{
		CustomerID:   statement.CustomerID.String(),
		Name:         statement.Name,
		Balance:      statement.Balance.String(),
		TotalSpent:   statement.TotalSpent.String(),
		OrderCount:   statement.OrderCount,
		WarningCount: statement.WarningCount,
		Vip:          statement.Vip,
		Blacklisted:  statement.Blacklisted,
		Entries:      entries,
	})
}
