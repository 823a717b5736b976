package queries

import (
	"context"
	"time"

	"cctexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderBidsQueryHandler retrieves the bids on an order together with
// the bidding couriers' names.
type GetOrderBidsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderBidsQueryHandler creates a handler for bid list queries.
func NewGetOrderBidsQueryHandler(db *gorm.DB) GetOrderBidsQueryHandler {
	return GetOrderBidsQueryHandler{db: db}
}

// Handle executes the query to retrieve an order's bids.
// Returns bids sorted by amount, with earlier submissions first among
// equal amounts, matching the order the auto resolution would pick from.
func (h GetOrderBidsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderBidsQuery,
) ([]GetOrderBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]GetOrderBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.courier_id,
			c.name,
			b.amount,
			b.selected,
			b.created_at
		FROM bids b
		JOIN couriers c ON c.id = b.courier_id
		WHERE b.order_id = ?
		ORDER BY b.amount, b.created_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrderBidsQueryResponse
		var id, courierID uuid.UUID
		var amount decimal.Decimal
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&courierID,
			&response.CourierName,
			&amount,
			&response.Selected,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		response.CourierID, err = kernel.UUIDFromBytes(courierID[:])
		if err != nil {
			return nil, err
		}

		response.Amount, err = kernel.NewMoney(amount)
		if err != nil {
			return nil, err
		}

		response.CreatedAt = createdAt
		bids = append(bids, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
