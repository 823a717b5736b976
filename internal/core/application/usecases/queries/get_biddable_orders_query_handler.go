package queries

import (
	"context"
	"time"

	"cctexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetBiddableOrdersQueryHandler retrieves orders open for bidding.
type GetBiddableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetBiddableOrdersQueryHandler creates a handler for biddable order queries.
func NewGetBiddableOrdersQueryHandler(db *gorm.DB) GetBiddableOrdersQueryHandler {
	return GetBiddableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders open for bidding,
// oldest auction first.
func (h GetBiddableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetBiddableOrdersQuery,
) ([]GetBiddableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetBiddableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			delivery_latitude,
			delivery_longitude,
			final_amount,
			created_at
		FROM orders
		WHERE status = 'bidding_open'
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetBiddableOrdersQueryResponse
		var id uuid.UUID
		var finalAmount decimal.Decimal
		var latitude, longitude float64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&latitude,
			&longitude,
			&finalAmount,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		response.DeliveryAddress, err = kernel.NewGeoPoint(latitude, longitude)
		if err != nil {
			return nil, err
		}

		response.FinalAmount, err = kernel.NewMoney(finalAmount)
		if err != nil {
			return nil, err
		}

		response.CreatedAt = createdAt
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
