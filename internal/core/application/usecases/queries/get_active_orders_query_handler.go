package queries

import (
	"context"
	"time"

	"cctexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler retrieves in-flight orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve in-flight orders.
// Returns order read models sorted oldest first so the longest waiting
// orders surface at the top.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			final_amount,
			delivery_latitude,
			delivery_longitude,
			created_at
		FROM orders
		WHERE status NOT IN ('completed', 'rejected')
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetActiveOrdersQueryResponse
		var id, customerID uuid.UUID
		var finalAmount decimal.Decimal
		var latitude, longitude float64
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&response.Status,
			&finalAmount,
			&latitude,
			&longitude,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		response.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		response.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}

		response.FinalAmount, err = kernel.NewMoney(finalAmount)
		if err != nil {
			return nil, err
		}

		response.DeliveryAddress, err = kernel.NewGeoPoint(latitude, longitude)
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
