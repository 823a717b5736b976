// Package bidrepo provides data transfer objects and mapping functions for bid persistence.
// Bids are append-only rows; a composite unique index on (order_id, courier_id)
// enforces the one-bid-per-courier rule at the storage level.
package bidrepo

import (
	"time"

	"cctexpress/internal/core/domain/model/bid"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidDTO represents the database structure for persisting bid aggregates.
type BidDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bids_order_courier"`
	CourierID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_bids_order_courier"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Selected  bool            `gorm:"not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the database table name for bid entities.
// Overrides GORM's default naming convention to use "bids".
func (BidDTO) TableName() string {
	return "bids"
}

// fromDomain converts a bid domain aggregate to its database representation.
func fromDomain(bid *bid.Bid) BidDTO {
	return BidDTO{
		ID:        bid.ID().Bytes(),
		OrderID:   bid.OrderID().Bytes(),
		CourierID: bid.CourierID().Bytes(),
		Amount:    bid.Amount().Amount(),
		Selected:  bid.IsSelected(),
		CreatedAt: bid.CreatedAt(),
	}
}

// toDomain converts a database DTO to a bid domain aggregate.
// Reconstructs the aggregate using RestoreBid.
func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(id, orderID, courierID, amount, dto.Selected, dto.CreatedAt)
}
