// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"cctexpress/internal/core/domain/model/kernel"
	"cctexpress/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and courier assignment.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID         *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryLatitude  float64         `gorm:"not null"`
	DeliveryLongitude float64         `gorm:"not null"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FinalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AssignmentNote    string          `gorm:"type:varchar(255);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	CompletedAt       *time.Time
	Version           int           `gorm:"not null"`
	LineItems         []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one dish position of an order.
// Line items are written once at placement and never change afterwards.
type LineItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	DishName  string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	VipOnly   bool            `gorm:"not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_line_items".
func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional courier assignment and
// completion time.
func fromDomain(order *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := order.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	orderID := order.ID().Bytes()
	lineItems := make([]LineItemDTO, 0, len(order.LineItems()))
	for _, item := range order.LineItems() {
		lineItems = append(lineItems, LineItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			DishName:  item.DishName(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
			VipOnly:   item.IsVipOnly(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		CustomerID:        order.CustomerID().Bytes(),
		CourierID:         courierID,
		DeliveryLatitude:  order.DeliveryAddress().Latitude(),
		DeliveryLongitude: order.DeliveryAddress().Longitude(),
		Status:            order.Status().String(),
		Subtotal:          order.Subtotal().Amount(),
		FinalAmount:       order.FinalAmount().Amount(),
		AssignmentNote:    order.AssignmentNote(),
		CreatedAt:         order.CreatedAt(),
		CompletedAt:       order.CompletedAt(),
		Version:           order.Version(),
		LineItems:         lineItems,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items, status and
// courier assignment using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	deliveryAddress, err := kernel.NewGeoPoint(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	finalAmount, err := kernel.NewMoney(dto.FinalAmount)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDto := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		courierID,
		deliveryAddress,
		lineItems,
		status,
		finalAmount,
		dto.AssignmentNote,
		dto.CreatedAt,
		dto.CompletedAt,
		dto.Version,
	)
}

// lineItemToDomain converts a line item DTO to its domain entity.
// Uses RestoreLineItem to reconstruct the entity with its persisted identifier.
func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreLineItem(id, dto.DishName, unitPrice, dto.Quantity, dto.VipOnly)
}
