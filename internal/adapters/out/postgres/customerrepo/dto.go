// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"cctexpress/internal/core/domain/model/customer"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
// Balances and spend totals use fixed-point numeric columns to keep cent
// precision intact across round trips.
type CustomerDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(255);not null"`
	Balance      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalSpent   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	OrderCount   int             `gorm:"not null"`
	WarningCount int             `gorm:"not null"`
	Vip          bool            `gorm:"not null"`
	Blacklisted  bool            `gorm:"not null"`
	Version      int             `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(customer *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           customer.ID().Bytes(),
		Name:         customer.Name(),
		Balance:      customer.Balance().Amount(),
		TotalSpent:   customer.TotalSpent().Amount(),
		OrderCount:   customer.OrderCount(),
		WarningCount: customer.WarningCount(),
		Vip:          customer.IsVip(),
		Blacklisted:  customer.IsBlacklisted(),
		Version:      customer.Version(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
// Reconstructs the complete account state using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	totalSpent, err := kernel.NewMoney(dto.TotalSpent)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.Name,
		balance,
		totalSpent,
		dto.OrderCount,
		dto.WarningCount,
		dto.Vip,
		dto.Blacklisted,
		dto.Version,
	)
}
