// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The orders table is the single authoritative record per order; customer and
// merchant views are read-time projections over it.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID uuid.UUID       `gorm:"type:uuid;index"`
	ItemID     uuid.UUID       `gorm:"type:uuid"`
	ItemName   string          `gorm:"type:varchar(200)"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)"`
	CourierID  *uuid.UUID      `gorm:"type:uuid;index"`
	Status     int             `gorm:"index"`
	Acceptance int
	Progress   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		MerchantID: aggregate.MerchantID().Bytes(),
		ItemID:     aggregate.ItemID().Bytes(),
		ItemName:   aggregate.ItemName(),
		Price:      aggregate.Price().Decimal(),
		CourierID:  courierID,
		Status:     int(aggregate.Status()),
		Acceptance: int(aggregate.Acceptance()),
		Progress:   int(aggregate.Progress()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the courier/progress consistency rule.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
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

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, merchantID, itemID,
		dto.ItemName, price,
		order.Status(dto.Status),
		order.Acceptance(dto.Acceptance),
		order.DeliveryProgress(dto.Progress),
		courierID, dto.CreatedAt)
}
