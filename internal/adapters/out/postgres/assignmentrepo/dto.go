// Package assignmentrepo persists delivery assignments, the claimable work
// items couriers compete for. The claim is a conditional single-statement
// update, which is what makes concurrent claims safe.
package assignmentrepo

import (
	"time"

	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
)

// AssignmentDTO represents the database structure for delivery assignments.
// OrderID carries a unique index: an order is dispatched at most once.
type AssignmentDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`
	ClaimedAt *time.Time
	CreatedAt time.Time
}

// TableName specifies the database table name for assignments.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.DeliveryAssignment) AssignmentDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return AssignmentDTO{
		ID:        aggregate.ID().Bytes(),
		OrderID:   aggregate.OrderID().Bytes(),
		CourierID: courierID,
		ClaimedAt: aggregate.ClaimedAt(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.DeliveryAssignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
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

	return assignment.RestoreDeliveryAssignment(id, orderID, courierID, dto.ClaimedAt, dto.CreatedAt)
}
