package ports

import (
	"context"

	"foodorder/internal/core/domain/model/assignment"
	"foodorder/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignments, the claimable work items couriers compete for.
type AssignmentRepository interface {
	// Add persists a new unclaimed assignment.
	Add(ctx context.Context, aggregate *assignment.DeliveryAssignment) error

	// GetByOrderID retrieves the assignment for an order.
	// Returns errs.ObjectNotFoundError when the order was never dispatched.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*assignment.DeliveryAssignment, error)

	// ClaimIfUnclaimed atomically claims the assignment for the courier.
	// The claim succeeds only if no courier holds the assignment at the
	// moment the statement runs. Returns errs.ConflictError when another
	// courier already claimed it and errs.ObjectNotFoundError when the
	// assignment does not exist.
	ClaimIfUnclaimed(ctx context.Context, orderID, courierID kernel.UUID) error
}
