// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and outbound collaborators.
// Adapters implement these interfaces; the core depends only on them.
package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists with the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingForCustomer retrieves a customer's orders still in the
	// pending status, used for batch confirmation.
	GetAllPendingForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// Delete removes an order from storage. Callers validate that the
	// order is deletable before calling.
	Delete(ctx context.Context, id kernel.UUID) error
}
