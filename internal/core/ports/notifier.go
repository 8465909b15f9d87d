package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// Notifier pushes order lifecycle notifications to users. Delivery is best
// effort; a failed notification never fails the command that produced it.
type Notifier interface {
	Notify(ctx context.Context, userID kernel.UUID, message string) error
}
