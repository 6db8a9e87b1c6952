package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations store snapshots of aggregate state; pending domain events
// are never persisted.
type OrderRepository interface {
	// GetByID retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no order exists under the id.
	GetByID(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Save persists the aggregate's current state, inserting or replacing
	// the stored snapshot under the aggregate's id.
	Save(ctx context.Context, aggregate *order.Order) error
}
