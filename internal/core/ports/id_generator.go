package ports

import "ordering/internal/core/domain/model/kernel"

// OrderIDGenerator produces identifiers for new order aggregates.
// Pulled out as a port so use cases stay deterministic under test.
type OrderIDGenerator interface {
	NextOrderID() kernel.OrderID
}
