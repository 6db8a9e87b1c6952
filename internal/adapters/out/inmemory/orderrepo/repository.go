package orderrepo

import (
	"context"
	"sync"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// InMemoryOrderRepository implements OrderRepository over a process-local map
// of snapshots. Save replaces the whole snapshot under the aggregate's id
// (last write wins); there is no optimistic concurrency control.
//
// The map is guarded by a mutex so the repository itself is safe for
// concurrent use. Aggregates returned by GetByID are rebuilt per call and are
// not shared between callers.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	records map[string]OrderDTO
}

// NewInMemoryOrderRepository creates an empty in-memory order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		records: make(map[string]OrderDTO),
	}
}

// GetByID rebuilds the order aggregate stored under id.
func (r *InMemoryOrderRepository) GetByID(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	dto, ok := r.records[id.String()]
	r.mu.RUnlock()

	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(dto)
}

// Save stores the aggregate's snapshot, replacing any previous one.
func (r *InMemoryOrderRepository) Save(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	r.mu.Lock()
	r.records[dto.ID] = dto
	r.mu.Unlock()

	return nil
}
