package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// RemoveItemCommandHandler handles removing line items from draft orders.
type RemoveItemCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewRemoveItemCommandHandler creates a handler for the remove item operation.
func NewRemoveItemCommandHandler(orderRepo ports.OrderRepository) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle loads the order, removes the item, persists the snapshot, and
// returns the drained domain events.
func (h RemoveItemCommandHandler) Handle(
	ctx context.Context,
	cmd RemoveItemCommand,
) ([]order.DomainEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.RemoveItem(cmd.ItemID()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate.PullDomainEvents(), nil
}
