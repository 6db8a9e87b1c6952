package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ChangeItemQuantityCommandHandler handles replacing line item quantities on
// draft orders.
type ChangeItemQuantityCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewChangeItemQuantityCommandHandler creates a handler for the change
// quantity operation.
func NewChangeItemQuantityCommandHandler(orderRepo ports.OrderRepository) ChangeItemQuantityCommandHandler {
	return ChangeItemQuantityCommandHandler{
		orderRepo: orderRepo,
	}
}

// Handle loads the order, changes the item's quantity, persists the snapshot,
// and returns the drained domain events.
func (h ChangeItemQuantityCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeItemQuantityCommand,
) ([]order.DomainEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeItemQuantity(cmd.ItemID(), cmd.Quantity()); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate.PullDomainEvents(), nil
}
