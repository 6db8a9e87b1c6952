package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ConfirmOrderCommandHandler handles the irreversible confirmation of draft
// orders. The confirmation specification is injected so the rule set can vary
// per deployment.
type ConfirmOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	spec      order.ConfirmationSpecification
}

// NewConfirmOrderCommandHandler creates a handler for the confirm operation.
func NewConfirmOrderCommandHandler(
	orderRepo ports.OrderRepository,
	spec order.ConfirmationSpecification,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		orderRepo: orderRepo,
		spec:      spec,
	}
}

// Handle loads the order, confirms it against the specification, persists the
// snapshot, and returns the drained domain events.
func (h ConfirmOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmOrderCommand,
) ([]order.DomainEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Confirm(h.spec); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate.PullDomainEvents(), nil
}
