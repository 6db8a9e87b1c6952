package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// ApplyDiscountCommandHandler handles applying discount codes to draft orders.
// The discount policy is injected so deployments can resolve codes locally or
// through the pricing context without touching this handler.
type ApplyDiscountCommandHandler struct {
	orderRepo ports.OrderRepository
	policy    order.DiscountPolicy
}

// NewApplyDiscountCommandHandler creates a handler for the apply discount operation.
func NewApplyDiscountCommandHandler(
	orderRepo ports.OrderRepository,
	policy order.DiscountPolicy,
) ApplyDiscountCommandHandler {
	return ApplyDiscountCommandHandler{
		orderRepo: orderRepo,
		policy:    policy,
	}
}

// Handle loads the order, resolves and applies the discount, persists the
// snapshot, and returns the drained domain events.
func (h ApplyDiscountCommandHandler) Handle(
	ctx context.Context,
	cmd ApplyDiscountCommand,
) ([]order.DomainEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ApplyDiscount(cmd.Code(), h.policy); err != nil {
		return nil, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate.PullDomainEvents(), nil
}
