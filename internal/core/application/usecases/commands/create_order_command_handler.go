package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CreateOrderResult carries the identifier of the new order and the domain
// events the creation emitted.
type CreateOrderResult struct {
	OrderID string
	Events  []order.DomainEvent
}

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start as drafts with no items and no discount.
type CreateOrderCommandHandler struct {
	orderRepo ports.OrderRepository
	orderIDs  ports.OrderIDGenerator
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	orderRepo ports.OrderRepository,
	orderIDs ports.OrderIDGenerator,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		orderRepo: orderRepo,
		orderIDs:  orderIDs,
	}
}

// Handle processes the order creation command: it generates a fresh order id,
// creates the draft aggregate, persists the snapshot, and returns the drained
// domain events.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	aggregate, err := order.NewOrder(h.orderIDs.NextOrderID(), cmd.Currency())
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID: aggregate.ID().String(),
		Events:  aggregate.PullDomainEvents(),
	}, nil
}
