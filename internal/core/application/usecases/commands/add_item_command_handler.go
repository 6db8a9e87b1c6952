package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AddItemResult carries the identifier of the affected line item (existing
// when the SKU merged, fresh otherwise) and the emitted domain events.
type AddItemResult struct {
	ItemID string
	Events []order.DomainEvent
}

// AddItemCommandHandler handles adding line items to draft orders.
type AddItemCommandHandler struct {
	orderRepo ports.OrderRepository
	itemIDs   order.ItemIDGenerator
}

// NewAddItemCommandHandler creates a handler for the add item operation.
func NewAddItemCommandHandler(
	orderRepo ports.OrderRepository,
	itemIDs order.ItemIDGenerator,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		orderRepo: orderRepo,
		itemIDs:   itemIDs,
	}
}

// Handle loads the order, adds (or merges) the item, persists the snapshot,
// and returns the drained domain events. The unit price is denominated in the
// order's own currency.
func (h AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (AddItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return AddItemResult{}, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return AddItemResult{}, err
	}

	unitPrice, err := kernel.NewMoney(cmd.UnitPriceCents(), aggregate.Currency())
	if err != nil {
		return AddItemResult{}, err
	}

	itemID, err := aggregate.AddItem(cmd.SKU(), unitPrice, cmd.Quantity(), h.itemIDs)
	if err != nil {
		return AddItemResult{}, err
	}

	if err = h.orderRepo.Save(ctx, aggregate); err != nil {
		return AddItemResult{}, err
	}

	return AddItemResult{
		ItemID: itemID.String(),
		Events: aggregate.PullDomainEvents(),
	}, nil
}
