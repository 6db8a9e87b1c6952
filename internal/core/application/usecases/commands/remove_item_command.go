package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to remove a line item from a draft order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	itemID  kernel.OrderItemID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove a line item.
// Validates that both identifiers are valid.
func NewRemoveItemCommand(orderID kernel.OrderID, itemID kernel.OrderItemID) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c RemoveItemCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the identifier of the line item to remove.
func (c RemoveItemCommand) ItemID() kernel.OrderItemID {
	return c.itemID
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID kernel.OrderItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
