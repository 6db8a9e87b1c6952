package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrChangeItemQuantityCommandIsNotConstructed = errors.New(
	"ChangeItemQuantityCommand must be created via NewChangeItemQuantityCommand constructor",
)

// ChangeItemQuantityCommand represents a request to replace the quantity of a
// line item on a draft order.
type ChangeItemQuantityCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	itemID   kernel.OrderItemID
	quantity int

	guard guard.ConstructorGuard
}

// NewChangeItemQuantityCommand creates a command to change a line item's quantity.
// Validates that both identifiers are valid and the quantity is positive.
func NewChangeItemQuantityCommand(
	orderID kernel.OrderID,
	itemID kernel.OrderItemID,
	quantity int,
) (ChangeItemQuantityCommand, error) {
	cmd := ChangeItemQuantityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return ChangeItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrChangeItemQuantityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c ChangeItemQuantityCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// ItemID returns the identifier of the line item to change.
func (c ChangeItemQuantityCommand) ItemID() kernel.OrderItemID {
	return c.itemID
}

// Quantity returns the new quantity.
func (c ChangeItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *ChangeItemQuantityCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeItemQuantityCommand) setItemID(itemID kernel.OrderItemID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *ChangeItemQuantityCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
