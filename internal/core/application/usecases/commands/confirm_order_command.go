package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand represents a request to confirm a draft order.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
// Validates that the order id is valid.
func NewConfirmOrderCommand(orderID kernel.OrderID) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
