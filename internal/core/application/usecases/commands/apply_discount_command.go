package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrApplyDiscountCommandIsNotConstructed = errors.New(
	"ApplyDiscountCommand must be created via NewApplyDiscountCommand constructor",
)

// ApplyDiscountCommand represents a request to apply a discount code to a
// draft order. The code is passed through as given: the discount policy owns
// normalization and the empty/unknown code rules.
type ApplyDiscountCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	code    string

	guard guard.ConstructorGuard
}

// NewApplyDiscountCommand creates a command to apply a discount code.
// Validates that the order id is valid.
func NewApplyDiscountCommand(orderID kernel.OrderID, code string) (ApplyDiscountCommand, error) {
	cmd := ApplyDiscountCommand{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApplyDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyDiscountCommand) Validate() error {
	return c.guard.Validate(ErrApplyDiscountCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c ApplyDiscountCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Code returns the discount code as supplied by the caller.
func (c ApplyDiscountCommand) Code() string {
	return c.code
}

func (c *ApplyDiscountCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
