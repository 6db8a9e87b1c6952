package commands

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrSKUIsRequired      = errors.New("sku is required")
	ErrUnitPriceIsInvalid = errors.New("unit price must not be negative")
	ErrQuantityIsInvalid  = errors.New("quantity must be greater than 0")
)

// AddItemCommand represents a request to add a line item to a draft order.
// The unit price is given in cents; the order's own currency applies.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.OrderID
	sku            string
	unitPriceCents int64
	quantity       int

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// Validates that the order id is valid, the SKU is not empty, the unit price
// is not negative, and the quantity is positive.
func NewAddItemCommand(
	orderID kernel.OrderID,
	sku string,
	unitPriceCents int64,
	quantity int,
) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSKU(sku),
		cmd.setUnitPriceCents(unitPriceCents),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddItemCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// SKU returns the stock keeping unit of the item.
func (c AddItemCommand) SKU() string {
	return c.sku
}

// UnitPriceCents returns the unit price in cents.
func (c AddItemCommand) UnitPriceCents() int64 {
	return c.unitPriceCents
}

// Quantity returns the quantity to add.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setSKU(sku string) error {
	trimmed := strings.TrimSpace(sku)
	if trimmed == "" {
		return ErrSKUIsRequired
	}

	c.sku = trimmed
	return nil
}

func (c *AddItemCommand) setUnitPriceCents(cents int64) error {
	if cents < 0 {
		return ErrUnitPriceIsInvalid
	}

	c.unitPriceCents = cents
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
