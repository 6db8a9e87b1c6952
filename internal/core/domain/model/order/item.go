package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created through
// the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is a line-item entity identified by an OrderItemID. It is owned
// exclusively by one Order and never exists outside its aggregate.
//
// Item follows these invariants:
//   - Must have a valid identifier and a non-empty SKU
//   - Unit price is an immutable Money value fixed at creation
//   - Quantity is always a positive integer
//
// Quantity is the only mutable attribute; it changes in place through
// Increase and ChangeQuantity, both invoked by the owning Order.
type Item struct {
	// id is the unique identifier of the line item within the aggregate
	id kernel.OrderItemID

	// sku is the trimmed stock keeping unit; unique per order
	sku string

	// unitPrice is the per-unit price in the order's currency
	unitPrice kernel.Money

	// quantity is the ordered count (always > 0)
	quantity int

	// isConstructed ensures the item was created via a factory function
	isConstructed bool
}

// NewItem creates a line item with validation. The SKU is trimmed and must be
// non-empty; the quantity must be a positive integer; the unit price must be
// a constructed Money value.
func NewItem(id kernel.OrderItemID, sku string, unitPrice kernel.Money, quantity int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := unitPrice.Validate(); err != nil {
		return nil, err
	}

	normalizedSKU := strings.TrimSpace(sku)
	if normalizedSKU == "" {
		return nil, errs.NewValueIsRequiredError("sku")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}

	return &Item{
		id:            id,
		sku:           normalizedSKU,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from a persisted record. It applies the
// same validation as NewItem so that corrupted records never rehydrate.
func RestoreItem(id kernel.OrderItemID, sku string, unitPrice kernel.Money, quantity int) (*Item, error) {
	return NewItem(id, sku, unitPrice, quantity)
}

// Validate ensures the Item instance was properly constructed through a factory.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.OrderItemID {
	return i.id
}

// SKU returns the item's stock keeping unit.
func (i *Item) SKU() string {
	return i.sku
}

// UnitPrice returns the per-unit price.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the current quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// Increase adds `by` to the quantity. Fails if `by` is not a positive integer.
func (i *Item) Increase(by int) error {
	if by <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("increase",
			fmt.Errorf("%d is not a positive integer", by))
	}
	i.quantity += by
	return nil
}

// ChangeQuantity replaces the quantity with `to` (not additive).
// Fails if `to` is not a positive integer.
func (i *Item) ChangeQuantity(to int) error {
	if to <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not a positive integer", to))
	}
	i.quantity = to
	return nil
}

// LineTotal returns unit price multiplied by quantity.
func (i *Item) LineTotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(float64(i.quantity))
}
