package kernel

import (
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrOrderItemIDIsNotConstructed indicates that an OrderItemID was not properly
// initialized through NewOrderItemID.
var ErrOrderItemIDIsNotConstructed = errs.NewValueIsRequiredError("OrderItemID must be created via NewOrderItemID")

// OrderItemID is a value object identifying a line item within an Order.
// It wraps a non-empty trimmed string and compares by value.
type OrderItemID struct {
	value string
}

// NewOrderItemID creates an OrderItemID from a string. The value is trimmed
// and must be non-empty.
func NewOrderItemID(value string) (OrderItemID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return OrderItemID{}, errs.NewValueIsRequiredError("order item id")
	}
	return OrderItemID{value: v}, nil
}

// String returns the identifier's string representation.
func (id OrderItemID) String() string {
	return id.value
}

// IsEqual compares two OrderItemIDs by value.
func (id OrderItemID) IsEqual(other OrderItemID) bool {
	return id.value == other.value
}

// Validate checks that the OrderItemID was constructed through NewOrderItemID.
func (id OrderItemID) Validate() error {
	if id.value == "" {
		return ErrOrderItemIDIsNotConstructed
	}
	return nil
}
