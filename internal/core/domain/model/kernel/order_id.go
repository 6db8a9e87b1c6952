package kernel

import (
	"strings"

	"ordering/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through NewOrderID. This error is returned when validating a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError("OrderID must be created via NewOrderID")

// OrderID is a value object identifying an Order aggregate. It wraps a
// non-empty trimmed string and compares by value.
//
// The zero value of OrderID is invalid and must be constructed using
// NewOrderID, either from a freshly generated identifier or from a persisted
// string.
type OrderID struct {
	value string
}

// NewOrderID creates an OrderID from a string. The value is trimmed and must
// be non-empty.
func NewOrderID(value string) (OrderID, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: v}, nil
}

// String returns the identifier's string representation.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two OrderIDs by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was constructed through NewOrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
