package services

import (
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

var (
	// ErrOrderIsEmpty is returned when confirming an order with no line items.
	ErrOrderIsEmpty = errs.NewDomainRuleError("Cannot confirm an empty order")

	// ErrOrderTotalIsZero is returned when the payable total is not positive,
	// e.g. when a discount clamped it to zero.
	ErrOrderTotalIsZero = errs.NewDomainRuleError("Order total must be > 0 to confirm")
)

// DefaultConfirmationSpecification decides whether an order may be confirmed.
// It implements order.ConfirmationSpecification and is injected into the
// confirmation use case so the rule set can vary without touching the aggregate.
//
// Business rules:
//   - The order must have at least one line item
//   - The payable total (after discount) must be greater than zero
type DefaultConfirmationSpecification struct{}

// NewDefaultConfirmationSpecification creates a DefaultConfirmationSpecification.
func NewDefaultConfirmationSpecification() DefaultConfirmationSpecification {
	return DefaultConfirmationSpecification{}
}

// AssertSatisfiedBy returns nil when the order may be confirmed and a
// domain rule error describing the violated rule otherwise.
func (DefaultConfirmationSpecification) AssertSatisfiedBy(o *order.Order) error {
	if len(o.ListItems()) == 0 {
		return ErrOrderIsEmpty
	}

	total, err := o.Total()
	if err != nil {
		return err
	}
	if total.IsZero() {
		return ErrOrderTotalIsZero
	}

	return nil
}
