// Package queries contains read operations in the CQRS architecture.
// Queries never mutate aggregates; they project stored state into
// human-readable response models.
package queries

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves a human-readable summary of one order.
//
// Example:
//
//	query, err := NewGetOrderSummaryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order summary: %w", err)
//	}
//	fmt.Printf("Order is %s, total %s\n", summary.Status, summary.Total)
type GetOrderSummaryQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for the given order.
// Validates that the order id is valid.
func NewGetOrderSummaryQuery(orderID kernel.OrderID) (GetOrderSummaryQuery, error) {
	query := GetOrderSummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

func (q *GetOrderSummaryQuery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderSummaryQueryResponse is the read model of one order. All monetary
// values are pre-formatted as "units.cents CURRENCY" strings, e.g. "81.85 USD".
type GetOrderSummaryQueryResponse struct {
	Status   string
	Items    []OrderSummaryItem
	Discount *OrderSummaryDiscount
	Total    string
}

// OrderSummaryItem is the read model of one line item.
type OrderSummaryItem struct {
	ItemID    string
	SKU       string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// OrderSummaryDiscount is the read model of the applied discount.
type OrderSummaryDiscount struct {
	Code    string
	Percent float64
}
