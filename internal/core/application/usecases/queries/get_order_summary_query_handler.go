package queries

import (
	"context"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// GetOrderSummaryQueryHandler projects an order aggregate into its summary
// read model. It reads through the repository port and leaves the aggregate
// untouched.
type GetOrderSummaryQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(orderRepo ports.OrderRepository) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{orderRepo: orderRepo}
}

// Handle loads the order and builds its summary. Line totals and the payable
// total reflect the same arithmetic the aggregate uses, discount included.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.GetByID(ctx, query.OrderID())
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	items := make([]OrderSummaryItem, 0, len(aggregate.ListItems()))
	for _, item := range aggregate.ListItems() {
		unitPrice, itemErr := kernel.NewMoney(item.UnitPriceCents, item.Currency)
		if itemErr != nil {
			return GetOrderSummaryQueryResponse{}, itemErr
		}

		lineTotal, itemErr := unitPrice.Multiply(float64(item.Quantity))
		if itemErr != nil {
			return GetOrderSummaryQueryResponse{}, itemErr
		}

		items = append(items, OrderSummaryItem{
			ItemID:    item.ID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			UnitPrice: formatMoney(unitPrice),
			LineTotal: formatMoney(lineTotal),
		})
	}

	var discount *OrderSummaryDiscount
	if applied, ok := aggregate.Discount(); ok {
		discount = &OrderSummaryDiscount{
			Code:    applied.Code(),
			Percent: applied.Percent(),
		}
	}

	total, err := aggregate.Total()
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	return GetOrderSummaryQueryResponse{
		Status:   aggregate.Status().String(),
		Items:    items,
		Discount: discount,
		Total:    formatMoney(total),
	}, nil
}

// formatMoney renders an amount as "units.cents CURRENCY", e.g. 8185 cents in
// USD becomes "81.85 USD". Amounts are never negative here, so plain integer
// division is safe.
func formatMoney(amount kernel.Money) string {
	return fmt.Sprintf("%d.%02d %s", amount.Cents()/100, amount.Cents()%100, amount.Currency())
}
