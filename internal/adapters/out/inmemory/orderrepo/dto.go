// Package orderrepo provides snapshot data transfer objects and mapping
// functions for order persistence. It implements the repository pattern for
// the order aggregate, converting between domain entities and stored snapshots.
package orderrepo

import (
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderDTO is the stored snapshot of an order aggregate. Pending domain events
// are deliberately absent: snapshots capture state only.
type OrderDTO struct {
	ID       string       `json:"id"`
	Currency string       `json:"currency"`
	Status   string       `json:"status"`
	Items    []ItemDTO    `json:"items"`
	Discount *DiscountDTO `json:"discount,omitempty"`
}

// ItemDTO is the snapshot of one line item. Each item carries its own currency
// so a corrupted record with a mismatching item currency is caught on restore.
type ItemDTO struct {
	ID             string `json:"id"`
	SKU            string `json:"sku"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Currency       string `json:"currency"`
	Quantity       int    `json:"quantity"`
}

// DiscountDTO is the snapshot of the applied discount, if any.
type DiscountDTO struct {
	Code    string  `json:"code"`
	Percent float64 `json:"percent"`
}

// fromDomain converts an order aggregate to its snapshot representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.ListItems()))
	for _, item := range aggregate.ListItems() {
		items = append(items, ItemDTO{
			ID:             item.ID,
			SKU:            item.SKU,
			UnitPriceCents: item.UnitPriceCents,
			Currency:       item.Currency,
			Quantity:       item.Quantity,
		})
	}

	var discount *DiscountDTO
	if applied, ok := aggregate.Discount(); ok {
		discount = &DiscountDTO{
			Code:    applied.Code(),
			Percent: applied.Percent(),
		}
	}

	return OrderDTO{
		ID:       aggregate.ID().String(),
		Currency: aggregate.Currency(),
		Status:   aggregate.Status().String(),
		Items:    items,
		Discount: discount,
	}
}

// toDomain converts a snapshot to an order aggregate. Reconstruction goes
// through RestoreOrder so every invariant is re-validated and no events are emitted.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.NewOrderItemID(itemDTO.ID)
		if itemErr != nil {
			return nil, itemErr
		}

		unitPrice, itemErr := kernel.NewMoney(itemDTO.UnitPriceCents, itemDTO.Currency)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreItem(itemID, itemDTO.SKU, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	var discount *kernel.Discount
	if dto.Discount != nil {
		restored, discountErr := kernel.NewDiscount(dto.Discount.Code, dto.Discount.Percent)
		if discountErr != nil {
			return nil, discountErr
		}
		discount = &restored
	}

	return order.RestoreOrder(id, dto.Currency, status, items, discount)
}
