package order

import "time"

// Event type strings, namespaced by bounded context and aggregate.
const (
	OrderCreatedEventType             = "ordering.order.created"
	ItemAddedToOrderEventType         = "ordering.order.itemAdded"
	OrderItemQuantityChangedEventType = "ordering.order.itemQtyChanged"
	OrderItemRemovedEventType         = "ordering.order.itemRemoved"
	DiscountAppliedToOrderEventType   = "ordering.order.discountApplied"
	OrderConfirmedEventType           = "ordering.order.confirmed"
)

// DomainEvent is an immutable record of a fact that occurred inside the Order
// aggregate. Events are notifications for external collaborators; they are not
// a source of truth and are never replayed to rebuild state.
type DomainEvent interface {
	// EventType returns the namespaced type string, e.g. "ordering.order.created".
	EventType() string

	// OccurredAt returns the moment the event was recorded.
	OccurredAt() time.Time
}

// eventMeta carries the timestamp shared by all event kinds.
type eventMeta struct {
	occurredAt time.Time
}

func newEventMeta() eventMeta {
	return eventMeta{occurredAt: time.Now()}
}

func (m eventMeta) OccurredAt() time.Time {
	return m.occurredAt
}

// OrderCreated is emitted when a new order enters the Draft state.
type OrderCreated struct {
	eventMeta
	OrderID string
}

// NewOrderCreated creates an OrderCreated event.
func NewOrderCreated(orderID string) OrderCreated {
	return OrderCreated{eventMeta: newEventMeta(), OrderID: orderID}
}

// EventType returns the event's type string.
func (OrderCreated) EventType() string { return OrderCreatedEventType }

// ItemAddedToOrder is emitted when a line item is added to an order, or when
// an existing SKU's quantity is merged. ItemID refers to the pre-existing item
// in the merge case.
type ItemAddedToOrder struct {
	eventMeta
	OrderID  string
	ItemID   string
	SKU      string
	Quantity int
}

// NewItemAddedToOrder creates an ItemAddedToOrder event.
func NewItemAddedToOrder(orderID, itemID, sku string, quantity int) ItemAddedToOrder {
	return ItemAddedToOrder{
		eventMeta: newEventMeta(),
		OrderID:   orderID,
		ItemID:    itemID,
		SKU:       sku,
		Quantity:  quantity,
	}
}

// EventType returns the event's type string.
func (ItemAddedToOrder) EventType() string { return ItemAddedToOrderEventType }

// OrderItemQuantityChanged is emitted when a line item's quantity is replaced.
type OrderItemQuantityChanged struct {
	eventMeta
	OrderID string
	ItemID  string
	From    int
	To      int
}

// NewOrderItemQuantityChanged creates an OrderItemQuantityChanged event.
func NewOrderItemQuantityChanged(orderID, itemID string, from, to int) OrderItemQuantityChanged {
	return OrderItemQuantityChanged{
		eventMeta: newEventMeta(),
		OrderID:   orderID,
		ItemID:    itemID,
		From:      from,
		To:        to,
	}
}

// EventType returns the event's type string.
func (OrderItemQuantityChanged) EventType() string { return OrderItemQuantityChangedEventType }

// OrderItemRemoved is emitted when a line item is removed from an order.
type OrderItemRemoved struct {
	eventMeta
	OrderID string
	ItemID  string
}

// NewOrderItemRemoved creates an OrderItemRemoved event.
func NewOrderItemRemoved(orderID, itemID string) OrderItemRemoved {
	return OrderItemRemoved{eventMeta: newEventMeta(), OrderID: orderID, ItemID: itemID}
}

// EventType returns the event's type string.
func (OrderItemRemoved) EventType() string { return OrderItemRemovedEventType }

// DiscountAppliedToOrder is emitted when a discount is resolved and stored on
// an order.
type DiscountAppliedToOrder struct {
	eventMeta
	OrderID string
	Code    string
	Percent float64
}

// NewDiscountAppliedToOrder creates a DiscountAppliedToOrder event.
func NewDiscountAppliedToOrder(orderID, code string, percent float64) DiscountAppliedToOrder {
	return DiscountAppliedToOrder{
		eventMeta: newEventMeta(),
		OrderID:   orderID,
		Code:      code,
		Percent:   percent,
	}
}

// EventType returns the event's type string.
func (DiscountAppliedToOrder) EventType() string { return DiscountAppliedToOrderEventType }

// OrderConfirmed is emitted when an order irreversibly transitions to
// Confirmed. It carries the payable total computed at confirmation time.
type OrderConfirmed struct {
	eventMeta
	OrderID    string
	TotalCents int64
	Currency   string
}

// NewOrderConfirmed creates an OrderConfirmed event.
func NewOrderConfirmed(orderID string, totalCents int64, currency string) OrderConfirmed {
	return OrderConfirmed{
		eventMeta:  newEventMeta(),
		OrderID:    orderID,
		TotalCents: totalCents,
		Currency:   currency,
	}
}

// EventType returns the event's type string.
func (OrderConfirmed) EventType() string { return OrderConfirmedEventType }
