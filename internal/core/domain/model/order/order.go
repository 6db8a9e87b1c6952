package order

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// MaxUniqueSKUs is the maximum number of distinct SKUs one order may hold.
const MaxUniqueSKUs = 10

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNotEditable is returned by every mutating operation invoked on a
	// confirmed order.
	ErrOrderNotEditable = errs.NewDomainRuleError("Order is not editable after confirmation")

	// ErrCurrencyIsRequired is returned when an order is created with an empty currency.
	ErrCurrencyIsRequired = errs.NewDomainRuleError("Currency cannot be empty")

	// ErrUnitPriceCurrencyMismatch is returned when an item's unit price does not
	// share the order's currency.
	ErrUnitPriceCurrencyMismatch = errs.NewDomainRuleError("Unit price currency must match order currency")

	// ErrTooManyUniqueSKUs is returned when adding an 11th distinct SKU.
	ErrTooManyUniqueSKUs = errs.NewDomainRuleError("Cannot have more than 10 unique items in an order")

	// ErrOrderItemNotFound is returned when a referenced line item does not exist.
	ErrOrderItemNotFound = errs.NewDomainRuleError("OrderItem not found")

	// ErrDiscountAlreadyApplied is returned when applying a discount to an order
	// that already holds one. A discount can never be replaced or removed.
	ErrDiscountAlreadyApplied = errs.NewDomainRuleError("Discount already applied")
)

// ItemDetails is a read-only view of one line item, exposed for queries and
// snapshot mapping without handing out the mutable entity.
type ItemDetails struct {
	ID             string
	SKU            string
	UnitPriceCents int64
	Currency       string
	Quantity       int
}

// Order represents a sales order. It is the aggregate root and the consistency
// boundary: it owns all line items and the optional discount, enforces every
// business rule, and emits domain events for each successful mutation.
//
// Order follows these invariants:
//   - All item unit prices share the order's currency (fixed at creation)
//   - At most 10 distinct SKUs; adding the same SKU again merges quantities
//   - Quantities are always positive integers
//   - A discount, once applied, is never replaced or removed
//   - No mutation is permitted once the order is Confirmed
//   - The payable total is never negative: a discount that would meet or
//     exceed the pre-discount total clamps the total to zero
//
// Pending domain events accumulate on the instance as an ephemeral append-only
// buffer and are drained, read-once, via PullDomainEvents by the collaborator
// that just invoked a mutation. They are not part of persisted state. The
// buffer is not synchronized: an aggregate instance must never be shared
// across goroutines.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// currency is fixed at creation; every unit price must match it
	currency string

	// status is the current state in the Draft -> Confirmed machine
	status Status

	// items is the ordered collection of owned line items
	items []*Item

	// discount is the at-most-one applied discount (nil if none)
	discount *kernel.Discount

	// pendingEvents is the drain-once buffer of emitted domain events
	pendingEvents []DomainEvent

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Draft status and emits OrderCreated.
// The currency is trimmed and must be non-empty; it cannot change afterwards.
func NewOrder(id kernel.OrderID, currency string) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		currency:      normalized,
		status:        Draft,
		isConstructed: true,
	}
	o.record(NewOrderCreated(id.String()))

	return o, nil
}

// RestoreOrder rebuilds an aggregate from persisted state without emitting
// events. It is used only by the persistence boundary and re-validates every
// invariant so that corrupted records never rehydrate.
func RestoreOrder(
	id kernel.OrderID,
	currency string,
	status Status,
	items []*Item,
	discount *kernel.Discount,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	normalized, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if len(items) > MaxUniqueSKUs {
		return nil, ErrTooManyUniqueSKUs
	}

	restored := make([]*Item, 0, len(items))
	seenSKUs := make(map[string]struct{}, len(items))
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if item.UnitPrice().Currency() != normalized {
			return nil, ErrUnitPriceCurrencyMismatch
		}
		if _, ok := seenSKUs[item.SKU()]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("duplicate SKU in persisted order"))
		}
		seenSKUs[item.SKU()] = struct{}{}
		restored = append(restored, item)
	}

	if discount != nil {
		if err = discount.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		currency:      normalized,
		status:        status,
		items:         restored,
		discount:      discount,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory.
// It is called by the persistence boundary before serializing an aggregate.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Currency returns the order's currency, fixed at creation.
func (o *Order) Currency() string {
	return o.currency
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Discount returns the applied discount, if any.
func (o *Order) Discount() (kernel.Discount, bool) {
	if o.discount == nil {
		return kernel.Discount{}, false
	}
	return *o.discount, true
}

// ListItems returns a read-only view of the order's line items in insertion order.
func (o *Order) ListItems() []ItemDetails {
	details := make([]ItemDetails, 0, len(o.items))
	for _, item := range o.items {
		details = append(details, ItemDetails{
			ID:             item.ID().String(),
			SKU:            item.SKU(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Currency:       item.UnitPrice().Currency(),
			Quantity:       item.Quantity(),
		})
	}
	return details
}

// AddItem adds a line item for the given SKU, or merges the quantity into the
// existing line when the SKU is already present (the emitted event then carries
// the existing item's id). New lines receive an identifier from itemIDs.
//
// Fails when the order is confirmed, the unit price currency differs from the
// order's, the SKU is empty after trimming, the quantity is not positive, or a
// new line would exceed MaxUniqueSKUs distinct SKUs.
//
// Returns the id of the affected (possibly pre-existing) line item.
func (o *Order) AddItem(
	sku string,
	unitPrice kernel.Money,
	quantity int,
	itemIDs ItemIDGenerator,
) (kernel.OrderItemID, error) {
	if err := o.assertDraft(); err != nil {
		return kernel.OrderItemID{}, err
	}

	if err := unitPrice.Validate(); err != nil {
		return kernel.OrderItemID{}, err
	}
	if unitPrice.Currency() != o.currency {
		return kernel.OrderItemID{}, ErrUnitPriceCurrencyMismatch
	}

	normalizedSKU := strings.TrimSpace(sku)
	if normalizedSKU == "" {
		return kernel.OrderItemID{}, errs.NewValueIsRequiredError("sku")
	}

	if existing := o.findBySKU(normalizedSKU); existing != nil {
		if err := existing.Increase(quantity); err != nil {
			return kernel.OrderItemID{}, err
		}
		o.record(NewItemAddedToOrder(o.id.String(), existing.ID().String(), normalizedSKU, quantity))
		return existing.ID(), nil
	}

	if len(o.items) >= MaxUniqueSKUs {
		return kernel.OrderItemID{}, ErrTooManyUniqueSKUs
	}

	item, err := NewItem(itemIDs.NextOrderItemID(), normalizedSKU, unitPrice, quantity)
	if err != nil {
		return kernel.OrderItemID{}, err
	}

	o.items = append(o.items, item)
	o.record(NewItemAddedToOrder(o.id.String(), item.ID().String(), normalizedSKU, quantity))

	return item.ID(), nil
}

// ChangeItemQuantity replaces the quantity of the identified line item and
// emits OrderItemQuantityChanged carrying the previous and new quantity.
// Fails when the order is confirmed, the item does not exist, or the new
// quantity is not positive.
func (o *Order) ChangeItemQuantity(itemID kernel.OrderItemID, to int) error {
	if err := o.assertDraft(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	item := o.findByID(itemID)
	if item == nil {
		return ErrOrderItemNotFound
	}

	from := item.Quantity()
	if err := item.ChangeQuantity(to); err != nil {
		return err
	}

	o.record(NewOrderItemQuantityChanged(o.id.String(), itemID.String(), from, to))
	return nil
}

// RemoveItem removes the identified line item and emits OrderItemRemoved.
// Fails when the order is confirmed or the item does not exist.
func (o *Order) RemoveItem(itemID kernel.OrderItemID) error {
	if err := o.assertDraft(); err != nil {
		return err
	}
	if err := itemID.Validate(); err != nil {
		return err
	}

	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.record(NewOrderItemRemoved(o.id.String(), itemID.String()))
			return nil
		}
	}

	return ErrOrderItemNotFound
}

// ApplyDiscount resolves the code through the injected policy and stores the
// resulting discount, emitting DiscountAppliedToOrder. Policy failures
// (unknown or empty codes) propagate unchanged.
// Fails when the order is confirmed or already holds a discount.
func (o *Order) ApplyDiscount(code string, policy DiscountPolicy) error {
	if err := o.assertDraft(); err != nil {
		return err
	}
	if o.discount != nil {
		return ErrDiscountAlreadyApplied
	}

	resolved, err := policy.Resolve(code)
	if err != nil {
		return err
	}

	discount, err := kernel.NewDiscount(resolved.Code, resolved.Percent)
	if err != nil {
		return err
	}

	o.discount = &discount
	o.record(NewDiscountAppliedToOrder(o.id.String(), discount.Code(), discount.Percent()))

	return nil
}

// TotalBeforeDiscount returns the sum of all line totals.
func (o *Order) TotalBeforeDiscount() (kernel.Money, error) {
	total, err := kernel.ZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		lineTotal, lineErr := item.LineTotal()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

// DiscountAmount returns the monetary value of the applied discount, or zero
// when no discount is present.
func (o *Order) DiscountAmount() (kernel.Money, error) {
	if o.discount == nil {
		return kernel.ZeroMoney(o.currency)
	}

	before, err := o.TotalBeforeDiscount()
	if err != nil {
		return kernel.Money{}, err
	}

	return before.Multiply(o.discount.Percent() / 100)
}

// Total returns the payable total: pre-discount total minus the discount
// amount, clamped to zero when the discount meets or exceeds the pre-discount
// total. The clamp means Total never produces a negative amount; this exact
// behavior is observable and must be preserved.
func (o *Order) Total() (kernel.Money, error) {
	before, err := o.TotalBeforeDiscount()
	if err != nil {
		return kernel.Money{}, err
	}

	amount, err := o.DiscountAmount()
	if err != nil {
		return kernel.Money{}, err
	}

	cmp, err := amount.CompareTo(before)
	if err != nil {
		return kernel.Money{}, err
	}
	if cmp >= 0 {
		return kernel.ZeroMoney(o.currency)
	}

	return before.Subtract(amount)
}

// Confirm transitions the order to Confirmed, provided the specification
// holds. On success it computes the payable total and emits OrderConfirmed
// carrying that total. The transition is irreversible.
func (o *Order) Confirm(spec ConfirmationSpecification) error {
	if err := o.assertDraft(); err != nil {
		return err
	}

	if err := spec.AssertSatisfiedBy(o); err != nil {
		return err
	}

	total, err := o.Total()
	if err != nil {
		return err
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.record(NewOrderConfirmed(o.id.String(), total.Cents(), total.Currency()))

	return nil
}

// PullDomainEvents drains the pending-event buffer: it returns all recorded
// events and clears the buffer, so each event is observed exactly once.
func (o *Order) PullDomainEvents() []DomainEvent {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

func (o *Order) record(event DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}

func (o *Order) assertDraft() error {
	if !o.status.IsDraft() {
		return ErrOrderNotEditable
	}
	return nil
}

func (o *Order) findBySKU(sku string) *Item {
	for _, item := range o.items {
		if item.SKU() == sku {
			return item
		}
	}
	return nil
}

func (o *Order) findByID(id kernel.OrderItemID) *Item {
	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item
		}
	}
	return nil
}

func normalizeCurrency(currency string) (string, error) {
	normalized := strings.TrimSpace(currency)
	if normalized == "" {
		return "", ErrCurrencyIsRequired
	}
	return normalized, nil
}
