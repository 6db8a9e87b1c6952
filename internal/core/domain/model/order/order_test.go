package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

// sequentialItemIDs hands out item_1, item_2, ... for deterministic tests.
type sequentialItemIDs struct {
	n int
}

func (g *sequentialItemIDs) NextOrderItemID() kernel.OrderItemID {
	g.n++
	id, err := kernel.NewOrderItemID(fmt.Sprintf("item_%d", g.n))
	if err != nil {
		panic(err)
	}
	return id
}

type stubDiscountPolicy struct {
	discounts map[string]order.ResolvedDiscount
}

func (p stubDiscountPolicy) Resolve(code string) (order.ResolvedDiscount, error) {
	resolved, ok := p.discounts[code]
	if !ok {
		return order.ResolvedDiscount{}, errs.NewDomainRuleError("Unknown discount code")
	}
	return resolved, nil
}

type stubSpecification struct {
	err error
}

func (s stubSpecification) AssertSatisfiedBy(_ *order.Order) error {
	return s.err
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustOrderID(t, "ord_1"), "USD")
	require.NoError(t, err)
	o.PullDomainEvents()
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create draft order and emit OrderCreated", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderID(t, "ord_1"), "USD")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "ord_1", o.ID().String())
		assert.Equal(t, "USD", o.Currency())
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.ListItems())

		_, hasDiscount := o.Discount()
		assert.False(t, hasDiscount)

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		created, ok := events[0].(order.OrderCreated)
		require.True(t, ok)
		assert.Equal(t, order.OrderCreatedEventType, created.EventType())
		assert.Equal(t, "ord_1", created.OrderID)
		assert.False(t, created.OccurredAt().IsZero())
	})

	t.Run("should trim the currency", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderID(t, "ord_1"), "  EUR  ")

		require.NoError(t, err)
		assert.Equal(t, "EUR", o.Currency())
	})

	t.Run("should fail with empty currency", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderID(t, "ord_1"), "   ")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Contains(t, err.Error(), "Currency cannot be empty")
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.OrderID

		o, err := order.NewOrder(invalidID, "USD")

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrderAddItem(t *testing.T) {
	t.Run("should add a new line item and emit ItemAddedToOrder", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}

		itemID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2, gen)

		require.NoError(t, err)
		assert.Equal(t, "item_1", itemID.String())

		items := o.ListItems()
		require.Len(t, items, 1)
		assert.Equal(t, "WIDGET-BLUE", items[0].SKU)
		assert.Equal(t, int64(2599), items[0].UnitPriceCents)
		assert.Equal(t, 2, items[0].Quantity)

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		added, ok := events[0].(order.ItemAddedToOrder)
		require.True(t, ok)
		assert.Equal(t, order.ItemAddedToOrderEventType, added.EventType())
		assert.Equal(t, "item_1", added.ItemID)
		assert.Equal(t, "WIDGET-BLUE", added.SKU)
		assert.Equal(t, 2, added.Quantity)
	})

	t.Run("should merge quantity when the SKU already exists", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}

		firstID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2, gen)
		require.NoError(t, err)
		o.PullDomainEvents()

		mergedID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 3, gen)

		require.NoError(t, err)
		assert.True(t, mergedID.IsEqual(firstID))

		items := o.ListItems()
		require.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		added, ok := events[0].(order.ItemAddedToOrder)
		require.True(t, ok)
		assert.Equal(t, firstID.String(), added.ItemID)
		assert.Equal(t, 3, added.Quantity)
	})

	t.Run("should trim the SKU before matching", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}

		firstID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 1, gen)
		require.NoError(t, err)

		mergedID, err := o.AddItem("  WIDGET-BLUE ", mustMoney(t, 2599, "USD"), 1, gen)

		require.NoError(t, err)
		assert.True(t, mergedID.IsEqual(firstID))
		assert.Len(t, o.ListItems(), 1)
	})

	t.Run("should fail with empty SKU", func(t *testing.T) {
		o := newDraftOrder(t)

		_, err := o.AddItem("   ", mustMoney(t, 100, "USD"), 1, &sequentialItemIDs{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Empty(t, o.ListItems())
		assert.Empty(t, o.PullDomainEvents())
	})

	t.Run("should fail when the unit price currency differs", func(t *testing.T) {
		o := newDraftOrder(t)

		_, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "EUR"), 1, &sequentialItemIDs{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Contains(t, err.Error(), "Unit price currency must match order currency")
		assert.Empty(t, o.ListItems())
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		o := newDraftOrder(t)

		_, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), 0, &sequentialItemIDs{})
		require.Error(t, err)

		_, err = o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), -2, &sequentialItemIDs{})
		require.Error(t, err)

		assert.Empty(t, o.ListItems())
	})

	t.Run("should reject an 11th distinct SKU but still merge existing ones", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}

		for i := 0; i < order.MaxUniqueSKUs; i++ {
			_, err := o.AddItem(fmt.Sprintf("SKU-%d", i), mustMoney(t, 100, "USD"), 1, gen)
			require.NoError(t, err)
		}
		o.PullDomainEvents()

		_, err := o.AddItem("SKU-NEW", mustMoney(t, 100, "USD"), 1, gen)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Contains(t, err.Error(), "more than 10 unique items")
		assert.Len(t, o.ListItems(), order.MaxUniqueSKUs)
		assert.Empty(t, o.PullDomainEvents())

		_, err = o.AddItem("SKU-0", mustMoney(t, 100, "USD"), 5, gen)
		require.NoError(t, err)
		assert.Equal(t, 6, o.ListItems()[0].Quantity)
	})
}

func TestOrderChangeItemQuantity(t *testing.T) {
	t.Run("should change the quantity and emit OrderItemQuantityChanged", func(t *testing.T) {
		o := newDraftOrder(t)
		itemID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), 2, &sequentialItemIDs{})
		require.NoError(t, err)
		o.PullDomainEvents()

		require.NoError(t, o.ChangeItemQuantity(itemID, 7))

		assert.Equal(t, 7, o.ListItems()[0].Quantity)

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(order.OrderItemQuantityChanged)
		require.True(t, ok)
		assert.Equal(t, order.OrderItemQuantityChangedEventType, changed.EventType())
		assert.Equal(t, 2, changed.From)
		assert.Equal(t, 7, changed.To)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.ChangeItemQuantity(mustItemID(t, "item_missing"), 3)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Contains(t, err.Error(), "OrderItem not found")
	})

	t.Run("should keep state unchanged on invalid quantity", func(t *testing.T) {
		o := newDraftOrder(t)
		itemID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), 2, &sequentialItemIDs{})
		require.NoError(t, err)
		o.PullDomainEvents()

		require.Error(t, o.ChangeItemQuantity(itemID, 0))

		assert.Equal(t, 2, o.ListItems()[0].Quantity)
		assert.Empty(t, o.PullDomainEvents())
	})
}

func TestOrderRemoveItem(t *testing.T) {
	t.Run("should remove the item and emit OrderItemRemoved", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}
		firstID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), 1, gen)
		require.NoError(t, err)
		_, err = o.AddItem("GADGET-RED", mustMoney(t, 200, "USD"), 1, gen)
		require.NoError(t, err)
		o.PullDomainEvents()

		require.NoError(t, o.RemoveItem(firstID))

		items := o.ListItems()
		require.Len(t, items, 1)
		assert.Equal(t, "GADGET-RED", items[0].SKU)

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		removed, ok := events[0].(order.OrderItemRemoved)
		require.True(t, ok)
		assert.Equal(t, order.OrderItemRemovedEventType, removed.EventType())
		assert.Equal(t, firstID.String(), removed.ItemID)
	})

	t.Run("should fail for an unknown item", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.RemoveItem(mustItemID(t, "item_missing"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})
}

func TestOrderApplyDiscount(t *testing.T) {
	policy := stubDiscountPolicy{discounts: map[string]order.ResolvedDiscount{
		"SAVE10": {Code: "SAVE10", Percent: 10},
	}}

	t.Run("should store the discount and emit DiscountAppliedToOrder", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.ApplyDiscount("SAVE10", policy))

		discount, ok := o.Discount()
		require.True(t, ok)
		assert.Equal(t, "SAVE10", discount.Code())
		assert.Equal(t, float64(10), discount.Percent())

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		applied, isApplied := events[0].(order.DiscountAppliedToOrder)
		require.True(t, isApplied)
		assert.Equal(t, order.DiscountAppliedToOrderEventType, applied.EventType())
		assert.Equal(t, "SAVE10", applied.Code)
		assert.Equal(t, float64(10), applied.Percent)
	})

	t.Run("should fail when a discount was already applied", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.ApplyDiscount("SAVE10", policy))
		o.PullDomainEvents()

		err := o.ApplyDiscount("SAVE10", policy)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
		assert.Contains(t, err.Error(), "Discount already applied")
		assert.Empty(t, o.PullDomainEvents())
	})

	t.Run("should propagate policy errors unchanged", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.ApplyDiscount("NOPE", policy)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown discount code")

		_, ok := o.Discount()
		assert.False(t, ok)
		assert.Empty(t, o.PullDomainEvents())
	})
}

func TestOrderTotals(t *testing.T) {
	policy := stubDiscountPolicy{discounts: map[string]order.ResolvedDiscount{
		"SAVE10": {Code: "SAVE10", Percent: 10},
		"ALL100": {Code: "ALL100", Percent: 100},
	}}

	t.Run("should return zero totals for an empty order", func(t *testing.T) {
		o := newDraftOrder(t)

		total, err := o.Total()

		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("should sum line totals and round the discount per whole-order amount", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}
		_, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2, gen)
		require.NoError(t, err)
		_, err = o.AddItem("GADGET-RED", mustMoney(t, 1299, "USD"), 3, gen)
		require.NoError(t, err)
		require.NoError(t, o.ApplyDiscount("SAVE10", policy))

		before, err := o.TotalBeforeDiscount()
		require.NoError(t, err)
		assert.Equal(t, int64(9095), before.Cents())

		amount, err := o.DiscountAmount()
		require.NoError(t, err)
		assert.Equal(t, int64(910), amount.Cents())

		total, err := o.Total()
		require.NoError(t, err)
		assert.Equal(t, int64(8185), total.Cents())
	})

	t.Run("should clamp the total to zero when the discount covers it", func(t *testing.T) {
		o := newDraftOrder(t)
		_, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 1, &sequentialItemIDs{})
		require.NoError(t, err)
		require.NoError(t, o.ApplyDiscount("ALL100", policy))

		total, err := o.Total()

		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestOrderConfirm(t *testing.T) {
	t.Run("should confirm and emit OrderConfirmed with the payable total", func(t *testing.T) {
		o := newDraftOrder(t)
		_, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2, &sequentialItemIDs{})
		require.NoError(t, err)
		o.PullDomainEvents()

		require.NoError(t, o.Confirm(stubSpecification{}))

		assert.Equal(t, order.Confirmed, o.Status())

		events := o.PullDomainEvents()
		require.Len(t, events, 1)
		confirmed, ok := events[0].(order.OrderConfirmed)
		require.True(t, ok)
		assert.Equal(t, order.OrderConfirmedEventType, confirmed.EventType())
		assert.Equal(t, int64(5198), confirmed.TotalCents)
		assert.Equal(t, "USD", confirmed.Currency)
	})

	t.Run("should leave the order draft when the specification fails", func(t *testing.T) {
		o := newDraftOrder(t)
		specErr := errs.NewDomainRuleError("Cannot confirm an empty order")

		err := o.Confirm(stubSpecification{err: specErr})

		require.Error(t, err)
		assert.Equal(t, specErr, err)
		assert.Equal(t, order.Draft, o.Status())
		assert.Empty(t, o.PullDomainEvents())
	})

	t.Run("should reject every mutation after confirmation", func(t *testing.T) {
		o := newDraftOrder(t)
		gen := &sequentialItemIDs{}
		itemID, err := o.AddItem("WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2, gen)
		require.NoError(t, err)
		require.NoError(t, o.Confirm(stubSpecification{}))
		o.PullDomainEvents()

		_, err = o.AddItem("GADGET-RED", mustMoney(t, 100, "USD"), 1, gen)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)

		err = o.ChangeItemQuantity(itemID, 5)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)

		err = o.RemoveItem(itemID)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)

		err = o.ApplyDiscount("SAVE10", stubDiscountPolicy{})
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)

		err = o.Confirm(stubSpecification{})
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)

		assert.Len(t, o.ListItems(), 1)
		assert.Equal(t, 2, o.ListItems()[0].Quantity)
		assert.Empty(t, o.PullDomainEvents())
	})
}

func TestOrderPullDomainEvents(t *testing.T) {
	t.Run("should drain the buffer exactly once", func(t *testing.T) {
		o, err := order.NewOrder(mustOrderID(t, "ord_1"), "USD")
		require.NoError(t, err)
		_, err = o.AddItem("WIDGET-BLUE", mustMoney(t, 100, "USD"), 1, &sequentialItemIDs{})
		require.NoError(t, err)

		events := o.PullDomainEvents()
		require.Len(t, events, 2)
		assert.Equal(t, order.OrderCreatedEventType, events[0].EventType())
		assert.Equal(t, order.ItemAddedToOrderEventType, events[1].EventType())

		assert.Empty(t, o.PullDomainEvents())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild an order without emitting events", func(t *testing.T) {
		item, err := order.RestoreItem(mustItemID(t, "item_1"), "WIDGET-BLUE", mustMoney(t, 2599, "USD"), 2)
		require.NoError(t, err)
		discount, err := kernel.NewDiscount("SAVE10", 10)
		require.NoError(t, err)

		o, err := order.RestoreOrder(mustOrderID(t, "ord_1"), "USD", order.Draft, []*order.Item{item}, &discount)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Len(t, o.ListItems(), 1)

		restored, ok := o.Discount()
		require.True(t, ok)
		assert.Equal(t, "SAVE10", restored.Code())

		assert.Empty(t, o.PullDomainEvents())
	})

	t.Run("should reject an item with a foreign currency", func(t *testing.T) {
		item, err := order.RestoreItem(mustItemID(t, "item_1"), "WIDGET-BLUE", mustMoney(t, 2599, "EUR"), 2)
		require.NoError(t, err)

		_, err = order.RestoreOrder(mustOrderID(t, "ord_1"), "USD", order.Draft, []*order.Item{item}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrDomainRuleViolated)
	})

	t.Run("should reject duplicate SKUs", func(t *testing.T) {
		first, err := order.RestoreItem(mustItemID(t, "item_1"), "WIDGET-BLUE", mustMoney(t, 100, "USD"), 1)
		require.NoError(t, err)
		second, err := order.RestoreItem(mustItemID(t, "item_2"), "WIDGET-BLUE", mustMoney(t, 100, "USD"), 1)
		require.NoError(t, err)

		_, err = order.RestoreOrder(mustOrderID(t, "ord_1"), "USD", order.Draft, []*order.Item{first, second}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(mustOrderID(t, "ord_1"), "USD", order.Unknown, nil, nil)

		require.Error(t, err)
	})
}
