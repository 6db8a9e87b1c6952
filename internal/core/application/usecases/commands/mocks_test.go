package commands_test

import (
	"context"
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) GetByID(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if aggregate, ok := args.Get(0).(*order.Order); ok {
		return aggregate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Save(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type stubOrderIDs struct {
	next string
}

func (g stubOrderIDs) NextOrderID() kernel.OrderID {
	id, err := kernel.NewOrderID(g.next)
	if err != nil {
		panic(err)
	}
	return id
}

type stubItemIDs struct {
	n int
}

func (g *stubItemIDs) NextOrderItemID() kernel.OrderItemID {
	g.n++
	id, err := kernel.NewOrderItemID(fmt.Sprintf("item_%d", g.n))
	if err != nil {
		panic(err)
	}
	return id
}

type stubDiscountPolicy struct {
	resolved order.ResolvedDiscount
	err      error
}

func (p stubDiscountPolicy) Resolve(_ string) (order.ResolvedDiscount, error) {
	if p.err != nil {
		return order.ResolvedDiscount{}, p.err
	}
	return p.resolved, nil
}

type stubSpecification struct {
	err error
}

func (s stubSpecification) AssertSatisfiedBy(_ *order.Order) error {
	return s.err
}

func mustOrderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func mustItemID(t *testing.T, value string) kernel.OrderItemID {
	t.Helper()
	id, err := kernel.NewOrderItemID(value)
	require.NoError(t, err)
	return id
}

// draftOrderWithItem builds a draft order holding one line item and drains
// the creation events so handler tests only observe their own.
func draftOrderWithItem(t *testing.T, orderID string) (*order.Order, kernel.OrderItemID) {
	t.Helper()
	o, err := order.NewOrder(mustOrderID(t, orderID), "USD")
	require.NoError(t, err)

	price, err := kernel.NewMoney(2599, "USD")
	require.NoError(t, err)
	itemID, err := o.AddItem("WIDGET-BLUE", price, 2, &stubItemIDs{})
	require.NoError(t, err)

	o.PullDomainEvents()
	return o, itemID
}
