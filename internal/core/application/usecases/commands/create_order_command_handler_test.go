package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a draft order and return its events", func(t *testing.T) {
		repo := &MockOrderRepository{}
		repo.On("Save", ctx, mock.Anything).Return(nil)
		handler := commands.NewCreateOrderCommandHandler(repo, stubOrderIDs{next: "ord_1"})

		cmd, err := commands.NewCreateOrderCommand("USD")
		require.NoError(t, err)

		result, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "ord_1", result.OrderID)
		require.Len(t, result.Events, 1)
		assert.Equal(t, order.OrderCreatedEventType, result.Events[0].EventType())

		repo.AssertExpectations(t)
		saved := repo.Calls[0].Arguments.Get(1).(*order.Order)
		assert.Equal(t, order.Draft, saved.Status())
		assert.Equal(t, "USD", saved.Currency())
	})

	t.Run("should fail with unconstructed command", func(t *testing.T) {
		repo := &MockOrderRepository{}
		handler := commands.NewCreateOrderCommandHandler(repo, stubOrderIDs{next: "ord_1"})

		var cmd commands.CreateOrderCommand
		_, err := handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		repo := &MockOrderRepository{}
		storageErr := errors.New("storage unavailable")
		repo.On("Save", ctx, mock.Anything).Return(storageErr)
		handler := commands.NewCreateOrderCommandHandler(repo, stubOrderIDs{next: "ord_1"})

		cmd, err := commands.NewCreateOrderCommand("USD")
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, storageErr)
	})
}
