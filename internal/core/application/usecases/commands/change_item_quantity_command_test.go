package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeItemQuantityCommand(t *testing.T) {
	orderID := mustOrderID(t, "ord_1")
	itemID := mustItemID(t, "item_1")

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewChangeItemQuantityCommand(orderID, itemID, 5)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.ItemID().IsEqual(itemID))
		assert.Equal(t, 5, cmd.Quantity())
	})

	t.Run("should fail with invalid ids", func(t *testing.T) {
		var invalidOrderID kernel.OrderID
		var invalidItemID kernel.OrderItemID

		_, err := commands.NewChangeItemQuantityCommand(invalidOrderID, itemID, 5)
		require.Error(t, err)

		_, err = commands.NewChangeItemQuantityCommand(orderID, invalidItemID, 5)
		require.Error(t, err)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewChangeItemQuantityCommand(orderID, itemID, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})
}
