package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrderLine(t *testing.T, quantity int) commands.OrderLine {
	t.Helper()

	line, err := commands.NewOrderLine(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return line
}

func makeCustomer(t *testing.T, address string) order.CustomerInfo {
	t.Helper()

	customer, err := order.NewCustomerInfo("Alice", "555-0101", address, 2)
	require.NoError(t, err)
	return customer
}

func TestNewOrderLine(t *testing.T) {
	t.Run("should create a valid line", func(t *testing.T) {
		menuItemID := kernel.NewUUID()

		line, err := commands.NewOrderLine(menuItemID, 2)

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.MenuItemID().IsEqual(menuItemID))
		assert.Equal(t, 2, line.Quantity())
	})

	t.Run("should reject a zero quantity", func(t *testing.T) {
		_, err := commands.NewOrderLine(kernel.NewUUID(), 0)

		require.Error(t, err)
	})

	t.Run("should reject an invalid menu item id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewOrderLine(invalidID, 1)

		require.Error(t, err)
	})
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should create a dine-in command", func(t *testing.T) {
		tableNumber := 3
		lines := []commands.OrderLine{makeOrderLine(t, 1), makeOrderLine(t, 2)}

		cmd, err := commands.NewCreateOrderCommand(lines, order.TypeDineIn, makeCustomer(t, ""), &tableNumber, "extra sauce")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Len(t, cmd.Lines(), 2)
		assert.Equal(t, order.TypeDineIn, cmd.OrderType())
		require.NotNil(t, cmd.TableNumber())
		assert.Equal(t, 3, *cmd.TableNumber())
		assert.Equal(t, "extra sauce", cmd.CookingInstructions())
	})

	t.Run("should create a takeaway command without a table", func(t *testing.T) {
		lines := []commands.OrderLine{makeOrderLine(t, 1)}

		cmd, err := commands.NewCreateOrderCommand(lines, order.TypeTakeaway, makeCustomer(t, "12 Oak Street"), nil, "")

		require.NoError(t, err)
		assert.Nil(t, cmd.TableNumber())
	})

	t.Run("should fail without lines", func(t *testing.T) {
		tableNumber := 3

		_, err := commands.NewCreateOrderCommand(nil, order.TypeDineIn, makeCustomer(t, ""), &tableNumber, "")

		require.Error(t, err)
	})

	t.Run("should fail for dine-in without a table number", func(t *testing.T) {
		lines := []commands.OrderLine{makeOrderLine(t, 1)}

		_, err := commands.NewCreateOrderCommand(lines, order.TypeDineIn, makeCustomer(t, ""), nil, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTableNumberRequired)
	})

	t.Run("should fail for takeaway without an address", func(t *testing.T) {
		lines := []commands.OrderLine{makeOrderLine(t, 1)}

		_, err := commands.NewCreateOrderCommand(lines, order.TypeTakeaway, makeCustomer(t, ""), nil, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAddressRequired)
	})

	t.Run("should fail with an unconstructed line", func(t *testing.T) {
		tableNumber := 3
		lines := []commands.OrderLine{{}}

		_, err := commands.NewCreateOrderCommand(lines, order.TypeDineIn, makeCustomer(t, ""), &tableNumber, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrOrderLineIsNotConstructed)
	})

	t.Run("should fail with an invalid order type", func(t *testing.T) {
		tableNumber := 3
		lines := []commands.OrderLine{makeOrderLine(t, 1)}

		_, err := commands.NewCreateOrderCommand(lines, order.TypeUnknown, makeCustomer(t, ""), &tableNumber, "")

		require.Error(t, err)
	})
}

func TestCreateOrderCommand_Validate(t *testing.T) {
	t.Run("should reject a zero-value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
