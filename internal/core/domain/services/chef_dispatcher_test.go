package services_test

import (
	"testing"
	"time"

	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 9.5, 15, 1)
	require.NoError(t, err)

	customer, err := order.NewCustomerInfo("Alice", "555-0101", "", 2)
	require.NoError(t, err)

	tableNumber := 1
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(),
		order.TypeDineIn,
		[]order.LineItem{item},
		customer,
		&tableNumber,
		"",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func makeChefWithLoad(t *testing.T, name string, load int) *chef.Chef {
	t.Helper()

	c, err := chef.NewChef(kernel.NewUUID(), name)
	require.NoError(t, err)
	for i := 0; i < load; i++ {
		require.NoError(t, c.TakeOrder(kernel.NewUUID()))
	}
	return c
}

func TestChefDispatcher_Dispatch(t *testing.T) {
	t.Run("should pick the least loaded chef", func(t *testing.T) {
		dispatcher := services.NewChefDispatcher()
		busy := makeChefWithLoad(t, "Antonio", 3)
		idle := makeChefWithLoad(t, "Maria", 0)
		o := makeOrder(t)

		chosen, err := dispatcher.Dispatch(o, []*chef.Chef{busy, idle})

		require.NoError(t, err)
		assert.True(t, chosen.ID().IsEqual(idle.ID()))
		assert.Equal(t, 1, idle.ActiveOrders())
		assert.True(t, idle.HasOrder(o.ID()))
		require.NotNil(t, o.Chef())
		assert.True(t, o.Chef().IsEqual(idle.ID()))
	})

	t.Run("should break ties with the pick function", func(t *testing.T) {
		first := makeChefWithLoad(t, "Antonio", 1)
		second := makeChefWithLoad(t, "Maria", 1)
		third := makeChefWithLoad(t, "Kenji", 2)

		dispatcher := services.NewChefDispatcherWithPick(func(n int) int {
			assert.Equal(t, 2, n)
			return 1
		})

		chosen, err := dispatcher.Dispatch(makeOrder(t), []*chef.Chef{first, second, third})

		require.NoError(t, err)
		assert.True(t, chosen.ID().IsEqual(second.ID()))
		assert.Equal(t, 2, third.ActiveOrders())
	})

	t.Run("should fail with no chefs", func(t *testing.T) {
		dispatcher := services.NewChefDispatcher()

		_, err := dispatcher.Dispatch(makeOrder(t), nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNoChefsAvailable)
	})

	t.Run("should fail with an unconstructed order", func(t *testing.T) {
		dispatcher := services.NewChefDispatcher()
		var o order.Order

		_, err := dispatcher.Dispatch(&o, []*chef.Chef{makeChefWithLoad(t, "Antonio", 0)})

		require.Error(t, err)
	})

	t.Run("should fail with an unconstructed chef in the set", func(t *testing.T) {
		dispatcher := services.NewChefDispatcher()
		var c chef.Chef

		_, err := dispatcher.Dispatch(makeOrder(t), []*chef.Chef{&c})

		require.Error(t, err)
	})

	t.Run("should keep load balanced over repeated dispatches", func(t *testing.T) {
		dispatcher := services.NewChefDispatcherWithPick(func(int) int { return 0 })
		chefs := []*chef.Chef{
			makeChefWithLoad(t, "Antonio", 0),
			makeChefWithLoad(t, "Maria", 0),
			makeChefWithLoad(t, "Kenji", 0),
		}

		for i := 0; i < 9; i++ {
			_, err := dispatcher.Dispatch(makeOrder(t), chefs)
			require.NoError(t, err)
		}

		for _, c := range chefs {
			assert.Equal(t, 3, c.ActiveOrders())
		}
	})
}
