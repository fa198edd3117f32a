package commands_test

import (
	"testing"
	"time"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_FullReversal(t *testing.T) {
	ctx := t.Context()
	chefID := kernel.NewUUID()
	aggregate := makeStoredOrder(t, order.Processing, &chefID)
	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	chefRepo := new(MockChefRepository)
	tableRepo := new(MockTableRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	menuItemID := aggregate.Items()[0].MenuItemID()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ChefRepository").Return(chefRepo).Once(),
		chefRepo.On("ReleaseOrder", ctx, chefID, aggregate.ID()).Return(nil).Once(),
		uow.On("TableRepository").Return(tableRepo).Once(),
		tableRepo.On("Release", ctx, 3).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("RestoreStock", ctx, menuItemID, 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, aggregate.ID(), deleted.ID())
	assert.Equal(t, order.Processing, deleted.Status())
	require.NotNil(t, deleted.Chef())
	assert.Equal(t, chefID, *deleted.Chef())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	chefRepo.AssertExpectations(t)
	tableRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_UnassignedTakeaway(t *testing.T) {
	ctx := t.Context()
	aggregate := makeTakeawayOrder(t)
	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	chefRepo := new(MockChefRepository)
	tableRepo := new(MockTableRepository)
	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)

	menuItemID := aggregate.Items()[0].MenuItemID()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("RestoreStock", ctx, menuItemID, 2).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, aggregate.ID(), deleted.ID())
	chefRepo.AssertNotCalled(t, "ReleaseOrder", mock.Anything, mock.Anything, mock.Anything)
	tableRepo.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	require.NoError(t, err)

	notFound := errs.NewObjectNotFoundError("orderID", orderID)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	deleted, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, deleted)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func makeTakeawayOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 9.5, 15, 2)
	require.NoError(t, err)

	customer, err := order.NewCustomerInfo("Bob", "555-0102", "12 Oak Street", 0)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(),
		order.TypeTakeaway,
		[]order.LineItem{item},
		19.0,
		15,
		order.Pending,
		nil,
		customer,
		"",
		nil,
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return aggregate
}
