package commands_test

import (
	"errors"
	"testing"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateChefCommandHandler_Handle(t *testing.T) {
	t.Run("should persist and return the new chef", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateChefCommand("Antonio")
		require.NoError(t, err)

		chefRepo := new(MockChefRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ChefRepository").Return(chefRepo).Once(),
			chefRepo.On("Add", ctx, mock.AnythingOfType("*chef.Chef")).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockChefUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateChefCommandHandler(factory)
		created, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "Antonio", created.Name())
		assert.Zero(t, created.ActiveOrders())
		assert.NoError(t, created.ID().Validate())
		uow.AssertExpectations(t)
		chefRepo.AssertExpectations(t)
	})

	t.Run("should reject a blank name", func(t *testing.T) {
		_, err := commands.NewCreateChefCommand("   ")

		require.Error(t, err)
	})

	t.Run("should surface a storage failure", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewCreateChefCommand("Maria")
		require.NoError(t, err)

		storageErr := errors.New("connection reset")

		chefRepo := new(MockChefRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ChefRepository").Return(chefRepo).Once(),
			chefRepo.On("Add", ctx, mock.AnythingOfType("*chef.Chef")).Return(storageErr).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockChefUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewCreateChefCommandHandler(factory)
		_, err = h.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, storageErr)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})
}
