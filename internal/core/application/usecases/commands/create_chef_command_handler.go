package commands

import (
	"context"

	"kitchen/internal/core/domain/model/chef"
	"kitchen/internal/core/domain/model/kernel"
)

// CreateChefCommandHandler handles adding a chef to the roster.
type CreateChefCommandHandler struct {
	uowFactory ChefUoWFactory
}

// NewCreateChefCommandHandler creates a handler for chef creation.
func NewCreateChefCommandHandler(uowFactory ChefUoWFactory) CreateChefCommandHandler {
	return CreateChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the chef creation command and returns the new chef.
func (h *CreateChefCommandHandler) Handle(ctx context.Context, cmd CreateChefCommand) (*chef.Chef, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := chef.NewChef(kernel.NewUUID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ChefRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
