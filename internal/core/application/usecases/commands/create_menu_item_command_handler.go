package commands

import (
	"context"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles adding a dish to the menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the new menu item.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := menu.NewMenuItem(
		kernel.NewUUID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.PreparationTime(),
		cmd.Category(),
		cmd.Stock(),
	)
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

	if err = uow.MenuRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
