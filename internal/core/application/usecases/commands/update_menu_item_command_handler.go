package commands

import (
	"context"

	"kitchen/internal/core/domain/model/menu"
)

// UpdateMenuItemCommandHandler handles menu item attribute changes.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated menu item.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) (*menu.MenuItem, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	aggregate, err := menuRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Update(
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.PreparationTime(),
		cmd.Category(),
	); err != nil {
		return nil, err
	}

	if err = menuRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
