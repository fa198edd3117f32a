package commands

import "context"

// RemoveMenuItemCommandHandler handles taking a dish off the menu. Existing
// orders keep their line item snapshots; only future ordering is affected.
type RemoveMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveMenuItemCommandHandler creates a handler for menu item removal.
func NewRemoveMenuItemCommandHandler(uowFactory MenuUoWFactory) RemoveMenuItemCommandHandler {
	return RemoveMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveMenuItemCommandHandler) Handle(ctx context.Context, cmd RemoveMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuRepo := uow.MenuRepository()
	if _, err := menuRepo.Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := menuRepo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
