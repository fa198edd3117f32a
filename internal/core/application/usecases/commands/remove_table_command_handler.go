package commands

import (
	"context"
	"errors"
)

// ErrTableStillReserved is returned when removing a table that currently
// holds a reservation.
var ErrTableStillReserved = errors.New("cannot remove a reserved table")

// RemoveTableCommandHandler handles table removal. A reserved table cannot
// be removed; on success every higher-numbered table shifts down by one so
// the numbering stays dense.
type RemoveTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewRemoveTableCommandHandler creates a handler for table removal.
func NewRemoveTableCommandHandler(uowFactory TableUoWFactory) RemoveTableCommandHandler {
	return RemoveTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table removal command.
func (h *RemoveTableCommandHandler) Handle(ctx context.Context, cmd RemoveTableCommand) error {
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

	tableRepo := uow.TableRepository()
	aggregate, err := tableRepo.Get(ctx, cmd.Number())
	if err != nil {
		return err
	}

	if aggregate.IsReserved() {
		return ErrTableStillReserved
	}

	if err = tableRepo.Delete(ctx, aggregate.Number()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
