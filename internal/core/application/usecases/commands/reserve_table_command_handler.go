package commands

import (
	"context"

	"kitchen/internal/core/domain/model/table"
)

// ReserveTableCommandHandler handles walk-in table reservations. The
// reservation is a single atomic flip in the repository, so two concurrent
// requests for the same table can never both succeed.
type ReserveTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewReserveTableCommandHandler creates a handler for table reservation.
func NewReserveTableCommandHandler(uowFactory TableUoWFactory) ReserveTableCommandHandler {
	return ReserveTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command and returns the reserved table.
func (h *ReserveTableCommandHandler) Handle(ctx context.Context, cmd ReserveTableCommand) (*table.Table, error) {
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

	tableRepo := uow.TableRepository()
	if err := tableRepo.Reserve(ctx, cmd.Number(), cmd.Party()); err != nil {
		return nil, err
	}

	aggregate, err := tableRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
