package commands

import (
	"context"

	"kitchen/internal/core/domain/model/table"
)

// ReleaseTableCommandHandler handles clearing a table's reservation.
// Releasing an already-free table succeeds without effect.
type ReleaseTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewReleaseTableCommandHandler creates a handler for table release.
func NewReleaseTableCommandHandler(uowFactory TableUoWFactory) ReleaseTableCommandHandler {
	return ReleaseTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command and returns the freed table.
func (h *ReleaseTableCommandHandler) Handle(ctx context.Context, cmd ReleaseTableCommand) (*table.Table, error) {
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
	aggregate, err := tableRepo.Get(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}

	if err = tableRepo.Release(ctx, cmd.Number()); err != nil {
		return nil, err
	}
	aggregate.Release()

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
