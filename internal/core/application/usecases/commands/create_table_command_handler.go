package commands

import (
	"context"

	"kitchen/internal/core/domain/model/table"
)

// CreateTableCommandHandler handles adding a table. The new table takes the
// number one past the current highest, keeping the numbering dense together
// with the renumbering on deletion.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table creation.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the table creation command and returns the new table.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
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
	existing, err := tableRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	number := 1
	for _, t := range existing {
		if t.Number() >= number {
			number = t.Number() + 1
		}
	}

	created, err := table.NewTable(number, cmd.Capacity(), cmd.Name())
	if err != nil {
		return nil, err
	}

	if err = tableRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
