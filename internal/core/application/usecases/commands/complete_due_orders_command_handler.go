package commands

import (
	"context"
	"errors"
	"log/slog"

	"kitchen/internal/core/domain/model/order"
)

// CompleteDueOrdersCommandHandler runs the periodic completion sweep: every
// processing order whose elapsed time has reached its preparation time is
// moved to Done and its chef released.
//
// Each status write is a compare-and-swap from Processing. When the sweep
// loses the race to a manual transition it skips the order without touching
// the chef: the winning writer already applied the compensation. Orders
// restored without a recorded start time are skipped entirely rather than
// completed on a guess.
type CompleteDueOrdersCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewCompleteDueOrdersCommandHandler creates a handler for the sweep.
func NewCompleteDueOrdersCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CompleteDueOrdersCommandHandler {
	return CompleteDueOrdersCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle runs one sweep and returns how many orders it completed.
func (h *CompleteDueOrdersCommandHandler) Handle(ctx context.Context, cmd CompleteDueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	processing, err := orderRepo.GetAllInProcessingStatus(ctx)
	if err != nil {
		return 0, unwind(ctx, uow, err)
	}

	completed := 0
	for _, aggregate := range processing {
		if !aggregate.DueForCompletion(cmd.Now()) {
			continue
		}

		if err = aggregate.Complete(); err != nil {
			return 0, unwind(ctx, uow, err)
		}

		err = orderRepo.UpdateStatusFrom(ctx, aggregate, order.Processing)
		if errors.Is(err, order.ErrAlreadyTransitioned) {
			h.logger.DebugContext(ctx, "order already transitioned, skipping",
				slog.String("order_id", aggregate.ID().String()),
			)
			continue
		}
		if err != nil {
			return 0, unwind(ctx, uow, err)
		}

		if chefID := aggregate.Chef(); chefID != nil {
			if err = uow.ChefRepository().ReleaseOrder(ctx, *chefID, aggregate.ID()); err != nil {
				return 0, unwind(ctx, uow, err)
			}
		}
		completed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return completed, nil
}
