package commands

import (
	"context"
	"errors"

	"kitchen/internal/core/domain/services"
)

// ErrLastChefWithOrders is returned when removing the only remaining chef
// while they still hold active orders: there is nobody to hand the work to.
var ErrLastChefWithOrders = errors.New("cannot remove the last chef while orders are assigned")

// RemoveChefCommandHandler handles chef removal. The chef's active orders
// are redistributed to the remaining roster through the least-loaded policy
// inside the removal transaction, so no order is ever left pointing at a
// chef that no longer exists.
type RemoveChefCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ChefDispatcher
}

// NewRemoveChefCommandHandler creates a handler for chef removal.
func NewRemoveChefCommandHandler(uowFactory UoWFactory, dispatcher services.ChefDispatcher) RemoveChefCommandHandler {
	return RemoveChefCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the chef removal command.
func (h *RemoveChefCommandHandler) Handle(ctx context.Context, cmd RemoveChefCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	chefRepo := uow.ChefRepository()
	leaving, err := chefRepo.Get(ctx, cmd.ChefID())
	if err != nil {
		return unwind(ctx, uow, err)
	}

	orderRepo := uow.OrderRepository()
	active, err := orderRepo.GetActiveByChef(ctx, leaving.ID())
	if err != nil {
		return unwind(ctx, uow, err)
	}

	if len(active) > 0 {
		all, err := chefRepo.GetAll(ctx)
		if err != nil {
			return unwind(ctx, uow, err)
		}

		remaining := all[:0]
		for _, c := range all {
			if !c.ID().IsEqual(leaving.ID()) {
				remaining = append(remaining, c)
			}
		}
		if len(remaining) == 0 {
			return unwind(ctx, uow, ErrLastChefWithOrders)
		}

		// Dispatch mutates the in-memory load counters, so spreading a
		// busy chef's orders over the roster stays balanced within this
		// loop, not just against the persisted counts.
		for _, o := range active {
			taker, err := h.dispatcher.Dispatch(o, remaining)
			if err != nil {
				return unwind(ctx, uow, err)
			}
			if err = chefRepo.AcquireOrder(ctx, taker.ID(), o.ID()); err != nil {
				return unwind(ctx, uow, err)
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return unwind(ctx, uow, err)
			}
		}
	}

	if err = chefRepo.Delete(ctx, leaving.ID()); err != nil {
		return unwind(ctx, uow, err)
	}

	return uow.Commit(ctx)
}
