package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// AssignChefCommandHandler handles manual chef assignment. The release of
// the previous chef and the acquisition by the new one happen in the same
// transaction, so a failure mid-way can never leave the order counted
// against two chefs or against none.
type AssignChefCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignChefCommandHandler creates a handler for manual chef assignment.
func NewAssignChefCommandHandler(uowFactory UoWFactory) AssignChefCommandHandler {
	return AssignChefCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the manual assignment command and returns the updated
// order.
func (h *AssignChefCommandHandler) Handle(ctx context.Context, cmd AssignChefCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, unwind(ctx, uow, err)
	}

	chefRepo := uow.ChefRepository()
	if _, err = chefRepo.Get(ctx, cmd.ChefID()); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	previous := aggregate.Chef()
	if err = aggregate.AssignChef(cmd.ChefID()); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if previous != nil && !previous.IsEqual(cmd.ChefID()) {
		if err = chefRepo.ReleaseOrder(ctx, *previous, aggregate.ID()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	if previous == nil || !previous.IsEqual(cmd.ChefID()) {
		if err = chefRepo.AcquireOrder(ctx, cmd.ChefID(), aggregate.ID()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
