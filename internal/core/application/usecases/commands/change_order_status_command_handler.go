package commands

import (
	"context"
	"time"

	"kitchen/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler handles manual lifecycle transitions.
// The status write is a compare-and-swap against the state the order was
// read in, so a concurrent writer (another operator or the completion
// sweep) can never apply the same transition's compensations twice.
//
// Compensations ride the same transaction as the status write:
//   - entering Done releases the assigned chef's capacity
//   - entering Served releases the dine-in table reservation
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status changes.
func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
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

	expected := aggregate.Status()
	if err = applyTransition(aggregate, cmd.Target()); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if err = orderRepo.UpdateStatusFrom(ctx, aggregate, expected); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	switch cmd.Target() {
	case order.Done:
		if chefID := aggregate.Chef(); chefID != nil {
			if err = uow.ChefRepository().ReleaseOrder(ctx, *chefID, aggregate.ID()); err != nil {
				return nil, unwind(ctx, uow, err)
			}
		}
	case order.Served:
		if aggregate.Type() == order.TypeDineIn && aggregate.TableNumber() != nil {
			if err = uow.TableRepository().Release(ctx, *aggregate.TableNumber()); err != nil {
				return nil, unwind(ctx, uow, err)
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// applyTransition drives the aggregate to the target state through its
// transition methods, so each state's side effects stay in one place.
func applyTransition(aggregate *order.Order, target order.Status) error {
	switch target {
	case order.Processing:
		return aggregate.StartProcessing(time.Now())
	case order.Done:
		return aggregate.Complete()
	case order.Served:
		return aggregate.Serve()
	default:
		_, err := aggregate.Status().TransitionTo(target)
		return err
	}
}
