package commands

import (
	"context"

	"kitchen/internal/core/domain/model/order"
)

// DeleteOrderCommandHandler handles order cancellation. In one transaction
// it returns everything the order holds: the chef is released, the dine-in
// table is freed and every line's stock is restored, then the order row goes
// away. Each reversal is idempotent, so deleting an order whose chef is done
// with it or whose table was already freed works the same.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command and returns the deleted
// order, confirming what was wound back.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if chefID := aggregate.Chef(); chefID != nil {
		if err = uow.ChefRepository().ReleaseOrder(ctx, *chefID, aggregate.ID()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	if aggregate.Type() == order.TypeDineIn && aggregate.TableNumber() != nil {
		if err = uow.TableRepository().Release(ctx, *aggregate.TableNumber()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	menuRepo := uow.MenuRepository()
	for _, item := range aggregate.Items() {
		if err = menuRepo.RestoreStock(ctx, item.MenuItemID(), item.Quantity()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	if err = uow.OrderRepository().Delete(ctx, aggregate.ID()); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
