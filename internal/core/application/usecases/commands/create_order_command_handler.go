package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/model/table"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Within one transaction it reserves stock for every line, reserves the
// table for dine-in orders, moves the order straight into processing and
// dispatches the least-loaded chef. Any step failing unwinds the whole
// allocation, so an order never holds part of its resources.
//
// An empty chef roster does not fail creation: the order is committed
// unassigned and an UNASSIGNED_ORDER notification goes out after commit.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher, notifier, logger)
//	cmd, _ := NewCreateOrderCommand(lines, order.TypeDineIn, customer, &tableNumber, "no onions")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.ChefDispatcher
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.ChefDispatcher,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order creation command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	menuRepo := uow.MenuRepository()
	items := make([]order.LineItem, 0, len(cmd.Lines()))
	for _, line := range cmd.Lines() {
		snapshot, err := menuRepo.ReserveStock(ctx, line.MenuItemID(), line.Quantity())
		if err != nil {
			return nil, unwind(ctx, uow, err)
		}

		item, err := order.NewLineItem(
			line.MenuItemID(),
			snapshot.Name,
			snapshot.UnitPrice,
			snapshot.PreparationTime,
			line.Quantity(),
		)
		if err != nil {
			return nil, unwind(ctx, uow, err)
		}
		items = append(items, item)
	}

	if cmd.OrderType() == order.TypeDineIn {
		party := table.Party{
			CustomerName: cmd.Customer().Name(),
			PhoneNumber:  cmd.Customer().PhoneNumber(),
			PartySize:    cmd.Customer().PartySize(),
		}
		if err := uow.TableRepository().Reserve(ctx, *cmd.TableNumber(), party); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	now := time.Now()
	created, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewOrderReference(),
		cmd.OrderType(),
		items,
		cmd.Customer(),
		cmd.TableNumber(),
		cmd.CookingInstructions(),
		now,
	)
	if err != nil {
		return nil, unwind(ctx, uow, err)
	}

	// The kitchen starts cooking immediately; new orders do not sit in a
	// pending queue.
	if err = created.StartProcessing(now); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	chefRepo := uow.ChefRepository()
	chefs, err := chefRepo.GetAll(ctx)
	if err != nil {
		return nil, unwind(ctx, uow, err)
	}

	chosen, err := h.dispatcher.Dispatch(created, chefs)
	switch {
	case errors.Is(err, services.ErrNoChefsAvailable):
		// Committed unassigned; the notification goes out after commit.
	case err != nil:
		return nil, unwind(ctx, uow, err)
	default:
		if err = chefRepo.AcquireOrder(ctx, chosen.ID(), created.ID()); err != nil {
			return nil, unwind(ctx, uow, err)
		}
	}

	if err = uow.OrderRepository().Add(ctx, created); err != nil {
		return nil, unwind(ctx, uow, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if created.Chef() == nil {
		h.notifyUnassigned(ctx, created)
	}

	return created, nil
}

// notifyUnassigned emits the UNASSIGNED_ORDER signal. Notification failures
// are logged and never fail the already-committed creation.
func (h *CreateOrderCommandHandler) notifyUnassigned(ctx context.Context, created *order.Order) {
	payload := UnassignedOrderNotification{
		OrderID:   created.ID().String(),
		Reference: created.Reference().String(),
	}
	if err := h.notifier.Notify(ctx, ports.NotificationUnassignedOrder, payload); err != nil {
		h.logger.WarnContext(ctx, "failed to notify about unassigned order",
			slog.String("order_id", payload.OrderID),
			slog.Any("error", err),
		)
	}
}
