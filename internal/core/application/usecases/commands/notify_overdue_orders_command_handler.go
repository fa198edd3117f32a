package commands

import (
	"context"
	"log/slog"

	"kitchen/internal/core/ports"
)

// NotifyOverdueOrdersCommandHandler handles the overdue monitor run. It only
// reads: each order past the threshold produces an OVERDUE_ORDER signal and
// the orders themselves are left untouched for the completion sweep.
type NotifyOverdueOrdersCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewNotifyOverdueOrdersCommandHandler creates a handler for the overdue
// monitor.
func NewNotifyOverdueOrdersCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) NotifyOverdueOrdersCommandHandler {
	return NotifyOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle runs one monitor pass and returns how many alerts were raised.
func (h *NotifyOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd NotifyOverdueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	processing, err := uow.OrderRepository().GetAllInProcessingStatus(ctx)
	if err != nil {
		return 0, err
	}

	notified := 0
	for _, aggregate := range processing {
		elapsed, ok := aggregate.ElapsedMinutes(cmd.Now())
		if !ok || elapsed < cmd.ThresholdMinutes() {
			continue
		}

		payload := OverdueOrderNotification{
			OrderID:        aggregate.ID().String(),
			Reference:      aggregate.Reference().String(),
			ElapsedMinutes: elapsed,
		}
		if err = h.notifier.Notify(ctx, ports.NotificationOverdueOrder, payload); err != nil {
			h.logger.WarnContext(ctx, "failed to notify about overdue order",
				slog.String("order_id", payload.OrderID),
				slog.Any("error", err),
			)
			continue
		}
		notified++
	}

	return notified, nil
}
