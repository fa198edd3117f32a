package jobs

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob runs the completion sweep on a schedule: every tick it
// completes the processing orders whose preparation time has elapsed and
// releases their chefs.
type OrderCompletionJob struct {
	handler commands.CompleteDueOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderCompletionJob creates the completion sweep job.
func NewOrderCompletionJob(handler commands.CompleteDueOrdersCommandHandler, logger *slog.Logger) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_completion_job"),
	}
}

// Start begins the sweep, running every thirty seconds.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewCompleteDueOrdersCommand(time.Now())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "failed to build completion sweep command", "error", cmdErr)
			return
		}

		completed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "order completion sweep failed", "error", handleErr)
			return
		}

		if completed > 0 {
			j.logger.InfoContext(ctx, "order completion sweep finished", "completed", completed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started (running every 30 seconds)")
	return nil
}

// Stop stops the sweep.
func (j *OrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
