package jobs

import (
	"context"
	"log/slog"
	"time"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OverdueOrderJob watches the kitchen for orders cooking past the overdue
// threshold and raises an alert for each, leaving the orders themselves to
// the completion sweep.
type OverdueOrderJob struct {
	handler          commands.NotifyOverdueOrdersCommandHandler
	thresholdMinutes int
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewOverdueOrderJob creates the overdue monitor job.
func NewOverdueOrderJob(
	handler commands.NotifyOverdueOrdersCommandHandler,
	thresholdMinutes int,
	logger *slog.Logger,
) *OverdueOrderJob {
	return &OverdueOrderJob{
		handler:          handler,
		thresholdMinutes: thresholdMinutes,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "overdue_order_job"),
	}
}

// Start begins the monitor, running every minute.
func (j *OverdueOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd, cmdErr := commands.NewNotifyOverdueOrdersCommand(time.Now(), j.thresholdMinutes)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "failed to build overdue monitor command", "error", cmdErr)
			return
		}

		notified, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "overdue order monitor failed", "error", handleErr)
			return
		}

		if notified > 0 {
			j.logger.WarnContext(ctx, "overdue orders detected", "count", notified)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order job started (running every minute)")
	return nil
}

// Stop stops the monitor.
func (j *OverdueOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order job stopped")
}
