package jobs

import (
	"fmt"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs: the completion sweep and the
// overdue monitor.
type JobManager struct {
	orderCompletionJob *OrderCompletionJob
	overdueOrderJob    *OverdueOrderJob
}

// NewJobManager creates a job manager with both jobs wired to their
// handlers.
func NewJobManager(
	completeDueOrdersHandler commands.CompleteDueOrdersCommandHandler,
	notifyOverdueOrdersHandler commands.NotifyOverdueOrdersCommandHandler,
	overdueThresholdMinutes int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCompletionJob: NewOrderCompletionJob(completeDueOrdersHandler, logger),
		overdueOrderJob:    NewOverdueOrderJob(notifyOverdueOrdersHandler, overdueThresholdMinutes, logger),
	}
}

// StartAll starts every scheduled job. If one fails to start, jobs already
// running are stopped before the error returns.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	if err := jm.overdueOrderJob.Start(); err != nil {
		jm.orderCompletionJob.Stop()
		return fmt.Errorf("failed to start overdue order job: %w", err)
	}

	return nil
}

// StopAll stops every scheduled job.
func (jm *JobManager) StopAll() {
	jm.orderCompletionJob.Stop()
	jm.overdueOrderJob.Stop()
}
