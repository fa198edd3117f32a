package commands

import (
	"errors"
	"time"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrNotifyOverdueOrdersCommandIsNotConstructed = errors.New(
	"NotifyOverdueOrdersCommand must be created via NewNotifyOverdueOrdersCommand constructor",
)

// NotifyOverdueOrdersCommand represents one run of the overdue monitor: find
// orders that have been processing at least threshold minutes and raise an
// alert for each.
type NotifyOverdueOrdersCommand struct {
	now              time.Time
	thresholdMinutes int

	guard guard.ConstructorGuard
}

// NewNotifyOverdueOrdersCommand creates a command for one monitor run.
func NewNotifyOverdueOrdersCommand(now time.Time, thresholdMinutes int) (NotifyOverdueOrdersCommand, error) {
	if now.IsZero() {
		return NotifyOverdueOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}
	if thresholdMinutes < 1 {
		return NotifyOverdueOrdersCommand{}, errs.NewValueIsInvalidError("thresholdMinutes")
	}

	return NotifyOverdueOrdersCommand{
		now:              now,
		thresholdMinutes: thresholdMinutes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c NotifyOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrNotifyOverdueOrdersCommandIsNotConstructed)
}

// Now returns the monitor run timestamp.
func (c NotifyOverdueOrdersCommand) Now() time.Time {
	return c.now
}

// ThresholdMinutes returns how long an order may process before it is
// considered overdue.
func (c NotifyOverdueOrdersCommand) ThresholdMinutes() int {
	return c.thresholdMinutes
}
