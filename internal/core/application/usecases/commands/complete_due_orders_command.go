package commands

import (
	"errors"
	"time"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrCompleteDueOrdersCommandIsNotConstructed = errors.New(
	"CompleteDueOrdersCommand must be created via NewCompleteDueOrdersCommand constructor",
)

// CompleteDueOrdersCommand represents one run of the completion sweep.
// The sweep time is part of the command, so a run observes a single
// consistent "now" across every order it scans.
type CompleteDueOrdersCommand struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewCompleteDueOrdersCommand creates a command for one sweep run.
func NewCompleteDueOrdersCommand(now time.Time) (CompleteDueOrdersCommand, error) {
	if now.IsZero() {
		return CompleteDueOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return CompleteDueOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDueOrdersCommandIsNotConstructed)
}

// Now returns the sweep timestamp.
func (c CompleteDueOrdersCommand) Now() time.Time {
	return c.now
}
