package order

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Processing ──> Done ──> Served
//
// Pending and Processing orders are "active": they hold chef capacity and,
// for dine-in, a table reservation. Done frees the chef, Served frees the
// table.
type Status int

const (
	// Unknown is the invalid zero value; it helps catch uninitialized
	// Status fields.
	Unknown Status = iota

	// Pending is the initial state: the order is placed but cooking has
	// not started.
	Pending

	// Processing means the kitchen is working on the order. Entering this
	// state records the processing start time exactly once.
	Processing

	// Done means cooking has finished; the assigned chef's capacity is
	// released on entry.
	Done

	// Served is the final state; the table reservation (if any) is
	// released on entry.
	Served
)

var (
	// ErrInvalidTransition is returned for any status change outside the
	// transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyTransitioned signals that a concurrent writer performed
	// the transition first. Callers racing the completion sweep treat it
	// as already handled, not as a failure.
	ErrAlreadyTransitioned = errors.New("order status already changed by another writer")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Done:       "done",
		Served:     "served",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Done:       "done",
		Served:     "served",
	}
}

// ParseStatus converts the wire/persistence form ("pending", "processing",
// "done", "served") into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and any value outside the defined set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire form of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status counts against chef load
// (pending or processing).
func (s Status) IsActive() bool {
	return s == Pending || s == Processing
}

// StartProcessing transitions Pending -> Processing.
func (s Status) StartProcessing() (Status, error) {
	if s != Pending {
		return Unknown, transitionError(s, Processing)
	}
	return Processing, nil
}

// Complete transitions Processing -> Done. This is the only path to Done,
// shared by manual status changes and the completion sweep.
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return Unknown, transitionError(s, Done)
	}
	return Done, nil
}

// Serve transitions Done -> Served, the final state.
func (s Status) Serve() (Status, error) {
	if s != Done {
		return Unknown, transitionError(s, Served)
	}
	return Served, nil
}

// TransitionTo applies the transition table for an arbitrary target status.
// Used by the status-change handler which receives the target from the API.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Processing:
		return s.StartProcessing()
	case Done:
		return s.Complete()
	case Served:
		return s.Serve()
	default:
		return Unknown, transitionError(s, target)
	}
}

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
