package commands

import (
	"context"
	"errors"
	"fmt"
)

// ErrAllocationRollback signals that a failed multi-step allocation could
// not be unwound: partial state may remain and must be escalated, never
// silently swallowed.
var ErrAllocationRollback = errors.New("allocation rollback failed")

// unwind rolls the transaction back after cause interrupted a multi-step
// allocation. On success the original cause propagates unchanged; when the
// rollback itself fails, both errors are escalated under
// ErrAllocationRollback so the caller can tell "nothing committed" apart
// from "partial state possible".
func unwind(ctx context.Context, uow TxManager, cause error) error {
	if rbErr := uow.Rollback(ctx); rbErr != nil {
		return fmt.Errorf("%w: %s (cause: %w)", ErrAllocationRollback, rbErr, cause)
	}
	return cause
}
