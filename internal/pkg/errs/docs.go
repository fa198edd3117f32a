// Package errs provides standardized error types for the kitchen service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Domain-specific sentinels (insufficient stock, reserved table, invalid
// status transition) live next to the aggregates that raise them; this
// package only covers the generic kinds shared by every layer.
package errs
