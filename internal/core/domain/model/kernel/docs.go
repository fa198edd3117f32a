// Package kernel contains shared value objects used across every aggregate:
// the UUID identity wrapper and the human-referenceable order reference.
// Both are immutable; the zero value of each is invalid and must be created
// through the provided constructors.
package kernel
