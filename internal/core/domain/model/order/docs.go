// Package order contains the Order aggregate and its state machine.
//
// An order is created from menu line items whose price and preparation time
// are snapshotted at order time; the total price (sum) and total preparation
// time (maximum across items, since the kitchen prepares an order's items in
// parallel) are computed once at creation and never recomputed from live menu
// data.
//
// The lifecycle is pending -> processing -> done -> served. Transitions are
// validated on every write; anything outside the table fails with
// ErrInvalidTransition. Deletion is not a status: it is an operation of the
// lifecycle command handlers that reverses the order's resource holds.
package order
