package ports

import "context"

// NotificationKind classifies the signals sent to the alerting collaborator.
type NotificationKind string

const (
	// NotificationUnassignedOrder is emitted when an order is created
	// with no chef available to take it.
	NotificationUnassignedOrder NotificationKind = "UNASSIGNED_ORDER"

	// NotificationOverdueOrder is emitted when an order has been
	// processing past the configured overdue threshold.
	NotificationOverdueOrder NotificationKind = "OVERDUE_ORDER"
)

// Notifier is the fire-and-forget notification sink. A failure to notify is
// logged by the caller and never fails the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, kind NotificationKind, payload any) error
}
