package notifier

import (
	"context"
	"log/slog"

	"kitchen/internal/core/ports"
)

// LogNotifier writes notifications to the structured log. Used when no
// broker URL is configured, so the signals stay visible in development.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-based notification sink.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs one notification.
func (n *LogNotifier) Notify(ctx context.Context, kind ports.NotificationKind, payload any) error {
	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", string(kind)),
		slog.Any("payload", payload),
	)
	return nil
}
