package notification

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/notification"
)

// LogSink writes notifications to the log instead of publishing them. It is used
// when no Kafka brokers are configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger.With("component", "log_sink")}
}

func (s *LogSink) Send(_ context.Context, destination string, n notification.Notification) error {
	s.logger.Info("notification",
		"to", destination,
		"kind", string(n.Kind),
		"orderId", n.OrderID,
		"storeName", n.StoreName,
		"totalPrice", n.TotalPrice.String(),
		"items", len(n.Items),
		"pendingOrders", len(n.PendingOrders),
	)
	return nil
}
