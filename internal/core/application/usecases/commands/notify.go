package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var errNoDestination = errors.New("recipient has no email address")

// Notifications sends lifecycle notifications after the state change has been
// committed. The caller's cancellation does not abort a send; the timeout does.
type Notifications struct {
	notifier ports.Notifier
	timeout  time.Duration
	logger   *slog.Logger
	metrics  Metrics
}

func NewNotifications(notifier ports.Notifier, timeout time.Duration, logger *slog.Logger, metrics Metrics) Notifications {
	return Notifications{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger.With("component", "notifications"),
		metrics:  metrics,
	}
}

// Send returns *errs.UpstreamNotificationError on failure; it is a warning for the
// caller, never a reason to undo the committed transition.
func (n Notifications) Send(ctx context.Context, destination string, payload notification.Notification) error {
	if destination == "" {
		return n.fail(payload, errs.NewUpstreamNotificationError(destination, errNoDestination))
	}

	sendCtx := context.WithoutCancel(ctx)
	if n.timeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(sendCtx, n.timeout)
		defer cancel()
	}

	if err := n.notifier.Send(sendCtx, destination, payload); err != nil {
		return n.fail(payload, errs.NewUpstreamNotificationError(destination, err))
	}
	return nil
}

func (n Notifications) fail(payload notification.Notification, err error) error {
	n.logger.Warn("notification not delivered",
		"kind", string(payload.Kind),
		"orderId", payload.OrderID,
		"error", err,
	)
	n.metrics.NotificationFailed(string(payload.Kind))
	return err
}
