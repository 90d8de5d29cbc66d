package ports

import (
	"context"

	"marketplace/internal/core/domain/model/notification"
)

// Notifier hands a notification to the sink that renders and delivers it.
// Retries are the sink's concern; a returned error is only logged by the core.
type Notifier interface {
	Send(ctx context.Context, destination string, n notification.Notification) error
}
