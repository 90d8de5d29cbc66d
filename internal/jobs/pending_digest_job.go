package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/notification"

	"github.com/robfig/cron/v3"
)

const DefaultDigestSchedule = "@every 1h"

type PendingOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetPendingOrdersQuery) ([]queries.AdminOrderView, error)
}

type DigestSender interface {
	Send(ctx context.Context, destination string, payload notification.Notification) error
}

// PendingDigestJob reports orders awaiting a seller decision. It queries as the
// system admin actor and sends nothing when no order is pending.
type PendingDigestJob struct {
	handler     PendingOrdersHandler
	sender      DigestSender
	admin       actor.Actor
	destination string
	schedule    string
	timeout     time.Duration

	cron   *cron.Cron
	logger *slog.Logger
	now    func() time.Time
}

func NewPendingDigestJob(
	handler PendingOrdersHandler,
	sender DigestSender,
	admin actor.Actor,
	destination string,
	schedule string,
	logger *slog.Logger,
) *PendingDigestJob {
	if schedule == "" {
		schedule = DefaultDigestSchedule
	}
	return &PendingDigestJob{
		handler:     handler,
		sender:      sender,
		admin:       admin,
		destination: destination,
		schedule:    schedule,
		timeout:     time.Minute,
		cron:        cron.New(),
		logger:      logger.With("component", "pending_digest_job"),
		now:         time.Now,
	}
}

func (j *PendingDigestJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending digest job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running digest to finish.
func (j *PendingDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Pending digest job stopped")
}

// Run performs one digest and reports how many pending orders it covered.
func (j *PendingDigestJob) Run(ctx context.Context) int {
	views, err := j.handler.Handle(ctx, queries.NewGetPendingOrdersQuery(j.admin))
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending digest query failed", "error", err)
		return 0
	}
	if len(views) == 0 {
		return 0
	}

	pending := make([]notification.PendingOrder, len(views))
	for i, v := range views {
		pending[i] = notification.PendingOrder{
			OrderID:    v.ID.String(),
			StoreName:  v.StoreName,
			TotalPrice: v.TotalPrice,
			CreatedAt:  v.CreatedAt,
		}
	}
	oldest := views[len(views)-1].CreatedAt
	j.logger.InfoContext(ctx, "Orders awaiting decision", "count", len(views), "oldest", oldest)

	if j.destination == "" {
		return len(views)
	}
	if err = j.sender.Send(ctx, j.destination, notification.NewPendingDigest(j.now(), pending)); err != nil {
		j.logger.ErrorContext(ctx, "Pending digest not delivered", "error", err)
	}
	return len(views)
}
