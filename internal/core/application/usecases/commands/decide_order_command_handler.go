package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// DecisionResult is the committed order. Warnings carry notification failures:
// the transition stands regardless.
type DecisionResult struct {
	Order    *order.Order
	Warnings []error
}

// decision is one seller transition on a pending order.
type decision struct {
	action   string
	label    string
	kind     notification.Kind
	apply    func(o *order.Order, at time.Time) error
	notifyAs func(o *order.Order, s *store.Store, customer *account.Account) notification.Notification
}

// decider runs the shared confirm/deny flow: load, authorize against the freshly
// loaded order and store, transition, compare-and-set, commit, notify.
type decider struct {
	uowFactory    OrderUoWFactory
	notifications Notifications
	metrics       Metrics
	logger        *slog.Logger
	policy        services.AccessPolicy
	now           func() time.Time
}

func (d decider) decide(ctx context.Context, a actor.Actor, orderID kernel.UUID, dec decision) (DecisionResult, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DecisionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	directory := uow.Directory()

	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return DecisionResult{}, err
	}

	s, err := directory.GetStore(ctx, o.StoreID())
	if err != nil && !errors.Is(err, errs.ErrStoreNotFound) {
		return DecisionResult{}, err
	}
	if err = d.policy.AuthorizeDecision(dec.action, a, o, s); err != nil {
		return DecisionResult{}, err
	}

	expected := o.Status()
	if err = dec.apply(o, d.now()); err != nil {
		return DecisionResult{}, err
	}

	if err = repo.UpdateDecision(ctx, o, expected); err != nil {
		return DecisionResult{}, err
	}

	customer, customerErr := directory.GetAccount(ctx, o.CustomerID())
	if customerErr != nil && !errors.Is(customerErr, errs.ErrObjectNotFound) {
		return DecisionResult{}, customerErr
	}

	if err = uow.Commit(ctx); err != nil {
		return DecisionResult{}, err
	}

	d.metrics.OrderDecided(dec.label)
	d.logger.Info("order decided",
		"orderId", o.ID().String(),
		"storeId", s.ID().String(),
		"decision", dec.label,
	)

	result := DecisionResult{Order: o}
	if customerErr != nil {
		warning := errs.NewUpstreamNotificationError("", customerErr)
		d.logger.Warn("customer account missing, notification skipped", "orderId", o.ID().String(), "error", warning)
		d.metrics.NotificationFailed(string(dec.kind))
		result.Warnings = append(result.Warnings, warning)
		return result, nil
	}

	if warning := d.notifications.Send(ctx, customer.Email(), dec.notifyAs(o, s, customer)); warning != nil {
		result.Warnings = append(result.Warnings, warning)
	}
	return result, nil
}

// ConfirmOrderCommandHandler lets the owning seller confirm a pending order.
//
// Returns:
//   - *errs.ObjectNotFoundError if the order does not exist
//   - *errs.ForbiddenError if the caller is not the seller owning the order's store
//   - *errs.InvalidStateError if the order was already confirmed or denied
//
// On success the customer is notified with delivery info and the estimate.
type ConfirmOrderCommandHandler struct {
	decider decider
}

func NewConfirmOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifications Notifications,
	metrics Metrics,
	logger *slog.Logger,
) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{decider: newDecider(uowFactory, notifications, metrics, logger, "confirm_order")}
}

func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (DecisionResult, error) {
	if err := cmd.Validate(); err != nil {
		return DecisionResult{}, err
	}

	return h.decider.decide(ctx, cmd.Actor(), cmd.OrderID(), decision{
		action: "confirm order",
		label:  "confirmed",
		kind:   notification.OrderConfirmed,
		apply: func(o *order.Order, at time.Time) error {
			return o.Confirm(cmd.EstimatedDeliveryTime(), at)
		},
		notifyAs: notification.NewOrderConfirmed,
	})
}

// DenyOrderCommandHandler lets the owning seller deny a pending order. The denial
// is persisted as an explicit Denied status before the customer is notified.
// Errors are the same as for ConfirmOrderCommandHandler.
type DenyOrderCommandHandler struct {
	decider decider
}

func NewDenyOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifications Notifications,
	metrics Metrics,
	logger *slog.Logger,
) DenyOrderCommandHandler {
	return DenyOrderCommandHandler{decider: newDecider(uowFactory, notifications, metrics, logger, "deny_order")}
}

func (h DenyOrderCommandHandler) Handle(ctx context.Context, cmd DenyOrderCommand) (DecisionResult, error) {
	if err := cmd.Validate(); err != nil {
		return DecisionResult{}, err
	}

	return h.decider.decide(ctx, cmd.Actor(), cmd.OrderID(), decision{
		action:   "deny order",
		label:    "denied",
		kind:     notification.OrderDeclined,
		apply:    (*order.Order).Deny,
		notifyAs: notification.NewOrderDeclined,
	})
}

func newDecider(
	uowFactory OrderUoWFactory,
	notifications Notifications,
	metrics Metrics,
	logger *slog.Logger,
	component string,
) decider {
	return decider{
		uowFactory:    uowFactory,
		notifications: notifications,
		metrics:       metrics,
		logger:        logger.With("component", component),
		policy:        services.NewAccessPolicy(),
		now:           time.Now,
	}
}
