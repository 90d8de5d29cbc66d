package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// CreatedOrder identifies one order created from a cart.
type CreatedOrder struct {
	OrderID   kernel.UUID
	StoreID   kernel.UUID
	StoreName string
	Total     decimal.Decimal
}

// SkippedStore is a store whose part of the cart could not be turned into an order.
type SkippedStore struct {
	StoreID kernel.UUID
	Err     error
}

// CreateOrdersResult lists exactly the orders that were created. A non-empty
// Skipped is still a success. Warnings carry notification failures.
type CreateOrdersResult struct {
	Created  []CreatedOrder
	Skipped  []SkippedStore
	Warnings []error
}

// CreateOrdersFromCartCommandHandler splits a cart per store and creates one pending
// order per store, each in its own transaction. Stores are processed concurrently,
// at most concurrency at a time; one store failing never aborts its siblings.
//
// Example:
//
//	handler := NewCreateOrdersFromCartCommandHandler(uowFactory, notifications, metrics, logger, 4)
//	result, err := handler.Handle(ctx, cmd)
//	for _, created := range result.Created {
//	    fmt.Println(created.OrderID, created.StoreName)
//	}
type CreateOrdersFromCartCommandHandler struct {
	uowFactory    OrderUoWFactory
	notifications Notifications
	metrics       Metrics
	logger        *slog.Logger
	concurrency   int

	policy   services.AccessPolicy
	splitter services.OrderSplitter
	now      func() time.Time
}

// NewCreateOrdersFromCartCommandHandler creates the checkout handler. A concurrency
// below 1 processes stores one at a time.
func NewCreateOrdersFromCartCommandHandler(
	uowFactory OrderUoWFactory,
	notifications Notifications,
	metrics Metrics,
	logger *slog.Logger,
	concurrency int,
) CreateOrdersFromCartCommandHandler {
	if concurrency < 1 {
		concurrency = 1
	}
	return CreateOrdersFromCartCommandHandler{
		uowFactory:    uowFactory,
		notifications: notifications,
		metrics:       metrics,
		logger:        logger.With("component", "create_orders"),
		concurrency:   concurrency,
		policy:        services.NewAccessPolicy(),
		splitter:      services.NewOrderSplitter(),
		now:           time.Now,
	}
}

type storeOutcome struct {
	created *CreatedOrder
	skipped *SkippedStore
	warning error
}

// Handle processes the checkout.
//
// Returns:
//   - *errs.ForbiddenError if the caller is not a customer
//   - *errs.ObjectNotFoundError if the customer account is unknown
//   - the first persistence error when no order at all could be created because of it
//
// Stores that are unknown or have no seller account are reported in Skipped.
func (h CreateOrdersFromCartCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrdersFromCartCommand,
) (CreateOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrdersResult{}, err
	}
	if err := h.policy.AuthorizeCheckout(cmd.Actor()); err != nil {
		return CreateOrdersResult{}, err
	}

	drafts, err := h.splitter.Split(cmd.Actor().ID(), cmd.Submission())
	if err != nil {
		return CreateOrdersResult{}, err
	}

	customer, err := h.uowFactory.Create().Directory().GetAccount(ctx, cmd.Actor().ID())
	if err != nil {
		return CreateOrdersResult{}, err
	}

	outcomes := make([]storeOutcome, len(drafts))
	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, draft := range drafts {
		i, draft := i, draft
		g.Go(func() error {
			outcomes[i] = h.createForStore(ctx, draft, customer)
			return nil
		})
	}
	_ = g.Wait()

	result := CreateOrdersResult{
		Created: make([]CreatedOrder, 0, len(drafts)),
		Skipped: make([]SkippedStore, 0),
	}
	var firstInternal error
	for _, o := range outcomes {
		switch {
		case o.created != nil:
			result.Created = append(result.Created, *o.created)
		case o.skipped != nil:
			result.Skipped = append(result.Skipped, *o.skipped)
			if firstInternal == nil && !isDirectoryMiss(o.skipped.Err) {
				firstInternal = o.skipped.Err
			}
		}
		if o.warning != nil {
			result.Warnings = append(result.Warnings, o.warning)
		}
	}

	if len(result.Created) == 0 && firstInternal != nil {
		return CreateOrdersResult{}, firstInternal
	}

	h.metrics.OrdersCreated(len(result.Created))
	h.logger.Info("orders created from cart",
		"customerId", cmd.Actor().ID().String(),
		"created", len(result.Created),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

func (h CreateOrdersFromCartCommandHandler) createForStore(
	ctx context.Context,
	draft services.Draft,
	customer *account.Account,
) storeOutcome {
	skip := func(err error) storeOutcome {
		h.logger.Warn("store skipped", "storeId", draft.StoreID.String(), "error", err)
		return storeOutcome{skipped: &SkippedStore{StoreID: draft.StoreID, Err: err}}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return skip(err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	directory := uow.Directory()
	s, err := directory.GetStore(ctx, draft.StoreID)
	if err != nil {
		return skip(err)
	}

	seller, err := directory.GetAccount(ctx, s.OwnerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return skip(errs.NewSellerNotFoundError(s.ID().String(), s.OwnerID().String()))
	}
	if err != nil {
		return skip(err)
	}

	o, err := draft.Build(kernel.NewUUID(), h.now())
	if err != nil {
		return skip(err)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return skip(err)
	}

	if err = uow.Commit(ctx); err != nil {
		return skip(err)
	}

	outcome := storeOutcome{created: &CreatedOrder{
		OrderID:   o.ID(),
		StoreID:   s.ID(),
		StoreName: s.Name(),
		Total:     o.TotalPrice(),
	}}
	outcome.warning = h.notifications.Send(ctx, seller.Email(), notification.NewOrderPlaced(o, s, customer))
	return outcome
}

func isDirectoryMiss(err error) bool {
	return errors.Is(err, errs.ErrStoreNotFound) || errors.Is(err, errs.ErrSellerNotFound)
}
