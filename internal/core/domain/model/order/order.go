package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	ErrEstimatedDeliveryTimeIsRequired = errs.NewValueIsRequiredError("estimatedDeliveryTime")
)

// Order is a customer's purchase from a single store. It is the aggregate root for
// the confirm/deny lifecycle.
//
// Order follows these invariants:
//   - customer, store and items never change after creation
//   - totalPrice equals the sum of item subtotals at creation time and is never recomputed
//   - status leaves Pending at most once, to Confirmed or Denied
//   - estimatedDeliveryTime is set only by Confirm
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	storeID    kernel.UUID
	items      []Item
	totalPrice decimal.Decimal
	note       string

	status                Status
	estimatedDeliveryTime string

	createdAt time.Time
	decidedAt *time.Time

	isConstructed bool
}

// NewOrder creates a Pending order and computes its total from items.
//
// Example:
//
//	item, _ := order.NewItem("book-42", "Dune", 2, decimal.NewFromInt(10))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, storeID, []order.Item{item}, "", time.Now())
//	// o.TotalPrice() == 20
func NewOrder(
	id, customerID, storeID kernel.UUID,
	items []Item,
	note string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		note:          strings.TrimSpace(note),
		status:        Pending,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setIDs(id, customerID, storeID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	o.totalPrice = TotalOf(o.items)

	return o, nil
}

// RestoreParams carries the persisted state of an order.
type RestoreParams struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	StoreID               kernel.UUID
	Items                 []Item
	TotalPrice            decimal.Decimal
	Note                  string
	Status                Status
	EstimatedDeliveryTime string
	CreatedAt             time.Time
	DecidedAt             *time.Time
}

// RestoreOrder rebuilds an order from storage. The stored total is taken as is.
func RestoreOrder(p RestoreParams) (*Order, error) {
	o := &Order{
		note:                  p.Note,
		estimatedDeliveryTime: p.EstimatedDeliveryTime,
		createdAt:             p.CreatedAt.UTC(),
		isConstructed:         true,
	}

	var totalErr error
	if p.TotalPrice.IsNegative() {
		totalErr = errs.NewValueIsInvalidErrorWithCause(
			"total price is invalid", fmt.Errorf("%s is negative", p.TotalPrice))
	}

	if err := errors.Join(
		o.setIDs(p.ID, p.CustomerID, p.StoreID),
		o.setItems(p.Items),
		p.Status.Validate(),
		totalErr,
	); err != nil {
		return nil, err
	}

	o.totalPrice = p.TotalPrice
	o.status = p.Status
	if p.DecidedAt != nil {
		decided := p.DecidedAt.UTC()
		o.decidedAt = &decided
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// Note is the customer's free-text comment, possibly empty.
func (o *Order) Note() string {
	return o.note
}

func (o *Order) Status() Status {
	return o.status
}

// IsConfirmed reports whether the seller confirmed the order.
func (o *Order) IsConfirmed() bool {
	return o.status == Confirmed
}

// IsPending reports whether the order still awaits a decision.
func (o *Order) IsPending() bool {
	return o.status == Pending
}

func (o *Order) EstimatedDeliveryTime() string {
	return o.estimatedDeliveryTime
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DecidedAt is the time of the confirm/deny transition, nil while pending.
func (o *Order) DecidedAt() *time.Time {
	return o.decidedAt
}

// Confirm moves a pending order to Confirmed and records the delivery estimate.
//
// Returns:
//   - ErrEstimatedDeliveryTimeIsRequired if estimate is blank
//   - *errs.InvalidStateError if the order was already confirmed or denied
//
// The order is unchanged on error.
func (o *Order) Confirm(estimate string, at time.Time) error {
	estimate = strings.TrimSpace(estimate)
	if estimate == "" {
		return ErrEstimatedDeliveryTimeIsRequired
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.estimatedDeliveryTime = estimate
	o.setDecidedAt(at)
	return nil
}

// Deny moves a pending order to Denied. It returns *errs.InvalidStateError if the
// order was already decided, leaving it unchanged.
func (o *Order) Deny(at time.Time) error {
	newStatus, err := o.status.Deny()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.setDecidedAt(at)
	return nil
}

func (o *Order) setDecidedAt(at time.Time) {
	decided := at.UTC()
	o.decidedAt = &decided
}

func (o *Order) setIDs(id, customerID, storeID kernel.UUID) error {
	if err := errors.Join(id.Validate(), customerID.Validate(), storeID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.customerID = customerID
	o.storeID = storeID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	o.items = slices.Clone(items)
	return nil
}
