package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery or NewListSellerOrdersQuery constructor",
)

// ListOrdersQuery lists the caller's orders within an optional inclusive date range.
// from and to are passed as received; the handler applies the tolerant parsing policy.
//
// Example:
//
//	query := NewListOrdersQuery(customer, "", "2024-01-10")
//	response, err := handler.Handle(ctx, query)
//	for _, o := range response.Orders {
//	    fmt.Println(o.ID, o.StoreName, o.TotalPrice)
//	}
type ListOrdersQuery struct {
	actor      actor.Actor
	from       string
	to         string
	sellerOnly bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery lists a customer's own orders or a seller's store orders,
// depending on the caller's role.
func NewListOrdersQuery(a actor.Actor, from, to string) ListOrdersQuery {
	return ListOrdersQuery{actor: a, from: from, to: to, guard: guard.NewConstructorGuard()}
}

// NewListSellerOrdersQuery is NewListOrdersQuery restricted to sellers.
func NewListSellerOrdersQuery(a actor.Actor, from, to string) ListOrdersQuery {
	q := NewListOrdersQuery(a, from, to)
	q.sellerOnly = true
	return q
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() actor.Actor {
	return q.actor
}

func (q ListOrdersQuery) From() string {
	return q.from
}

func (q ListOrdersQuery) To() string {
	return q.to
}

// CustomerProfile is what a seller sees of the customer behind an order.
type CustomerProfile struct {
	Username string
	Region   string
	Street   string
	Floor    string
	Doorbell string
	Phone    string
}

// ListedOrder is one row of a listing. StoreName is filled for the customer view,
// Customer for the seller view, never both.
type ListedOrder struct {
	ID                    kernel.UUID
	StoreID               kernel.UUID
	CustomerID            kernel.UUID
	Items                 []order.Item
	TotalPrice            decimal.Decimal
	Note                  string
	Status                order.Status
	EstimatedDeliveryTime string
	CreatedAt             time.Time
	DecidedAt             *time.Time

	StoreName string
	Customer  *CustomerProfile
}

// ListOrdersQueryResponse holds the orders newest first.
type ListOrdersQueryResponse struct {
	View   services.View
	Orders []ListedOrder
}
