package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetAllOrdersQuery is the admin's unrestricted listing of every order.
//
// Example:
//
//	query := NewGetAllOrdersQuery(admin)
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.StoreName, o.Status)
//	}
type GetAllOrdersQuery struct {
	actor actor.Actor
	guard guard.ConstructorGuard
}

func NewGetAllOrdersQuery(a actor.Actor) GetAllOrdersQuery {
	return GetAllOrdersQuery{actor: a, guard: guard.NewConstructorGuard()}
}

func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

func (q GetAllOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// GetPendingOrdersQuery lists orders still awaiting a seller decision.
type GetPendingOrdersQuery struct {
	actor actor.Actor
	guard guard.ConstructorGuard
}

func NewGetPendingOrdersQuery(a actor.Actor) GetPendingOrdersQuery {
	return GetPendingOrdersQuery{actor: a, guard: guard.NewConstructorGuard()}
}

func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

func (q GetPendingOrdersQuery) Actor() actor.Actor {
	return q.actor
}

// AdminOrderView is one row of an admin listing. StoreName and CustomerUsername
// are empty when the directory no longer knows the store or account.
type AdminOrderView struct {
	ID               kernel.UUID
	StoreID          kernel.UUID
	StoreName        string
	CustomerID       kernel.UUID
	CustomerUsername string
	TotalPrice       decimal.Decimal
	Status           order.Status
	CreatedAt        time.Time
}
