package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrdersFromCartCommandIsNotConstructed = errors.New(
	"CreateOrdersFromCartCommand must be created via NewCreateOrdersFromCartCommand constructor",
)

// CreateOrdersFromCartCommand is a customer's checkout of a multi-store cart.
// The cart is validated here, before any persistence.
//
// Example:
//
//	cmd, err := NewCreateOrdersFromCartCommand(customer, []cart.Line{
//	    {StoreID: storeA, ProductRef: "mug", Title: "Mug", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
//	    {StoreID: storeB, ProductRef: "tea", Title: "Tea", Quantity: 3, UnitPrice: decimal.NewFromInt(5)},
//	}, "ring twice")
//	if err != nil {
//	    return err // *errs.InvalidCartError
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrdersFromCartCommand struct { //nolint:recvcheck //using for validation
	actor      actor.Actor
	submission cart.Submission

	guard guard.ConstructorGuard
}

// NewCreateOrdersFromCartCommand rejects an empty cart or a cart with a
// non-positive quantity or a negative price with *errs.InvalidCartError.
func NewCreateOrdersFromCartCommand(a actor.Actor, lines []cart.Line, note string) (CreateOrdersFromCartCommand, error) {
	submission, err := cart.NewSubmission(lines, note)
	if err != nil {
		return CreateOrdersFromCartCommand{}, err
	}

	return CreateOrdersFromCartCommand{
		actor:      a,
		submission: submission,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrdersFromCartCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrdersFromCartCommandIsNotConstructed)
}

// Actor is the authenticated caller. Authorization happens in the handler.
func (c CreateOrdersFromCartCommand) Actor() actor.Actor {
	return c.actor
}

func (c CreateOrdersFromCartCommand) Submission() cart.Submission {
	return c.submission
}
