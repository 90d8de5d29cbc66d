package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
	ErrDenyOrderCommandIsNotConstructed = errors.New(
		"DenyOrderCommand must be created via NewDenyOrderCommand constructor",
	)
)

// ConfirmOrderCommand is a seller accepting a pending order with a delivery estimate.
//
// Example:
//
//	cmd, err := NewConfirmOrderCommand(seller, orderID, "2-3 business days")
//	result, err := handler.Handle(ctx, cmd)
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	actor    actor.Actor
	orderID  kernel.UUID
	estimate string

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand rejects a zero order id or a blank estimate.
func NewConfirmOrderCommand(a actor.Actor, orderID kernel.UUID, estimate string) (ConfirmOrderCommand, error) {
	cmd := ConfirmOrderCommand{actor: a, guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEstimate(estimate),
	); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return cmd, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EstimatedDeliveryTime is the free-text estimate shown to the customer.
func (c ConfirmOrderCommand) EstimatedDeliveryTime() string {
	return c.estimate
}

func (c *ConfirmOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmOrderCommand) setEstimate(estimate string) error {
	estimate = strings.TrimSpace(estimate)
	if estimate == "" {
		return order.ErrEstimatedDeliveryTimeIsRequired
	}
	c.estimate = estimate
	return nil
}

// DenyOrderCommand is a seller declining a pending order.
type DenyOrderCommand struct { //nolint:recvcheck //using for validation
	actor   actor.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDenyOrderCommand(a actor.Actor, orderID kernel.UUID) (DenyOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DenyOrderCommand{}, err
	}
	return DenyOrderCommand{actor: a, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DenyOrderCommand) Validate() error {
	return c.guard.Validate(ErrDenyOrderCommandIsNotConstructed)
}

func (c DenyOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c DenyOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
