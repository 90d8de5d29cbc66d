// Package account models the directory's view of a user account: the contact
// address notifications go to and the delivery profile sellers need.
package account

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// DeliveryInfo is the part of a customer profile a seller sees.
type DeliveryInfo struct {
	Region   string
	Street   string
	Floor    string
	Doorbell string
	Phone    string
}

// Account is a marketplace user.
type Account struct {
	id       kernel.UUID
	username string
	email    string
	delivery DeliveryInfo
	guard    guard.ConstructorGuard
}

// NewAccount builds an account. Email may be empty; a notification addressed to
// such an account is reported as an undelivered warning.
func NewAccount(id kernel.UUID, username, email string, delivery DeliveryInfo) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Account{
		id:       id,
		username: username,
		email:    email,
		delivery: delivery,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

func (a *Account) ID() kernel.UUID {
	return a.id
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) Email() string {
	return a.email
}

func (a *Account) Delivery() DeliveryInfo {
	return a.delivery
}
