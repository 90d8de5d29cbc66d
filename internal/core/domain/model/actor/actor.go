// Package actor models the authenticated caller of an order operation.
//
// Identity and role are issued by the authentication collaborator and trusted as
// verified. Roles form a closed set; anything else parses to Unknown, which no
// authorization rule accepts.
package actor

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the closed set of marketplace roles.
type Role int

const (
	Unknown Role = iota
	Customer
	Seller
	Admin
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case Seller:
		return "seller"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// ParseRole maps a role claim onto the closed set, ignoring case and surrounding
// whitespace. Unrecognised claims yield Unknown.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "customer":
		return Customer
	case "seller":
		return Seller
	case "admin":
		return Admin
	default:
		return Unknown
	}
}

// Actor is an authenticated account acting in a role.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate fails for the zero Actor, which stands for an unauthenticated caller.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Is reports whether a is authenticated as role.
func (a Actor) Is(role Role) bool {
	return a.Validate() == nil && a.role == role
}
