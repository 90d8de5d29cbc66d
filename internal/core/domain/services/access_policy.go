package services

import (
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/store"
	"marketplace/internal/pkg/errs"
)

// View selects the role-dependent projection of a listing.
type View int

const (
	// CustomerView shows store display names.
	CustomerView View = iota + 1
	// SellerView shows the customer's delivery-relevant profile.
	SellerView
)

// Scope restricts a listing to the orders the actor may see.
// Exactly one of CustomerID and StoreID is set.
type Scope struct {
	View       View
	CustomerID *kernel.UUID
	StoreID    *kernel.UUID
}

// AccessPolicy is the single authorization decision point. Every method takes a
// freshly loaded actor and, where relevant, freshly loaded order and store; it
// never trusts a store reference supplied by the client.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// AuthorizeCheckout allows only customers to submit a cart.
func (AccessPolicy) AuthorizeCheckout(a actor.Actor) error {
	if err := authenticated(a, "create orders"); err != nil {
		return err
	}
	if !a.Is(actor.Customer) {
		return errs.NewForbiddenError("create orders", "role "+a.Role().String()+" cannot check out")
	}
	return nil
}

// AuthorizeRead checks that a may read o. s must be the store o belongs to.
func (AccessPolicy) AuthorizeRead(a actor.Actor, o *order.Order, s *store.Store) error {
	const action = "read order"
	if err := authenticated(a, action); err != nil {
		return err
	}

	switch a.Role() {
	case actor.Customer:
		if !o.CustomerID().IsEqual(a.ID()) {
			return errs.NewForbiddenError(action, "order belongs to another customer")
		}
		return nil
	case actor.Seller:
		return ownsOrderStore(action, a, o, s)
	case actor.Admin:
		return nil
	default:
		return errs.NewForbiddenError(action, "unknown role")
	}
}

// AuthorizeDecision checks that a may confirm or deny o. Only the seller owning
// the order's store qualifies; admins have no mutation capability.
func (AccessPolicy) AuthorizeDecision(action string, a actor.Actor, o *order.Order, s *store.Store) error {
	if err := authenticated(a, action); err != nil {
		return err
	}
	if !a.Is(actor.Seller) {
		return errs.NewForbiddenError(action, "role "+a.Role().String()+" cannot decide orders")
	}
	return ownsOrderStore(action, a, o, s)
}

// AuthorizeAdminRead allows unrestricted listings to admins only.
func (AccessPolicy) AuthorizeAdminRead(a actor.Actor) error {
	const action = "list all orders"
	if err := authenticated(a, action); err != nil {
		return err
	}
	if !a.Is(actor.Admin) {
		return errs.NewForbiddenError(action, "role "+a.Role().String()+" is not admin")
	}
	return nil
}

// ListingScope derives the listing restriction for a. owned is the store the
// directory resolved for a seller and is ignored for other roles.
func (AccessPolicy) ListingScope(a actor.Actor, owned *store.Store) (Scope, error) {
	const action = "list orders"
	if err := authenticated(a, action); err != nil {
		return Scope{}, err
	}

	switch a.Role() {
	case actor.Customer:
		id := a.ID()
		return Scope{View: CustomerView, CustomerID: &id}, nil
	case actor.Seller:
		if owned.Validate() != nil || !owned.IsOwnedBy(a.ID()) {
			return Scope{}, errs.NewForbiddenError(action, "seller does not own the store")
		}
		id := owned.ID()
		return Scope{View: SellerView, StoreID: &id}, nil
	default:
		return Scope{}, errs.NewForbiddenError(action, "role "+a.Role().String()+" has no personal listing")
	}
}

func authenticated(a actor.Actor, action string) error {
	if a.Validate() != nil {
		return errs.NewForbiddenError(action, "caller is not authenticated")
	}
	return nil
}

func ownsOrderStore(action string, a actor.Actor, o *order.Order, s *store.Store) error {
	if s.Validate() != nil || !s.ID().IsEqual(o.StoreID()) {
		return errs.NewForbiddenError(action, "order store could not be resolved")
	}
	if !s.IsOwnedBy(a.ID()) {
		return errs.NewForbiddenError(action, "store is owned by another seller")
	}
	return nil
}
