// Package store models a seller's storefront as known to the directory.
package store

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")
	ErrStoreNameIsRequired   = errs.NewValueIsRequiredError("store name")
)

// Store is a storefront owned by exactly one seller account.
type Store struct {
	id      kernel.UUID
	name    string
	ownerID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewStore(id kernel.UUID, name string, ownerID kernel.UUID) (*Store, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrStoreNameIsRequired
	}

	return &Store{id: id, name: name, ownerID: ownerID, guard: guard.NewConstructorGuard()}, nil
}

func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name is the display name shown to customers.
func (s *Store) Name() string {
	return s.name
}

// OwnerID is the seller account that owns the store.
func (s *Store) OwnerID() kernel.UUID {
	return s.ownerID
}

// IsOwnedBy reports whether accountID owns the store.
func (s *Store) IsOwnedBy(accountID kernel.UUID) bool {
	return s.ownerID.IsEqual(accountID)
}
