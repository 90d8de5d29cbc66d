package ports

import (
	"context"

	"marketplace/internal/core/domain/model/account"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"
)

// Directory resolves stores and accounts. The order core never trusts a store
// owner or a profile supplied by the client; it always asks the directory.
type Directory interface {
	// GetStore returns *errs.StoreNotFoundError if the store does not exist.
	GetStore(ctx context.Context, id kernel.UUID) (*store.Store, error)

	// GetAccount returns *errs.ObjectNotFoundError if the account does not exist.
	GetAccount(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// FindStoreByOwner returns the store owned by ownerID, or
	// *errs.ObjectNotFoundError if the seller has none.
	FindStoreByOwner(ctx context.Context, ownerID kernel.UUID) (*store.Store, error)

	// StoresByID and AccountsByID batch-load projections for listings. Unknown
	// ids are simply absent from the result.
	StoresByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*store.Store, error)
	AccountsByID(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*account.Account, error)
}
