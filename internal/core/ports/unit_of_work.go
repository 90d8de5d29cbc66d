package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per operation. Checkout asks for one
// per store so that stores commit independently.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of an order lifecycle operation.
//
// Begin, Commit and Rollback are called by the command handler. Rollback after
// Commit is a no-op error and is safe to defer. The order repository and the
// directory share the transaction, so a decision and the store ownership check
// it was based on are read and written consistently.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	Directory() Directory
}
