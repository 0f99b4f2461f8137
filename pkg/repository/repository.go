// Package repository defines the persistence interfaces the services
// depend on. Implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/mfadel/papertrade/pkg/repository/ledger"
	"github.com/mfadel/papertrade/pkg/repository/user"
)

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the transaction's DB
// session, so every write inside the callback commits or rolls back
// together.
type UnitOfWork interface {
	// Do runs fn inside a transaction, passing a UnitOfWork bound to
	// that transaction.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error
	// UserRepository returns the user repository bound to the current
	// session.
	UserRepository() (user.Repository, error)
	// LedgerRepository returns the ledger repository bound to the
	// current session.
	LedgerRepository() (ledger.Repository, error)
}
