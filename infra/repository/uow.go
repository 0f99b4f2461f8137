package repository

import (
	"context"

	infraledger "github.com/mfadel/papertrade/infra/repository/ledger"
	infrauser "github.com/mfadel/papertrade/infra/repository/user"
	"github.com/mfadel/papertrade/pkg/repository"
	"github.com/mfadel/papertrade/pkg/repository/ledger"
	"github.com/mfadel/papertrade/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do are bound to the
// transaction session, so the cash update and the ledger append of a
// buy/sell commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW
// bound to that transaction.
func (u *UoW) Do(
	ctx context.Context,
	fn func(uow repository.UnitOfWork) error,
) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// UserRepository returns a user repository on the current session.
func (u *UoW) UserRepository() (user.Repository, error) {
	return infrauser.New(u.session()), nil
}

// LedgerRepository returns a ledger repository on the current session.
func (u *UoW) LedgerRepository() (ledger.Repository, error) {
	return infraledger.New(u.session()), nil
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
