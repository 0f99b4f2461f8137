// Package mocks provides hand-written testify mocks for the repository
// and provider interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/repository"
	"github.com/mfadel/papertrade/pkg/repository/ledger"
	"github.com/mfadel/papertrade/pkg/repository/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork mocks repository.UnitOfWork. Do runs its callback
// against the mock itself, so repository expectations apply inside the
// "transaction".
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(
	ctx context.Context,
	fn func(uow repository.UnitOfWork) error,
) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func (m *MockUnitOfWork) UserRepository() (user.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(user.Repository)
	return repo, args.Error(1)
}

func (m *MockUnitOfWork) LedgerRepository() (ledger.Repository, error) {
	args := m.Called()
	repo, _ := args.Get(0).(ledger.Repository)
	return repo, args.Error(1)
}

// MockUserRepository mocks user.Repository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockUserRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetForUpdate(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(
	ctx context.Context,
	username string,
) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateCash(
	ctx context.Context,
	id uuid.UUID,
	cash decimal.Decimal,
) error {
	args := m.Called(ctx, id, cash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(
	ctx context.Context,
	id uuid.UUID,
	hashedPassword string,
) error {
	args := m.Called(ctx, id, hashedPassword)
	return args.Error(0)
}

// MockLedgerRepository mocks ledger.Repository.
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Record(
	ctx context.Context,
	create *dto.TransactionCreate,
) error {
	args := m.Called(ctx, create)
	return args.Error(0)
}

func (m *MockLedgerRepository) Holdings(
	ctx context.Context,
	userID uuid.UUID,
) ([]trading.Holding, error) {
	args := m.Called(ctx, userID)
	h, _ := args.Get(0).([]trading.Holding)
	return h, args.Error(1)
}

func (m *MockLedgerRepository) HoldingForSymbol(
	ctx context.Context,
	userID uuid.UUID,
	symbol string,
) (int64, error) {
	args := m.Called(ctx, userID, symbol)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerRepository) History(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, userID)
	txs, _ := args.Get(0).([]*dto.TransactionRead)
	return txs, args.Error(1)
}

// MockQuoteProvider mocks provider.QuoteProvider.
type MockQuoteProvider struct {
	mock.Mock
}

func (m *MockQuoteProvider) Lookup(
	ctx context.Context,
	symbol string,
) (*trading.Quote, error) {
	args := m.Called(ctx, symbol)
	q, _ := args.Get(0).(*trading.Quote)
	return q, args.Error(1)
}
