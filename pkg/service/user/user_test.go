package user_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/internal/fixtures/mocks"
	"github.com/mfadel/papertrade/pkg/domain"
	domainuser "github.com/mfadel/papertrade/pkg/domain/user"
	"github.com/mfadel/papertrade/pkg/dto"
	usersvc "github.com/mfadel/papertrade/pkg/service/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var startingCash = decimal.RequireFromString("10000.00")

func newUserServiceWithMocks(t *testing.T) (*usersvc.Service, *mocks.MockUserRepository) {
	t.Helper()
	uow := &mocks.MockUnitOfWork{}
	users := &mocks.MockUserRepository{}
	uow.On("UserRepository").Return(users, nil).Maybe()
	uow.On("Do", mock.Anything, mock.Anything).Return(nil).Maybe()
	return usersvc.New(uow, startingCash, slog.Default()), users
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	users.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	users.On("Create", mock.Anything,
		mock.MatchedBy(func(create *dto.UserCreate) bool {
			return create.Username == "alice" &&
				create.Cash.Equal(startingCash) &&
				create.HashedPassword != "" &&
				create.HashedPassword != "pw1234"
		})).Return(nil)

	u, err := svc.Register(context.Background(), "alice", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.True(t, u.Cash.Equal(startingCash))
	users.AssertExpectations(t)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	users.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	_, err := svc.Register(context.Background(), "alice", "pw1234")
	require.ErrorIs(t, err, domain.ErrDuplicateUsername)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_EmptyFields(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)

	_, err := svc.Register(context.Background(), "", "pw1234")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), "alice", "")
	require.ErrorIs(t, err, domain.ErrValidation)

	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_RepoError(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	users.On("ExistsByUsername", mock.Anything, "bob").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).
		Return(errors.New("db error"))

	_, err := svc.Register(context.Background(), "bob", "pw1234")
	require.Error(t, err)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	id := uuid.New()
	users.On("Get", mock.Anything, id).Return((*dto.UserRead)(nil), nil)

	_, err := svc.Get(context.Background(), id)
	require.ErrorIs(t, err, domainuser.ErrUserNotFound)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	users.On("GetByUsername", mock.Anything, "nobody").
		Return((*dto.UserRead)(nil), nil)

	err := svc.ResetPassword(context.Background(), "nobody", "pw1234")
	require.ErrorIs(t, err, domainuser.ErrUserNotFound)
}

func TestResetPassword_Success(t *testing.T) {
	t.Parallel()
	svc, users := newUserServiceWithMocks(t)
	alice := &dto.UserRead{ID: uuid.New(), Username: "alice"}
	users.On("GetByUsername", mock.Anything, "alice").Return(alice, nil)
	users.On("UpdatePassword", mock.Anything, alice.ID,
		mock.MatchedBy(func(hash string) bool {
			return hash != "" && hash != "newpw"
		})).Return(nil)

	err := svc.ResetPassword(context.Background(), "alice", "newpw")
	require.NoError(t, err)
	users.AssertExpectations(t)
}
