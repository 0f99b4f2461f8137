package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/shopspring/decimal"
)

// Repository defines persistence operations for users.
type Repository interface {
	// Create persists a new user.
	Create(ctx context.Context, create *dto.UserCreate) error
	// Get returns a user by id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	// GetForUpdate returns a user by id with its row locked for the
	// duration of the enclosing transaction. Callers must be inside a
	// unit of work.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)
	// GetByUsername returns a user by username, or nil when absent.
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)
	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	// UpdateCash sets the user's cash balance.
	UpdateCash(ctx context.Context, id uuid.UUID, cash decimal.Decimal) error
	// UpdatePassword replaces the user's password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
}
