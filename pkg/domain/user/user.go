package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/utils"
	"github.com/shopspring/decimal"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// repository.
	ErrUserNotFound = errors.New("user not found")
)

// User represents a registered account holder.
type User struct {
	ID             uuid.UUID       `json:"id"`
	Username       string          `json:"username"`
	HashedPassword string          `json:"-"`
	Cash           decimal.Decimal `json:"cash"`
	CreatedAt      time.Time       `json:"created"`
	UpdatedAt      time.Time       `json:"updated"`
}

// New creates a User with a hashed password and the given starting cash.
// The plaintext password is never stored on the entity.
func New(username, password string, startingCash decimal.Decimal) (*User, error) {
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}
	if password == "" {
		return nil, errors.New("password cannot be empty")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashed,
		Cash:           startingCash,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
