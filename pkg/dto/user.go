package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserCreate carries the fields needed to persist a new user.
type UserCreate struct {
	ID             uuid.UUID
	Username       string
	HashedPassword string
	Cash           decimal.Decimal
}

// UserRead is the repository's read model for a user.
type UserRead struct {
	ID             uuid.UUID
	Username       string
	HashedPassword string
	Cash           decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
