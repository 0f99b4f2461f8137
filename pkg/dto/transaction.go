package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCreate carries one ledger entry to be appended. Shares are
// positive for a buy, negative for a sell.
type TransactionCreate struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Symbol string
	Shares int64
	Price  decimal.Decimal
}

// TransactionRead is the repository's read model for a ledger entry.
type TransactionRead struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Symbol    string
	Shares    int64
	Price     decimal.Decimal
	CreatedAt time.Time
}
