// Package trading holds the portfolio domain types: quotes, ledger
// transactions, and priced positions. All money values are decimals;
// share counts are signed integers derived from the append-only ledger.
package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/shopspring/decimal"
)

// Quote is the current price and display name for a symbol as reported
// by the external quote provider.
type Quote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Transaction is one immutable ledger entry. Shares are positive for a
// buy and negative for a sell; Price is the execution price and is never
// revised afterwards.
type Transaction struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Symbol    string          `json:"symbol"`
	Shares    int64           `json:"shares"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created"`
}

// Holding is a user's net share count for one symbol.
type Holding struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}

// Position is a holding priced at the current quote.
type Position struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Shares   int64           `json:"shares"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Portfolio is the full priced view of a user's account: every non-zero
// position plus uninvested cash.
type Portfolio struct {
	Cash      decimal.Decimal `json:"cash"`
	Positions []Position      `json:"positions"`
	Total     decimal.Decimal `json:"total"`
}

// NewPosition prices a holding at the given quote.
func NewPosition(h Holding, q *Quote) Position {
	return Position{
		Symbol:   h.Symbol,
		Name:     q.Name,
		Shares:   h.Shares,
		Price:    q.Price,
		Subtotal: q.Price.Mul(decimal.NewFromInt(h.Shares)),
	}
}

// NewPortfolio sums positions with cash into a total account value.
func NewPortfolio(cash decimal.Decimal, positions []Position) *Portfolio {
	total := cash
	for _, p := range positions {
		total = total.Add(p.Subtotal)
	}
	return &Portfolio{Cash: cash, Positions: positions, Total: total}
}

// ValidateShares checks that a requested share count is a positive
// non-zero integer.
func ValidateShares(shares int64) error {
	if shares <= 0 {
		return domain.ErrInvalidShares
	}
	return nil
}

// Cost is price times shares.
func Cost(price decimal.Decimal, shares int64) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(shares))
}
