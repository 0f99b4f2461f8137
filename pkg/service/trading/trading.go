// Package trading implements the buy/sell flows, quote lookups, and the
// priced portfolio view.
package trading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	domainuser "github.com/mfadel/papertrade/pkg/domain/user"
	"github.com/mfadel/papertrade/pkg/dto"
	"github.com/mfadel/papertrade/pkg/provider"
	"github.com/mfadel/papertrade/pkg/repository"
)

// Service orchestrates quotes, the ledger, and cash balances.
type Service struct {
	uow    repository.UnitOfWork
	quotes provider.QuoteProvider
	logger *slog.Logger
}

// New creates a trading service.
func New(
	uow repository.UnitOfWork,
	quotes provider.QuoteProvider,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, quotes: quotes, logger: logger}
}

// Quote looks up the current price for a symbol. Unknown symbols map to
// ErrInvalidSymbol.
func (s *Service) Quote(
	ctx context.Context,
	symbol string,
) (*trading.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrMissingSymbol
	}
	q, err := s.quotes.Lookup(ctx, symbol)
	if err != nil {
		if errors.Is(err, domain.ErrSymbolNotFound) {
			return nil, domain.ErrInvalidSymbol
		}
		return nil, err
	}
	return q, nil
}

// Buy executes a buy: validate, price, then atomically check
// affordability, decrement cash and append the ledger entry. The user
// row stays locked from the re-read to the commit so a concurrent
// request cannot interleave.
func (s *Service) Buy(
	ctx context.Context,
	userID uuid.UUID,
	symbol string,
	shares int64,
) (*trading.Transaction, error) {
	log := s.logger.With("context", "Buy", "userID", userID, "symbol", symbol)

	if err := trading.ValidateShares(shares); err != nil {
		return nil, err
	}
	quote, err := s.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	cost := trading.Cost(quote.Price, shares)
	entry := &dto.TransactionCreate{
		ID:     uuid.New(),
		UserID: userID,
		Symbol: quote.Symbol,
		Shares: shares,
		Price:  quote.Price,
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		ledger, err := uow.LedgerRepository()
		if err != nil {
			return fmt.Errorf("failed to get ledger repository: %w", err)
		}

		u, err := users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		if cost.GreaterThan(u.Cash) {
			return domain.ErrInsufficientFunds
		}
		if err := users.UpdateCash(ctx, userID, u.Cash.Sub(cost)); err != nil {
			return err
		}
		return ledger.Record(ctx, entry)
	})
	if err != nil {
		log.Info("Buy rejected", "shares", shares, "error", err)
		return nil, err
	}

	log.Info("Buy committed",
		"shares", shares, "price", quote.Price, "cost", cost)
	return &trading.Transaction{
		ID:     entry.ID,
		UserID: userID,
		Symbol: entry.Symbol,
		Shares: entry.Shares,
		Price:  entry.Price,
	}, nil
}

// Sell executes a sell: validate, price, then atomically verify the
// holding, increment cash and append a negative ledger entry. The quote
// is fetched before anything is written, so a quote failure fails the
// sell closed with no state change.
func (s *Service) Sell(
	ctx context.Context,
	userID uuid.UUID,
	symbol string,
	shares int64,
) (*trading.Transaction, error) {
	log := s.logger.With("context", "Sell", "userID", userID, "symbol", symbol)

	if err := trading.ValidateShares(shares); err != nil {
		return nil, err
	}
	quote, err := s.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	proceeds := trading.Cost(quote.Price, shares)
	entry := &dto.TransactionCreate{
		ID:     uuid.New(),
		UserID: userID,
		Symbol: quote.Symbol,
		Shares: -shares,
		Price:  quote.Price,
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return fmt.Errorf("failed to get user repository: %w", err)
		}
		ledger, err := uow.LedgerRepository()
		if err != nil {
			return fmt.Errorf("failed to get ledger repository: %w", err)
		}

		u, err := users.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if u == nil {
			return domainuser.ErrUserNotFound
		}
		held, err := ledger.HoldingForSymbol(ctx, userID, quote.Symbol)
		if err != nil {
			return err
		}
		if held <= 0 {
			return domain.ErrSymbolNotOwned
		}
		if shares > held {
			return domain.ErrInsufficientShares
		}
		if err := users.UpdateCash(ctx, userID, u.Cash.Add(proceeds)); err != nil {
			return err
		}
		return ledger.Record(ctx, entry)
	})
	if err != nil {
		log.Info("Sell rejected", "shares", shares, "error", err)
		return nil, err
	}

	log.Info("Sell committed",
		"shares", shares, "price", quote.Price, "proceeds", proceeds)
	return &trading.Transaction{
		ID:     entry.ID,
		UserID: userID,
		Symbol: entry.Symbol,
		Shares: entry.Shares,
		Price:  entry.Price,
	}, nil
}

// Portfolio derives the user's current positions from the ledger and
// prices them at live quotes. Any failed lookup fails the whole view;
// there is no partial rendering.
func (s *Service) Portfolio(
	ctx context.Context,
	userID uuid.UUID,
) (*trading.Portfolio, error) {
	users, err := s.uow.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository: %w", err)
	}
	ledger, err := s.uow.LedgerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger repository: %w", err)
	}

	u, err := users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domainuser.ErrUserNotFound
	}
	holdings, err := ledger.Holdings(ctx, userID)
	if err != nil {
		return nil, err
	}

	positions := make([]trading.Position, 0, len(holdings))
	for _, h := range holdings {
		q, err := s.quotes.Lookup(ctx, h.Symbol)
		if err != nil {
			s.logger.Warn("portfolio quote lookup failed",
				"userID", userID, "symbol", h.Symbol, "error", err)
			return nil, fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, h.Symbol)
		}
		positions = append(positions, trading.NewPosition(h, q))
	}
	return trading.NewPortfolio(u.Cash, positions), nil
}

// History returns all of the user's ledger entries, oldest first.
func (s *Service) History(
	ctx context.Context,
	userID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	ledger, err := s.uow.LedgerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger repository: %w", err)
	}
	return ledger.History(ctx, userID)
}
