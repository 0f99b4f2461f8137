// Package provider defines the external quote-service boundary.
package provider

import (
	"context"

	"github.com/mfadel/papertrade/pkg/domain/trading"
)

// QuoteProvider looks up the current price and display name for a ticker
// symbol from an external source. Implementations must normalize the
// symbol to uppercase, bound the call with a timeout, and map failures to
// domain.ErrSymbolNotFound or domain.ErrQuoteUnavailable.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*trading.Quote, error)
}
