package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mfadel/papertrade/pkg/cache"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/mfadel/papertrade/pkg/provider"
)

// CachedQuoteProvider implements provider.QuoteProvider with caching
// capabilities. Prices served from cache are at most ttl old.
type CachedQuoteProvider struct {
	next   provider.QuoteProvider
	cache  cache.QuoteCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedQuoteProvider creates a new CachedQuoteProvider.
func NewCachedQuoteProvider(
	next provider.QuoteProvider,
	quoteCache cache.QuoteCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedQuoteProvider {
	return &CachedQuoteProvider{
		next:   next,
		cache:  quoteCache,
		ttl:    ttl,
		logger: logger,
	}
}

// Lookup fetches the current quote for a symbol, using cache. Only
// successful lookups are cached; ErrSymbolNotFound and outages always
// fall through to the next provider on retry.
func (c *CachedQuoteProvider) Lookup(
	ctx context.Context,
	symbol string,
) (*trading.Quote, error) {
	key := fmt.Sprintf("quote:%s", strings.ToUpper(strings.TrimSpace(symbol)))

	if quote, err := c.cache.Get(key); err == nil && quote != nil {
		c.logger.Debug("cache hit for Lookup", "key", key)
		return quote, nil
	} else if err != nil {
		c.logger.Error("error getting from cache", "key", key, "error", err)
	}

	c.logger.Debug("cache miss for Lookup, fetching from next provider", "key", key)

	quote, err := c.next.Lookup(ctx, symbol)
	if err != nil {
		if !errors.Is(err, domain.ErrSymbolNotFound) {
			c.logger.Warn("next provider Lookup failed", "key", key, "error", err)
		}
		return nil, err
	}

	if err := c.cache.Set(key, quote, c.ttl); err != nil {
		c.logger.Error("error setting cache for Lookup", "key", key, "error", err)
	}

	return quote, nil
}

// Ensure CachedQuoteProvider implements provider.QuoteProvider
var _ provider.QuoteProvider = (*CachedQuoteProvider)(nil)
