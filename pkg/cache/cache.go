package cache

import (
	"time"

	"github.com/mfadel/papertrade/pkg/domain/trading"
)

// QuoteCache defines the interface for caching stock quotes.
type QuoteCache interface {
	Get(key string) (*trading.Quote, error)
	Set(key string, quote *trading.Quote, ttl time.Duration) error
	Delete(key string) error
}
