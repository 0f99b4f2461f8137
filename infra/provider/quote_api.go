package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mfadel/papertrade/pkg/config"
	"github.com/mfadel/papertrade/pkg/domain"
	"github.com/mfadel/papertrade/pkg/domain/trading"
	"github.com/shopspring/decimal"
)

// QuoteAPIProvider implements provider.QuoteProvider against an
// IEX-style quote endpoint: GET {base}/stock/{symbol}/quote?token={key}.
type QuoteAPIProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	timeout    time.Duration
}

// quoteAPIResponse represents the provider's quote payload. Only the
// fields this application consumes are mapped.
type quoteAPIResponse struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"companyName"`
	LatestPrice decimal.Decimal `json:"latestPrice"`
}

// NewQuoteAPIProvider creates a quote provider from config.
func NewQuoteAPIProvider(cfg config.Quote, logger *slog.Logger) *QuoteAPIProvider {
	return &QuoteAPIProvider{
		apiKey:  cfg.ApiKey,
		baseURL: strings.TrimRight(cfg.ApiUrl, "/"),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger:  logger,
		timeout: cfg.HTTPTimeout,
	}
}

// Lookup fetches the current quote for a symbol. The symbol is
// normalized to uppercase. Unknown symbols map to ErrSymbolNotFound;
// every transport or provider failure maps to ErrQuoteUnavailable so no
// provider detail leaks to users.
func (p *QuoteAPIProvider) Lookup(
	ctx context.Context,
	symbol string,
) (*trading.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrSymbolNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	reqURL := fmt.Sprintf(
		"%s/stock/%s/quote?token=%s",
		p.baseURL,
		url.PathEscape(symbol),
		url.QueryEscape(p.apiKey),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Warn("quote request failed", "symbol", symbol, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrSymbolNotFound
	case resp.StatusCode != http.StatusOK:
		p.logger.Warn("quote provider returned non-OK status",
			"symbol", symbol, "status", resp.StatusCode)
		return nil, fmt.Errorf(
			"%w: status %d", domain.ErrQuoteUnavailable, resp.StatusCode)
	}

	var apiResp quoteAPIResponse
	if err = json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		p.logger.Warn("failed to decode quote response",
			"symbol", symbol, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}

	if apiResp.Symbol == "" || !apiResp.LatestPrice.IsPositive() {
		return nil, domain.ErrSymbolNotFound
	}

	return &trading.Quote{
		Symbol: strings.ToUpper(apiResp.Symbol),
		Name:   apiResp.CompanyName,
		Price:  apiResp.LatestPrice,
	}, nil
}
