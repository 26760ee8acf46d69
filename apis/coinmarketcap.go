// Package apis provides external quote source integrations
package apis

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"aurorafeeder/config"
	"aurorafeeder/feeder"
)

// apiKeyHeader authenticates requests against the CoinMarketCap API.
const apiKeyHeader = "X-CMC_PRO_API_KEY"

// CoinMarketCap fetches spot quotes from the CoinMarketCap quotes/latest
// endpoint. Requests are rate limited to stay within the API plan; no retry
// or backoff is performed here.
type CoinMarketCap struct {
	url     string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewCoinMarketCap creates a new CoinMarketCap quote fetcher.
func NewCoinMarketCap(cfg config.Config, log zerolog.Logger) *CoinMarketCap {
	return &CoinMarketCap{
		url:    cfg.QuoteURL,
		apiKey: cfg.QuoteAPIKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Basic plan allows 30 requests per minute.
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 5),
		log:     log.With().Str("component", "coinmarketcap").Logger(),
	}
}

// FetchQuote retrieves the current price of pair.Base converted into
// pair.Quote. It returns feeder.ErrQuoteUnavailable when the source has no
// data for the combination.
func (c *CoinMarketCap) FetchQuote(ctx context.Context, pair feeder.TradingPair) (feeder.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return feeder.Quote{}, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("symbol", pair.Base)
	params.Set("convert", pair.Quote)

	fullURL := fmt.Sprintf("%s?%s", c.url, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return feeder.Quote{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return feeder.Quote{}, fmt.Errorf("failed to fetch quote for %s: %w", pair, err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return feeder.Quote{}, fmt.Errorf("quote source returned non-200 status for %s: %d", pair, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return feeder.Quote{}, fmt.Errorf("failed to read response: %w", err)
	}

	// The response nests the price under dynamic symbol/currency keys:
	// data.<BASE>.quote.<QUOTE>.price
	price := gjson.GetBytes(body, "data."+pair.Base+".quote."+pair.Quote+".price")
	if !price.Exists() {
		return feeder.Quote{}, fmt.Errorf("%w: pair %s not found on quote source", feeder.ErrQuoteUnavailable, pair)
	}

	c.log.Debug().Stringer("pair", pair).Float64("price", price.Float()).Msg("fetched quote")

	return feeder.Quote{
		Pair:      pair,
		Price:     price.Float(),
		FetchedAt: time.Now(),
	}, nil
}
