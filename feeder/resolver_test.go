package feeder

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher serves quotes from a fixed map and records the fetch order.
type fakeFetcher struct {
	prices map[string]float64
	errs   map[string]error
	calls  []string
}

func (f *fakeFetcher) FetchQuote(_ context.Context, pair TradingPair) (Quote, error) {
	f.calls = append(f.calls, pair.String())

	if err, ok := f.errs[pair.String()]; ok {
		return Quote{}, err
	}

	price, ok := f.prices[pair.String()]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %s", ErrQuoteUnavailable, pair)
	}

	return Quote{Pair: pair, Price: price, FetchedAt: time.Now()}, nil
}

func mustPairs(t *testing.T, list ...string) []TradingPair {
	t.Helper()

	pairs, err := ParsePairs(list)
	require.NoError(t, err)

	return pairs
}

func TestResolveAll_PivotsThroughUSD(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"ETH-USD": 2000,
		"BTC-ETH": 15,
	}}
	resolver := NewResolver(fetcher, zerolog.Nop())

	resolution := resolver.ResolveAll(context.Background(), mustPairs(t, "ETH-USD", "BTC-ETH"))

	require.Len(t, resolution.Prices, 2)
	assert.Empty(t, resolution.Skipped)

	assert.Equal(t, "ETH", resolution.Prices[0].Base)
	assert.Equal(t, 2000.0, resolution.Prices[0].USD)

	assert.Equal(t, "BTC", resolution.Prices[1].Base)
	assert.Equal(t, 30000.0, resolution.Prices[1].USD)
	assert.Equal(t, TokenID("BTC"), resolution.Prices[1].TokenID)

	// Fetches happen strictly in list order.
	assert.Equal(t, []string{"ETH-USD", "BTC-ETH"}, fetcher.calls)
}

func TestResolveAll_OrderDependent(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"ETH-USD": 2000,
		"BTC-ETH": 15,
	}}
	resolver := NewResolver(fetcher, zerolog.Nop())

	// With the pivot pair listed second, BTC-ETH cannot resolve.
	resolution := resolver.ResolveAll(context.Background(), mustPairs(t, "BTC-ETH", "ETH-USD"))

	require.Len(t, resolution.Prices, 1)
	assert.Equal(t, "ETH", resolution.Prices[0].Base)

	require.Len(t, resolution.Skipped, 1)
	assert.Equal(t, "BTC-ETH", resolution.Skipped[0].Pair.String())

	var pivotErr *MissingPivotError
	require.ErrorAs(t, resolution.Skipped[0].Err, &pivotErr)
	assert.Equal(t, "ETH", pivotErr.Pair.Quote)

	// The skipped pair is never fetched, only the USD pair is.
	assert.Equal(t, []string{"ETH-USD"}, fetcher.calls)
}

func TestResolveAll_ContinuesPastFetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{
		prices: map[string]float64{"BTC-USD": 60000},
		errs:   map[string]error{"ETH-USD": fmt.Errorf("connection reset")},
	}
	resolver := NewResolver(fetcher, zerolog.Nop())

	resolution := resolver.ResolveAll(context.Background(), mustPairs(t, "ETH-USD", "BTC-USD"))

	require.Len(t, resolution.Prices, 1)
	assert.Equal(t, "BTC", resolution.Prices[0].Base)

	require.Len(t, resolution.Skipped, 1)
	assert.Equal(t, "ETH-USD", resolution.Skipped[0].Pair.String())
}

func TestResolveAll_FailedPivotSkipsDependents(t *testing.T) {
	fetcher := &fakeFetcher{
		prices: map[string]float64{"BTC-ETH": 15},
		errs:   map[string]error{"ETH-USD": fmt.Errorf("connection reset")},
	}
	resolver := NewResolver(fetcher, zerolog.Nop())

	resolution := resolver.ResolveAll(context.Background(), mustPairs(t, "ETH-USD", "BTC-ETH"))

	assert.Empty(t, resolution.Prices)
	require.Len(t, resolution.Skipped, 2)

	var pivotErr *MissingPivotError
	require.ErrorAs(t, resolution.Skipped[1].Err, &pivotErr)
}

func TestHealthCheck_OK(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"ETH-USD": 2000,
		"BTC-ETH": 15,
	}}
	resolver := NewResolver(fetcher, zerolog.Nop())

	err := resolver.HealthCheck(context.Background(), mustPairs(t, "ETH-USD", "BTC-ETH"))
	assert.NoError(t, err)
}

func TestHealthCheck_FetchFailure(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{"ETH-USD": 2000}}
	resolver := NewResolver(fetcher, zerolog.Nop())

	err := resolver.HealthCheck(context.Background(), mustPairs(t, "ETH-USD", "DOGE-USD"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrQuoteUnavailable)
	assert.Contains(t, err.Error(), "DOGE-USD")
}

func TestHealthCheck_MissingUsdPivot(t *testing.T) {
	fetcher := &fakeFetcher{prices: map[string]float64{
		"ETH-USD": 2000,
		"SOL-BTC": 0.002,
	}}
	resolver := NewResolver(fetcher, zerolog.Nop())

	// SOL-BTC is fetchable but no BTC-USD pair exists to pivot through.
	err := resolver.HealthCheck(context.Background(), mustPairs(t, "ETH-USD", "SOL-BTC"))

	var pivotErr *MissingPivotError
	require.ErrorAs(t, err, &pivotErr)
	assert.Equal(t, "BTC", pivotErr.Pair.Quote)
}
