package feeder

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// MissingPivotError reports a pair whose quote currency has no USD rate to
// pivot through. Fatal at health-check time, a per-pair skip at tick time.
type MissingPivotError struct {
	Pair TradingPair
}

func (e *MissingPivotError) Error() string {
	return fmt.Sprintf("no %s-%s price available to pivot %s", e.Pair.Quote, USD, e.Pair)
}

// UsdCache maps a base symbol to its USD rate. It is scoped to a single
// ResolveAll call: built fresh each tick and discarded afterwards.
type UsdCache map[string]float64

// SkippedPair records a pair that did not resolve during a tick and why.
type SkippedPair struct {
	Pair TradingPair
	Err  error
}

// Resolution is the outcome of resolving one ordered pair list. Prices keeps
// the input order of the pairs that resolved.
type Resolution struct {
	Prices  []ResolvedPrice
	Skipped []SkippedPair
}

// Resolver turns an ordered pair list into USD rates, pivoting non-USD pairs
// through previously resolved USD quotes.
type Resolver struct {
	fetcher QuoteFetcher
	log     zerolog.Logger
}

// NewResolver creates a Resolver backed by the given quote fetcher.
func NewResolver(fetcher QuoteFetcher, log zerolog.Logger) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		log:     log.With().Str("component", "resolver").Logger(),
	}
}

// ResolveAll folds over the pairs in input order, threading the USD cache as
// accumulator state. A USD-quoted pair both resolves and seeds the cache; a
// non-USD pair resolves only if its quote currency was cached by an earlier
// entry. A single pair's failure is recorded and resolution continues with
// the next pair.
func (r *Resolver) ResolveAll(ctx context.Context, pairs []TradingPair) Resolution {
	var resolution Resolution

	cache := make(UsdCache, len(pairs))

	for _, pair := range pairs {
		next, price, err := r.resolvePair(ctx, cache, pair)
		if err != nil {
			r.log.Warn().Err(err).Stringer("pair", pair).Msg("skipping pair")
			resolution.Skipped = append(resolution.Skipped, SkippedPair{Pair: pair, Err: err})

			continue
		}

		cache = next
		resolution.Prices = append(resolution.Prices, price)
		r.log.Info().Str("base", price.Base).Float64("usd", price.USD).Msg("resolved USD price")
	}

	return resolution
}

// resolvePair resolves one pair against the cache built so far and returns
// the cache to carry into the next step. Only USD-quoted pairs extend it.
func (r *Resolver) resolvePair(ctx context.Context, cache UsdCache, pair TradingPair) (UsdCache, ResolvedPrice, error) {
	if pair.IsUSD() {
		quote, err := r.fetcher.FetchQuote(ctx, pair)
		if err != nil {
			return cache, ResolvedPrice{}, err
		}

		cache[pair.Base] = quote.Price

		return cache, resolved(pair.Base, quote.Price), nil
	}

	pivot, ok := cache[pair.Quote]
	if !ok {
		return cache, ResolvedPrice{}, &MissingPivotError{Pair: pair}
	}

	quote, err := r.fetcher.FetchQuote(ctx, pair)
	if err != nil {
		return cache, ResolvedPrice{}, err
	}

	return cache, resolved(pair.Base, quote.Price*pivot), nil
}

func resolved(base string, usd float64) ResolvedPrice {
	return ResolvedPrice{TokenID: TokenID(base), Base: base, USD: usd}
}

// HealthCheck verifies at startup that every configured pair is fetchable and
// that every non-USD pair has a USD pair for its quote currency somewhere in
// the list. Any failure aborts scheduling entirely.
func (r *Resolver) HealthCheck(ctx context.Context, pairs []TradingPair) error {
	for _, pair := range pairs {
		if _, err := r.fetcher.FetchQuote(ctx, pair); err != nil {
			return fmt.Errorf("health check failed for pair %s: %w", pair, err)
		}

		r.log.Info().Stringer("pair", pair).Msg("health check passed for pair")
	}

	usdBases := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		if pair.IsUSD() {
			usdBases[pair.Base] = true
		}
	}

	for _, pair := range pairs {
		if !pair.IsUSD() && !usdBases[pair.Quote] {
			return fmt.Errorf("health check failed: %w", &MissingPivotError{Pair: pair})
		}
	}

	return nil
}
