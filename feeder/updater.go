package feeder

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Report aggregates everything that happened during one tick. It is the
// explicit error surface of the pipeline; log lines narrate it but nothing
// depends on them.
type Report struct {
	UpdateTime int64
	Resolved   []ResolvedPrice
	Skipped    []SkippedPair
	Encoded    []EncodedPrice
	Results    []UpdateResult
}

// Updater runs the full pipeline for one tick: resolve the configured pairs,
// encode the rates, dispatch the batch.
type Updater struct {
	pairs      []TradingPair
	resolver   *Resolver
	dispatcher Dispatcher
	now        func() time.Time
	log        zerolog.Logger
}

// NewUpdater wires the pipeline for the given immutable pair list.
func NewUpdater(pairs []TradingPair, resolver *Resolver, dispatcher Dispatcher, log zerolog.Logger) *Updater {
	return &Updater{
		pairs:      pairs,
		resolver:   resolver,
		dispatcher: dispatcher,
		now:        time.Now,
		log:        log.With().Str("component", "updater").Logger(),
	}
}

// UpdatePrices executes one tick and returns its report. Per-pair and
// per-target failures are recorded in the report, never aborting the tick.
func (u *Updater) UpdatePrices(ctx context.Context) Report {
	updateTime := u.now().Unix()

	resolution := u.resolver.ResolveAll(ctx, u.pairs)

	batch := make([]EncodedPrice, 0, len(resolution.Prices))
	for _, price := range resolution.Prices {
		batch = append(batch, Encode(price, updateTime))
	}

	u.log.Info().
		Int("resolved", len(resolution.Prices)).
		Int("skipped", len(resolution.Skipped)).
		Int64("update_time", updateTime).
		Msg("prices fetched and converted")

	results := u.dispatcher.Dispatch(ctx, batch, updateTime)
	for _, result := range results {
		event := u.log.Info()
		if result.Outcome != OutcomeConfirmed {
			event = u.log.Error().Err(result.Err)
		}

		event.
			Str("oracle", result.Target.Name).
			Str("address", result.Target.Address).
			Stringer("outcome", result.Outcome).
			Uint64("block", result.BlockNumber).
			Msg("oracle update finished")
	}

	return Report{
		UpdateTime: updateTime,
		Resolved:   resolution.Prices,
		Skipped:    resolution.Skipped,
		Encoded:    batch,
		Results:    results,
	}
}
