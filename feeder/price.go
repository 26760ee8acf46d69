// Package feeder implements the fetch -> resolve -> encode -> dispatch
// pipeline that keeps downstream oracle contracts supplied with USD prices.
package feeder

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"aurorafeeder/config"
)

// ErrQuoteUnavailable is returned by quote fetchers when the source has no
// data for the requested symbol/convert combination.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// Quote is a single spot price observation for a trading pair.
type Quote struct {
	Pair      TradingPair
	Price     float64
	FetchedAt time.Time
}

// ResolvedPrice is a base symbol's USD rate together with its token identifier.
type ResolvedPrice struct {
	TokenID common.Hash
	Base    string
	USD     float64
}

// EncodedPrice is the fixed-point form pushed on-chain: the real value is
// recoverable as Price * 10^Expo.
type EncodedPrice struct {
	TokenID    common.Hash
	Price      int64
	Expo       int32
	UpdateTime int64
}

// QuoteFetcher retrieves a single pair's current price from an external quote
// source. Implementations perform no retries; callers decide how to react to
// failures.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, pair TradingPair) (Quote, error)
}

// Outcome classifies the result of one oracle submission.
type Outcome int

const (
	OutcomeConfirmed Outcome = iota
	OutcomeTimedOut
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeTimedOut:
		return "timed out"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// UpdateResult records how the submission to one oracle target ended.
// BlockNumber is set only for confirmed submissions, Err only for failed ones.
type UpdateResult struct {
	Target      config.OracleTarget
	Outcome     Outcome
	BlockNumber uint64
	Err         error
}

// Dispatcher submits an encoded batch to every configured oracle target.
type Dispatcher interface {
	Dispatch(ctx context.Context, batch []EncodedPrice, updateTime int64) []UpdateResult
}
