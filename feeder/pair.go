package feeder

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// USD is the pivot currency every configured pair ultimately resolves into.
const USD = "USD"

// TradingPair is an ordered base/quote symbol pair, e.g. ETH-USD or BTC-ETH.
type TradingPair struct {
	Base  string
	Quote string
}

// ParsePair parses a "BASE-QUOTE" string into a TradingPair.
func ParsePair(s string) (TradingPair, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return TradingPair{}, fmt.Errorf("malformed pair %q, expected BASE-QUOTE", s)
	}

	return TradingPair{Base: parts[0], Quote: parts[1]}, nil
}

// ParsePairs parses an ordered list of pair strings, preserving input order.
// Order matters: pivot resolution depends on USD pairs appearing before the
// pairs quoted in them.
func ParsePairs(list []string) ([]TradingPair, error) {
	pairs := make([]TradingPair, 0, len(list))

	for _, s := range list {
		pair, err := ParsePair(s)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

// IsUSD reports whether the pair is quoted directly in USD.
func (p TradingPair) IsUSD() bool {
	return p.Quote == USD
}

func (p TradingPair) String() string {
	return p.Base + "-" + p.Quote
}

// TokenID derives the canonical 32-byte identifier for a base symbol's USD
// pricing record: the keccak256 hash of the "BASE-USD" string. It depends on
// the base symbol only, so the same base resolved through different pairs
// collapses to one identifier.
func TokenID(base string) common.Hash {
	return crypto.Keccak256Hash([]byte(base + "-" + USD))
}
