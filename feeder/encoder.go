package feeder

import "math"

// Convert encodes a USD price as an integer mantissa and decimal exponent.
// The exponent is bucketed by magnitude, trading range for significant digits:
//
//	usdPrice < 10        -> expo -8
//	10 <= usdPrice < 1e4 -> expo -5
//	usdPrice >= 1e4      -> expo -3
//
// The bucket boundaries and half-up rounding are shared with the on-chain
// reader and must not change independently of it.
func Convert(usdPrice float64) (price int64, expo int32) {
	switch {
	case usdPrice < 10:
		expo = -8
	case usdPrice < 10000:
		expo = -5
	default:
		expo = -3
	}

	price = int64(math.Round(usdPrice * math.Pow(10, float64(-expo))))

	return price, expo
}

// Encode converts a resolved USD price into its on-chain representation,
// stamping it with the shared tick update time.
func Encode(p ResolvedPrice, updateTime int64) EncodedPrice {
	price, expo := Convert(p.USD)

	return EncodedPrice{
		TokenID:    p.TokenID,
		Price:      price,
		Expo:       expo,
		UpdateTime: updateTime,
	}
}
