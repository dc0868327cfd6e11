package domain

import "github.com/shopspring/decimal"

var one = decimal.NewFromInt(1)

// BpsToFraction converts basis points to a plain fraction (100 bps -> 0.01).
func BpsToFraction(bps decimal.Decimal) decimal.Decimal {
	return bps.Shift(-4)
}

// FractionToBps converts a fraction back to whole basis points, rounding
// half away from zero.
func FractionToBps(frac decimal.Decimal) int64 {
	return frac.Shift(4).Round(0).IntPart()
}

// Compound folds stacked spread layers multiplicatively:
// prod(1 + bps_i/10000) - 1. The accumulator stays exact.
func Compound(bps []decimal.Decimal) decimal.Decimal {
	acc := one
	for _, b := range bps {
		acc = acc.Mul(one.Add(BpsToFraction(b)))
	}
	return acc.Sub(one)
}
