package finmath

import (
	"math"

	"github.com/shopspring/decimal"
)

// YearlyToMonthly converts an annual compound rate to its monthly
// equivalent, (1+annual)^(1/12) - 1. The twelfth root is the one place
// the package leaves exact decimal arithmetic.
func YearlyToMonthly(annual decimal.Decimal) (decimal.Decimal, error) {
	if annual.LessThanOrEqual(negOne) {
		return decimal.Zero, &InvalidRateError{Rate: annual}
	}
	f := annual.InexactFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, &InvalidRateError{Rate: annual}
	}
	return decimal.NewFromFloat(math.Pow(1+f, 1.0/12.0) - 1), nil
}

// Compound folds simultaneous annual rates into a single annual rate,
// product of (1+r) minus one. Used to combine expected return and
// inflation into one nominal growth rate.
func Compound(rates []decimal.Decimal) decimal.Decimal {
	factor := one
	for _, r := range rates {
		factor = factor.Mul(one.Add(r))
	}
	return factor.Sub(one)
}
