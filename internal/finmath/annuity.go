// Package finmath implements the annuity and rate primitives the
// projection engine is built on. All functions are pure; rates are
// periodic (monthly) fractions and follow the standard financial
// calculator sign convention, outflows negative.
package finmath

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	one    = decimal.NewFromInt(1)
	negOne = decimal.NewFromInt(-1)
)

// InvalidRateError reports a degenerate periodic rate, such as -100%,
// that would otherwise propagate NaN or infinity through the math.
type InvalidRateError struct {
	Rate decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid periodic rate %s", e.Rate)
}

// InvalidPeriodCountError reports a zero or negative period count.
type InvalidPeriodCountError struct {
	Periods int
}

func (e *InvalidPeriodCountError) Error() string {
	return fmt.Sprintf("invalid period count %d", e.Periods)
}

func guard(rate decimal.Decimal, periods int) error {
	if periods <= 0 {
		return &InvalidPeriodCountError{Periods: periods}
	}
	if rate.Equal(negOne) {
		return &InvalidRateError{Rate: rate}
	}
	return nil
}

func growthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}

// PresentValue returns the present value of an annuity of payment over
// periods plus a terminal futureValue, both discounted at rate.
func PresentValue(rate decimal.Decimal, periods int, payment, futureValue decimal.Decimal) (decimal.Decimal, error) {
	if err := guard(rate, periods); err != nil {
		return decimal.Zero, err
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return payment.Mul(n).Add(futureValue).Neg(), nil
	}
	g := growthFactor(rate, periods)
	annuity := payment.Mul(one.Sub(one.Div(g))).Div(rate)
	return annuity.Add(futureValue.Div(g)).Neg(), nil
}

// FutureValue returns the value after periods of a presentValue
// compounding at rate with payment added each period.
func FutureValue(rate decimal.Decimal, periods int, payment, presentValue decimal.Decimal) (decimal.Decimal, error) {
	if err := guard(rate, periods); err != nil {
		return decimal.Zero, err
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return presentValue.Add(payment.Mul(n)), nil
	}
	g := growthFactor(rate, periods)
	return presentValue.Mul(g).Add(payment.Mul(g.Sub(one)).Div(rate)), nil
}

// Payment solves for the periodic payment that carries presentValue to
// futureValue over periods at rate.
func Payment(rate decimal.Decimal, periods int, presentValue, futureValue decimal.Decimal) (decimal.Decimal, error) {
	if err := guard(rate, periods); err != nil {
		return decimal.Zero, err
	}
	n := decimal.NewFromInt(int64(periods))
	if rate.IsZero() {
		return futureValue.Add(presentValue).Div(n).Neg(), nil
	}
	g := growthFactor(rate, periods)
	return rate.Mul(futureValue.Add(presentValue.Mul(g))).Div(g.Sub(one)), nil
}
