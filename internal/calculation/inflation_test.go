package calculation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/previplan/previplan/internal/domain"
)

func TestAdjustToBaseFlatRate(t *testing.T) {
	rate := decimal.NewFromFloat(0.004)
	nominal := decimal.NewFromInt(105000)

	got := AdjustToBase(nominal, 2024, time.January, 2025, time.January, rate, nil)

	factor := decimal.NewFromInt(1)
	for i := 0; i < 12; i++ {
		factor = factor.Mul(decimal.NewFromInt(1).Add(rate))
	}
	want := nominal.Div(factor)
	assert.True(t, got.Equal(want), "twelve months forward divides by twelve months of inflation, got %s want %s", got, want)
}

func TestAdjustToBaseSameMonthIsIdentity(t *testing.T) {
	nominal := decimal.NewFromInt(5000)
	got := AdjustToBase(nominal, 2024, time.June, 2024, time.June, decimal.NewFromFloat(0.01), nil)
	assert.True(t, got.Equal(nominal))
}

func TestAdjustToBaseObservedRatesOverrideAssumed(t *testing.T) {
	assumed := decimal.NewFromFloat(0.004)
	observed := decimal.NewFromFloat(0.01)
	nominal := decimal.NewFromInt(10000)

	actuals := []domain.ActualRecord{{
		Year:             2024,
		Month:            time.February,
		MonthlyInflation: &observed,
	}}

	got := AdjustToBase(nominal, 2024, time.January, 2024, time.March, assumed, actuals)

	// February compounds the observed rate, March the assumed one.
	want := nominal.Div(decimal.NewFromInt(1).Add(observed).Mul(decimal.NewFromInt(1).Add(assumed)))
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}

func TestInflationFactor(t *testing.T) {
	rate := decimal.NewFromFloat(0.004)
	observed := decimal.NewFromFloat(0.012)
	actuals := []domain.ActualRecord{{
		Year:             2024,
		Month:            time.March,
		MonthlyInflation: &observed,
	}}

	factor := InflationFactor(2024, time.January, 2024, time.April, rate, actuals)

	one := decimal.NewFromInt(1)
	want := one.Add(rate).Mul(one.Add(observed)).Mul(one.Add(rate))
	assert.True(t, factor.Equal(want), "got %s want %s", factor, want)

	nominal := decimal.NewFromInt(10000)
	adjusted := AdjustToBase(nominal, 2024, time.January, 2024, time.April, rate, actuals)
	assert.True(t, adjusted.Equal(nominal.Div(factor)),
		"the adjuster divides by the same factor")

	assert.True(t, InflationFactor(2024, time.June, 2024, time.June, rate, nil).Equal(one),
		"an empty span compounds nothing")
}

func TestAdjustToBaseBackwardExpands(t *testing.T) {
	rate := decimal.NewFromFloat(0.004)
	nominal := decimal.NewFromInt(10000)

	forward := AdjustToBase(nominal, 2024, time.January, 2024, time.July, rate, nil)
	back := AdjustToBase(forward, 2024, time.July, 2024, time.January, rate, nil)

	assert.InDelta(t, nominal.InexactFloat64(), back.InexactFloat64(), 1e-9,
		"rebasing forward then backward is the identity")
	assert.True(t, forward.LessThan(nominal), "a later target has less purchasing power")
}
