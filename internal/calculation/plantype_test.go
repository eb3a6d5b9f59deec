package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/internal/finmath"
)

// preserveInputs mirrors a 4%/4% PreservePrincipal plan ten years from
// retirement: 100000 starting balance, 1000/month deposits, 5000/month
// desired income.
func preserveInputs(t *testing.T) PlanTypeInputs {
	t.Helper()

	monthlyReturn, err := finmath.YearlyToMonthly(decimal.NewFromFloat(0.04))
	require.NoError(t, err)
	monthlyInflation, err := finmath.YearlyToMonthly(decimal.NewFromFloat(0.04))
	require.NoError(t, err)
	monthlyTotal, err := finmath.YearlyToMonthly(finmath.Compound([]decimal.Decimal{
		decimal.NewFromFloat(0.04), decimal.NewFromFloat(0.04),
	}))
	require.NoError(t, err)

	return PlanTypeInputs{
		Type:                  domain.PreservePrincipal,
		MonthsToRetirement:    120,
		MonthsToEndOfMoney:    420,
		DesiredIncome:         decimal.NewFromInt(5000),
		InitialAmount:         decimal.NewFromInt(100000),
		MonthlyExpectedReturn: monthlyReturn,
		MonthlyInflation:      monthlyInflation,
		MonthlyTotalRate:      monthlyTotal,
	}
}

func TestResolvePreservePrincipal(t *testing.T) {
	in := preserveInputs(t)

	figures, err := ResolvePlanType(in)
	require.NoError(t, err)

	// Income over return, the perpetuity capital that funds withdrawals
	// from returns alone.
	expectedPV := in.DesiredIncome.Div(in.MonthlyExpectedReturn)
	assert.True(t, figures.PresentValue.Equal(expectedPV),
		"preserve-principal present value must be income/rate exactly, got %s", figures.PresentValue)
	assert.InEpsilon(t, 1527420, figures.PresentValue.InexactFloat64(), 0.01,
		"present value should be about 1,527,420")

	// The target carries the present value forward by inflation only.
	fwd, err := finmath.FutureValue(in.MonthlyInflation, in.MonthsToRetirement, decimal.Zero, figures.PresentValue)
	require.NoError(t, err)
	assert.Equal(t, fwd.Abs().StringFixed(2), figures.TargetFutureValue.StringFixed(2))

	// Externally computed reference values for this scenario.
	assert.Equal(t, "2260784.89", figures.TargetFutureValue.StringFixed(2))
	assert.Equal(t, "11241.23", figures.RequiredMonthlyDeposit.StringFixed(2))

	assert.Nil(t, figures.Illustrative, "preserve-principal has no perpetuity approximation to show")
}

func TestResolvePerpetualIncome(t *testing.T) {
	in := preserveInputs(t)
	in.Type = domain.PerpetualIncome

	figures, err := ResolvePlanType(in)
	require.NoError(t, err)

	// A finite annuity costs less than the perpetuity on the same income.
	perpetuity := in.DesiredIncome.Div(in.MonthlyExpectedReturn)
	assert.True(t, figures.PresentValue.LessThan(perpetuity),
		"funding income for a bounded horizon must cost less than funding it forever")
	assert.True(t, figures.PresentValue.GreaterThan(decimal.Zero))

	require.NotNil(t, figures.Illustrative)
	adjustedIncome, err := finmath.FutureValue(in.MonthlyInflation, in.MonthsToRetirement, decimal.Zero, in.DesiredIncome)
	require.NoError(t, err)
	wantFV := adjustedIncome.Div(in.MonthlyExpectedReturn)
	assert.Equal(t, wantFV.StringFixed(2), figures.Illustrative.NecessaryFutureValue.StringFixed(2))
}

func TestResolveLegacyAmount(t *testing.T) {
	in := preserveInputs(t)
	in.Type = domain.LegacyAmount
	in.LegacyAmount = decimal.NewFromInt(200000)

	figures, err := ResolvePlanType(in)
	require.NoError(t, err)

	assert.Nil(t, figures.Illustrative,
		"the legacy-amount variant has no illustrative pair; another variant's formula must not leak in")

	// Reserving a bequest on top of the same income stream needs more
	// capital than the income stream alone.
	in.Type = domain.PerpetualIncome
	base, err := ResolvePlanType(in)
	require.NoError(t, err)
	assert.True(t, figures.PresentValue.GreaterThan(base.PresentValue))
}

func TestResolveLegacyAmountRequiresBequest(t *testing.T) {
	in := preserveInputs(t)
	in.Type = domain.LegacyAmount

	// An unset bequest used to collapse this variant into the
	// PerpetualIncome present value with no indication.
	var verr *domain.ValidationError
	_, err := ResolvePlanType(in)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "legacy_amount", verr.Field)

	in.LegacyAmount = decimal.NewFromInt(-5000)
	_, err = ResolvePlanType(in)
	assert.ErrorAs(t, err, &verr)
}

func TestResolveUnknownPlanType(t *testing.T) {
	in := preserveInputs(t)
	in.Type = domain.PlanType(99)

	var unknownErr *domain.UnknownPlanTypeError
	_, err := ResolvePlanType(in)
	assert.ErrorAs(t, err, &unknownErr, "an unmapped variant must fail, never fall back to a default formula")
}

func TestResolvePreservePrincipalZeroReturn(t *testing.T) {
	in := preserveInputs(t)
	in.MonthlyExpectedReturn = decimal.Zero

	var rateErr *finmath.InvalidRateError
	_, err := ResolvePlanType(in)
	assert.ErrorAs(t, err, &rateErr, "a zero return can never fund income from returns alone")
}

func TestResolveFiguresAreDeterministic(t *testing.T) {
	in := preserveInputs(t)

	a, err := ResolvePlanType(in)
	require.NoError(t, err)
	b, err := ResolvePlanType(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
