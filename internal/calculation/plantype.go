package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/internal/finmath"
)

// PlanTypeInputs carries everything the resolver needs for one plan
// variant. Monthly rates must already be converted from annual form.
type PlanTypeInputs struct {
	Type               domain.PlanType
	MonthsToRetirement int
	MonthsToEndOfMoney int
	DesiredIncome      decimal.Decimal
	LegacyAmount       decimal.Decimal
	InitialAmount      decimal.Decimal

	MonthlyExpectedReturn decimal.Decimal
	MonthlyInflation      decimal.Decimal
	MonthlyTotalRate      decimal.Decimal
}

// ResolvePlanType derives the retirement-date present value, the
// inflation-projected target future value and the monthly deposit
// required to reach it for the given plan variant.
//
// The target future value step inflates the retirement-date present
// value forward by inflation only across the accumulation months. Its
// economic meaning is kept exactly as legacy clients expect; do not
// extend it without product sign-off.
func ResolvePlanType(in PlanTypeInputs) (*domain.PlanFigures, error) {
	presentValue, illustrative, err := variantPresentValue(in)
	if err != nil {
		return nil, err
	}

	targetFutureValue, err := finmath.FutureValue(in.MonthlyInflation, in.MonthsToRetirement, decimal.Zero, presentValue)
	if err != nil {
		return nil, err
	}
	targetFutureValue = targetFutureValue.Abs()

	requiredDeposit, err := finmath.Payment(in.MonthlyTotalRate, in.MonthsToRetirement, in.InitialAmount.Neg(), targetFutureValue)
	if err != nil {
		return nil, err
	}

	return &domain.PlanFigures{
		PresentValue:           presentValue,
		TargetFutureValue:      targetFutureValue,
		RequiredMonthlyDeposit: requiredDeposit,
		RealReturnComponent:    targetFutureValue.Mul(in.MonthlyExpectedReturn),
		InflationComponent:     targetFutureValue.Mul(in.MonthlyInflation),
		Illustrative:           illustrative,
	}, nil
}

func variantPresentValue(in PlanTypeInputs) (decimal.Decimal, *domain.IllustrativeFigures, error) {
	switch in.Type {
	case domain.PerpetualIncome:
		pv, err := finmath.PresentValue(in.MonthlyExpectedReturn, in.MonthsToEndOfMoney, in.DesiredIncome.Neg(), decimal.Zero)
		if err != nil {
			return decimal.Zero, nil, err
		}
		illustrative, err := perpetualIllustrative(in)
		if err != nil {
			return decimal.Zero, nil, err
		}
		return pv, illustrative, nil

	case domain.LegacyAmount:
		// Without a bequest this variant would collapse into the
		// PerpetualIncome present value unnoticed.
		if in.LegacyAmount.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, nil, &domain.ValidationError{
				Field:  "legacy_amount",
				Reason: "is required for the legacy_amount plan type",
			}
		}
		// The illustrative necessary-future-value / necessary-deposit
		// pair is not implemented for this variant. Callers get nil, not
		// another variant's formula.
		pv, err := finmath.PresentValue(in.MonthlyExpectedReturn, in.MonthsToEndOfMoney, in.DesiredIncome.Neg(), in.LegacyAmount.Neg())
		if err != nil {
			return decimal.Zero, nil, err
		}
		return pv, nil, nil

	case domain.PreservePrincipal:
		if in.MonthlyExpectedReturn.IsZero() {
			return decimal.Zero, nil, &finmath.InvalidRateError{Rate: in.MonthlyExpectedReturn}
		}
		return in.DesiredIncome.Div(in.MonthlyExpectedReturn), nil, nil
	}

	return decimal.Zero, nil, &domain.UnknownPlanTypeError{Code: fmt.Sprintf("%d", int(in.Type))}
}

// perpetualIllustrative computes the perpetuity approximation shown
// alongside the PerpetualIncome variant: the income inflated to the
// retirement date divided by the monthly return, and the deposit that
// would reach it.
func perpetualIllustrative(in PlanTypeInputs) (*domain.IllustrativeFigures, error) {
	if in.MonthlyExpectedReturn.IsZero() {
		return nil, &finmath.InvalidRateError{Rate: in.MonthlyExpectedReturn}
	}
	adjustedIncome, err := finmath.FutureValue(in.MonthlyInflation, in.MonthsToRetirement, decimal.Zero, in.DesiredIncome)
	if err != nil {
		return nil, err
	}
	necessaryFV := adjustedIncome.Div(in.MonthlyExpectedReturn)
	necessaryDeposit, err := finmath.Payment(in.MonthlyTotalRate, in.MonthsToRetirement, in.InitialAmount.Neg(), necessaryFV)
	if err != nil {
		return nil, err
	}
	return &domain.IllustrativeFigures{
		NecessaryFutureValue:    necessaryFV,
		NecessaryMonthlyDeposit: necessaryDeposit,
	}, nil
}
