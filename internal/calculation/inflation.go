package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/pkg/dateutil"
)

// InflationFactor compounds the monthly inflation rates between the
// base and target periods, exclusive of the base month and inclusive of
// the target month. Months with an observed rate in the actual records
// compound that rate; months without fall back to the flat assumed
// monthly rate.
func InflationFactor(baseYear int, baseMonth time.Month, targetYear int, targetMonth time.Month, monthlyInflation decimal.Decimal, actuals []domain.ActualRecord) decimal.Decimal {
	baseIdx := dateutil.MonthIndex(baseYear, baseMonth)
	targetIdx := dateutil.MonthIndex(targetYear, targetMonth)

	observed := make(map[int]decimal.Decimal, len(actuals))
	for i := range actuals {
		if actuals[i].MonthlyInflation != nil {
			observed[dateutil.MonthIndex(actuals[i].Year, actuals[i].Month)] = *actuals[i].MonthlyInflation
		}
	}

	lo, hi := baseIdx, targetIdx
	if hi < lo {
		lo, hi = hi, lo
	}

	one := decimal.NewFromInt(1)
	factor := one
	for idx := lo + 1; idx <= hi; idx++ {
		rate := monthlyInflation
		if r, ok := observed[idx]; ok {
			rate = r
		}
		factor = factor.Mul(one.Add(rate))
	}
	return factor
}

// AdjustToBase rebases a nominal value at the target period to the
// purchasing power of the base period, conventionally the plan's
// inception month. A target after the base shrinks the value, a target
// before it expands it.
func AdjustToBase(nominal decimal.Decimal, baseYear int, baseMonth time.Month, targetYear int, targetMonth time.Month, monthlyInflation decimal.Decimal, actuals []domain.ActualRecord) decimal.Decimal {
	baseIdx := dateutil.MonthIndex(baseYear, baseMonth)
	targetIdx := dateutil.MonthIndex(targetYear, targetMonth)
	if baseIdx == targetIdx {
		return nominal
	}
	factor := InflationFactor(baseYear, baseMonth, targetYear, targetMonth, monthlyInflation, actuals)
	if targetIdx > baseIdx {
		return nominal.Div(factor)
	}
	return nominal.Mul(factor)
}
