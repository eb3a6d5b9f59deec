package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/internal/finmath"
	"github.com/previplan/previplan/internal/timeline"
	"github.com/previplan/previplan/pkg/dateutil"
)

var (
	decimalOne  = decimal.NewFromInt(1)
	decimalZero = decimal.Zero
)

// generateMonths walks every month from the plan initial date to the
// end-of-money month, maintaining two parallel balance tracks: the
// actual-anchored balance and the pure planned balance. An actual
// record pins the balance for its month; when that month is also a
// regime's effective date the planned track re-anchors to the realized
// balance, so forward projection stops compounding old estimates.
func (e *Engine) generateMonths(in *domain.ProjectionInput, tl *timeline.Timeline, start, retirement, end time.Time) ([]domain.ProjectionPoint, *domain.PlanFigures, error) {
	actualsByMonth := make(map[int]*domain.ActualRecord, len(in.Actuals))
	for i := range in.Actuals {
		rec := &in.Actuals[i]
		actualsByMonth[dateutil.MonthIndex(rec.Year, rec.Month)] = rec
	}
	goalsByMonth := make(map[int]decimal.Decimal, len(in.Goals))
	for i := range in.Goals {
		g := &in.Goals[i]
		idx := dateutil.MonthIndex(g.Year, g.Month)
		goalsByMonth[idx] = goalsByMonth[idx].Add(g.Amount)
	}

	total := dateutil.MonthsBetween(start, end) + 1
	points := make([]domain.ProjectionPoint, 0, total)

	balance := *in.Plan.InitialAmount
	planned := balance
	inflationFactor := decimalOne

	var active *domain.MicroPlan
	var monthlyIPCA, monthlyTotal decimal.Decimal
	var figures *domain.PlanFigures

	for i := 0; i < total; i++ {
		cur := dateutil.AddMonths(start, i)

		regime := tl.ResolveActive(cur)
		if active == nil || !dateutil.SameMonth(active.EffectiveDate, regime.EffectiveDate) {
			var err error
			monthlyIPCA, err = finmath.YearlyToMonthly(regime.Inflation)
			if err != nil {
				return nil, nil, err
			}
			monthlyTotal, err = finmath.YearlyToMonthly(finmath.Compound([]decimal.Decimal{regime.ExpectedReturn, regime.Inflation}))
			if err != nil {
				return nil, nil, err
			}
			active = regime
			e.tracer.RegimeResolved(cur, regime)
		}

		if i > 0 {
			inflationFactor = inflationFactor.Mul(decimalOne.Add(monthlyIPCA))
		}

		contribution, withdrawal := decimalZero, decimalZero
		if cur.Before(retirement) {
			contribution = regime.MonthlyDeposit
			if regime.AdjustContributionForInflation {
				contribution = contribution.Mul(inflationFactor)
			}
		} else {
			withdrawal = regime.DesiredIncome
			if regime.AdjustIncomeForInflation {
				withdrawal = withdrawal.Mul(inflationFactor)
			}
		}

		monthIdx := dateutil.MonthIndex(cur.Year(), cur.Month())
		goalDelta := goalsByMonth[monthIdx]

		planned = planned.Mul(decimalOne.Add(monthlyTotal)).Add(contribution).Sub(withdrawal)

		point := domain.ProjectionPoint{
			Year:              cur.Year(),
			Month:             cur.Month(),
			Age:               dateutil.AgeAt(in.BirthDate, cur),
			GoalsEventsImpact: goalDelta,
		}

		if rec, ok := actualsByMonth[monthIdx]; ok {
			// Known history pins the balance; goal deltas are already
			// reflected in the realized ending balance.
			balance = rec.EndingBalance
			point.IsHistorical = true
			point.Contribution = rec.MonthlyContribution
			point.EffectiveRate = rec.MonthlyReturn
			point.IPCARate = monthlyIPCA
			if rec.MonthlyInflation != nil {
				point.IPCARate = *rec.MonthlyInflation
			}
			if dateutil.SameMonth(cur, regime.EffectiveDate) {
				planned = rec.EndingBalance
			}
		} else {
			balance = balance.Mul(decimalOne.Add(monthlyTotal)).Add(contribution).Sub(withdrawal).Add(goalDelta)
			point.Contribution = contribution
			point.Withdrawal = withdrawal
			point.IPCARate = monthlyIPCA
			point.EffectiveRate = monthlyTotal
		}

		point.Balance = balance
		point.PlannedBalance = planned

		if dateutil.SameMonth(cur, retirement) {
			var err error
			figures, err = e.solveFigures(in, tl, retirement)
			if err != nil {
				return nil, nil, err
			}
		}

		e.tracer.MonthSimulated(point)
		points = append(points, point)
	}

	return points, figures, nil
}

// rebaseToPlanStart converts every money field to plan-inception
// purchasing power through the inflation adjuster. Each point's ipca
// rate already mixes observed and assumed inflation, so the whole
// series is handed to the adjuster as observed history.
func rebaseToPlanStart(points []domain.ProjectionPoint) {
	if len(points) == 0 {
		return
	}
	observed := make([]domain.ActualRecord, len(points))
	for i := range points {
		rate := points[i].IPCARate
		observed[i] = domain.ActualRecord{
			Year:             points[i].Year,
			Month:            points[i].Month,
			MonthlyInflation: &rate,
		}
	}

	base := points[0]
	for i := range points {
		p := &points[i]
		factor := InflationFactor(base.Year, base.Month, p.Year, p.Month, decimalZero, observed)
		p.Contribution = p.Contribution.Div(factor)
		p.Withdrawal = p.Withdrawal.Div(factor)
		p.GoalsEventsImpact = p.GoalsEventsImpact.Div(factor)
		p.Balance = p.Balance.Div(factor)
		p.PlannedBalance = p.PlannedBalance.Div(factor)
	}
}

// rollupYears groups the month series into calendar-year buckets:
// flows summed, balances and rates taken from the year's last month.
func rollupYears(points []domain.ProjectionPoint) []domain.YearBucket {
	var years []domain.YearBucket
	for _, p := range points {
		if len(years) == 0 || years[len(years)-1].Year != p.Year {
			years = append(years, domain.YearBucket{Year: p.Year})
		}
		b := &years[len(years)-1]
		b.Age = p.Age
		b.Contribution = b.Contribution.Add(p.Contribution)
		b.Withdrawal = b.Withdrawal.Add(p.Withdrawal)
		b.GoalsEventsImpact = b.GoalsEventsImpact.Add(p.GoalsEventsImpact)
		b.Balance = p.Balance
		b.PlannedBalance = p.PlannedBalance
		b.IPCARate = p.IPCARate
		b.EffectiveRate = p.EffectiveRate
		b.Months = append(b.Months, p)
	}
	return years
}
