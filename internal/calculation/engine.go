// Package calculation drives the month-by-month retirement projection:
// plan-type resolution, inflation rebasing and the projection generator
// itself. Everything here is pure; an engine run is a deterministic
// function of its input snapshot.
package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/internal/finmath"
	"github.com/previplan/previplan/internal/timeline"
	"github.com/previplan/previplan/pkg/dateutil"
)

// Engine generates wealth projections. It holds no state between runs
// beyond the installed tracer; callers own caching and memoization.
type Engine struct {
	tracer Tracer
}

// NewEngine creates an engine with the no-op tracer installed.
func NewEngine() *Engine {
	return &Engine{tracer: NopTracer{}}
}

// SetTracer installs a trace hook. Passing nil restores the no-op
// tracer.
func (e *Engine) SetTracer(t Tracer) {
	if t == nil {
		t = NopTracer{}
	}
	e.tracer = t
}

// Run validates the input snapshot and produces the full projection.
// Validation failures abort the run before any point is computed.
func (e *Engine) Run(in *domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	tl, err := timeline.New(in.Plan, in.MicroPlans)
	if err != nil {
		return nil, err
	}

	start := dateutil.FirstOfMonth(in.Plan.PlanInitialDate)
	retirement := retirementDate(in)
	if !retirement.After(start) {
		return nil, &domain.ValidationError{
			Field:  "final_age",
			Reason: "accumulation must end after the plan initial date",
		}
	}
	end := dateutil.FirstOfMonth(in.BirthDate.AddDate(in.Plan.LimitAge, 0, 0))
	if end.Before(retirement) {
		return nil, &domain.ValidationError{
			Field:  "limit_age",
			Reason: "money must last beyond the accumulation end",
		}
	}
	if _, err := monthsToEndOfMoney(in, retirement); err != nil {
		return nil, err
	}

	points, figures, err := e.generateMonths(in, tl, start, retirement, end)
	if err != nil {
		return nil, err
	}
	if in.RealValues {
		rebaseToPlanStart(points)
	}

	result := &domain.ProjectionResult{
		Currency: in.Plan.Currency,
		Years:    rollupYears(points),
		Figures:  figures,
	}
	if in.ActiveRegimeID != "" {
		if w := tl.CheckActive(in.AsOf, in.ActiveRegimeID); w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
	}
	return result, nil
}

// retirementDate returns the first month of decumulation: the explicit
// accumulation end date when set, otherwise the month the client
// reaches the final age.
func retirementDate(in *domain.ProjectionInput) time.Time {
	if in.Plan.EndAccumulationDate != nil {
		return dateutil.FirstOfMonth(*in.Plan.EndAccumulationDate)
	}
	return dateutil.FirstOfMonth(in.BirthDate.AddDate(*in.Plan.FinalAge, 0, 0))
}

// monthsToEndOfMoney returns the decumulation horizon in months. The
// final age comes from the plan when set, otherwise from the age
// reached at the accumulation end. Checked before the month loop so a
// degenerate horizon never computes partially.
func monthsToEndOfMoney(in *domain.ProjectionInput, retirement time.Time) (int, error) {
	finalAge := dateutil.AgeAt(in.BirthDate, retirement)
	if in.Plan.FinalAge != nil {
		finalAge = *in.Plan.FinalAge
	}
	months := (in.Plan.LimitAge - finalAge) * 12
	if months <= 0 {
		return 0, &domain.ValidationError{
			Field:  "limit_age",
			Reason: "must be greater than the age at the accumulation end",
		}
	}
	return months, nil
}

// solveFigures invokes the plan-type resolver once, at the retirement
// boundary, using the regime that governs the retirement month.
// Months-to-retirement is measured from the as-of month; once the as-of
// date is past the boundary there is no deposit left to solve for.
func (e *Engine) solveFigures(in *domain.ProjectionInput, tl *timeline.Timeline, retirement time.Time) (*domain.PlanFigures, error) {
	months := dateutil.MonthsBetween(dateutil.FirstOfMonth(in.AsOf), retirement)
	if months <= 0 {
		return nil, nil
	}

	monthsToEnd, err := monthsToEndOfMoney(in, retirement)
	if err != nil {
		return nil, err
	}

	regime := tl.ResolveActive(retirement)
	monthlyReturn, err := finmath.YearlyToMonthly(regime.ExpectedReturn)
	if err != nil {
		return nil, err
	}
	monthlyInflation, err := finmath.YearlyToMonthly(regime.Inflation)
	if err != nil {
		return nil, err
	}
	monthlyTotal, err := finmath.YearlyToMonthly(finmath.Compound([]decimal.Decimal{regime.ExpectedReturn, regime.Inflation}))
	if err != nil {
		return nil, err
	}

	legacyAmount := decimal.Zero
	if in.Plan.LegacyAmount != nil {
		legacyAmount = *in.Plan.LegacyAmount
	}

	return ResolvePlanType(PlanTypeInputs{
		Type:                  in.Plan.Type,
		MonthsToRetirement:    months,
		MonthsToEndOfMoney:    monthsToEnd,
		DesiredIncome:         regime.DesiredIncome,
		LegacyAmount:          legacyAmount,
		InitialAmount:         *in.Plan.InitialAmount,
		MonthlyExpectedReturn: monthlyReturn,
		MonthlyInflation:      monthlyInflation,
		MonthlyTotalRate:      monthlyTotal,
	})
}
