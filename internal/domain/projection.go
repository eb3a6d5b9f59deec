package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionPoint is one simulated month. Balance follows the
// actual-anchored path; PlannedBalance is the pure projection that
// ignores actual history, so consumers can chart the variance between
// the two. Rates are the monthly rates in effect for the month.
type ProjectionPoint struct {
	Year              int             `json:"year"`
	Month             time.Month      `json:"month"`
	Age               int             `json:"age"`
	Contribution      decimal.Decimal `json:"contribution"`
	Withdrawal        decimal.Decimal `json:"withdrawal"`
	GoalsEventsImpact decimal.Decimal `json:"goalsEventsImpact"`
	Balance           decimal.Decimal `json:"balance"`
	PlannedBalance    decimal.Decimal `json:"plannedBalance"`
	IPCARate          decimal.Decimal `json:"ipcaRate"`
	EffectiveRate     decimal.Decimal `json:"effectiveRate"`
	IsHistorical      bool            `json:"isHistorical"`
}

// CashFlow returns the signed net flow for the month: contributions
// positive, withdrawals negative.
func (p ProjectionPoint) CashFlow() decimal.Decimal {
	return p.Contribution.Sub(p.Withdrawal)
}

// Variance returns balance minus planned balance.
func (p ProjectionPoint) Variance() decimal.Decimal {
	return p.Balance.Sub(p.PlannedBalance)
}

// YearBucket rolls a calendar year of points up for year-level
// consumers. Flows are summed over the year; balances and rates carry
// the values of the year's last simulated month.
type YearBucket struct {
	Year              int               `json:"year"`
	Age               int               `json:"age"`
	Contribution      decimal.Decimal   `json:"contribution"`
	Withdrawal        decimal.Decimal   `json:"withdrawal"`
	GoalsEventsImpact decimal.Decimal   `json:"goalsEventsImpact"`
	Balance           decimal.Decimal   `json:"balance"`
	PlannedBalance    decimal.Decimal   `json:"plannedBalance"`
	IPCARate          decimal.Decimal   `json:"ipcaRate"`
	EffectiveRate     decimal.Decimal   `json:"effectiveRate"`
	Months            []ProjectionPoint `json:"months"`
}

// Variance returns balance minus planned balance at year end.
func (b YearBucket) Variance() decimal.Decimal {
	return b.Balance.Sub(b.PlannedBalance)
}

// IllustrativeFigures are the display-only breakdown values derived for
// a plan-type variant. They are descriptive, not actual cash flows.
type IllustrativeFigures struct {
	NecessaryFutureValue    decimal.Decimal `json:"necessaryFutureValue"`
	NecessaryMonthlyDeposit decimal.Decimal `json:"necessaryMonthlyDeposit"`
}

// PlanFigures are the derived figures for a plan at its retirement
// boundary. Illustrative is nil for the LegacyAmount variant, whose
// illustrative pair is deliberately not implemented.
type PlanFigures struct {
	PresentValue           decimal.Decimal      `json:"presentValue"`
	TargetFutureValue      decimal.Decimal      `json:"targetFutureValue"`
	RequiredMonthlyDeposit decimal.Decimal      `json:"requiredMonthlyDeposit"`
	RealReturnComponent    decimal.Decimal      `json:"realReturnComponent"`
	InflationComponent     decimal.Decimal      `json:"inflationComponent"`
	Illustrative           *IllustrativeFigures `json:"illustrative,omitempty"`
}

// ProjectionResult is the full output of one engine run. It is created
// fresh on every run and never mutated afterwards; the engine keeps no
// state between runs.
type ProjectionResult struct {
	Currency string                     `json:"currency,omitempty"`
	Years    []YearBucket               `json:"years"`
	Figures  *PlanFigures               `json:"figures,omitempty"`
	Warnings []StaleActiveRegimeWarning `json:"warnings,omitempty"`
}

// Points flattens the yearly buckets back into the month series.
func (r *ProjectionResult) Points() []ProjectionPoint {
	var points []ProjectionPoint
	for _, y := range r.Years {
		points = append(points, y.Months...)
	}
	return points
}
