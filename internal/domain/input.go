package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionInput is the immutable snapshot an engine run reads. AsOf
// is always supplied explicitly by the caller so identical inputs
// always produce identical output; the engine never reads the clock.
type ProjectionInput struct {
	Plan           *Plan          `yaml:"plan" json:"plan"`
	MicroPlans     []MicroPlan    `yaml:"micro_plans,omitempty" json:"micro_plans,omitempty"`
	Actuals        []ActualRecord `yaml:"actual_records,omitempty" json:"actual_records,omitempty"`
	Goals          []GoalEvent    `yaml:"goal_events,omitempty" json:"goal_events,omitempty"`
	BirthDate      time.Time      `yaml:"birth_date" json:"birth_date"`
	AsOf           time.Time      `yaml:"as_of_date" json:"as_of_date"`
	ActiveRegimeID string         `yaml:"active_regime_id,omitempty" json:"active_regime_id,omitempty"`

	// RealValues switches the output to plan-inception purchasing power
	// via the inflation adjuster. Display concern only.
	RealValues bool `yaml:"-" json:"-"`
}

// Validate checks the preconditions the generator requires. It returns
// the first problem found as a *ValidationError; the engine refuses to
// compute partially on incomplete input.
func (in *ProjectionInput) Validate() error {
	if in.Plan == nil {
		return &ValidationError{Field: "plan", Reason: "is required"}
	}
	p := in.Plan
	if p.Type == planTypeUnset {
		return &ValidationError{Field: "plan_type", Reason: "is required"}
	}
	if p.InitialAmount == nil {
		return &ValidationError{Field: "initial_amount", Reason: "is required"}
	}
	if p.InitialAmount.LessThan(decimal.Zero) {
		return &ValidationError{Field: "initial_amount", Reason: "cannot be negative"}
	}
	if p.PlanInitialDate.IsZero() {
		return &ValidationError{Field: "plan_initial_date", Reason: "is required"}
	}
	if p.FinalAge == nil && p.EndAccumulationDate == nil {
		return &ValidationError{Field: "final_age", Reason: "or plan_end_accumulation_date is required"}
	}
	if p.LimitAge <= 0 {
		return &ValidationError{Field: "limit_age", Reason: "is required"}
	}
	if p.FinalAge != nil && p.LimitAge <= *p.FinalAge {
		return &ValidationError{Field: "limit_age", Reason: "must be greater than final_age"}
	}
	if p.Type == LegacyAmount {
		if p.LegacyAmount == nil {
			return &ValidationError{Field: "legacy_amount", Reason: "is required for the legacy_amount plan type"}
		}
		if p.LegacyAmount.LessThanOrEqual(decimal.Zero) {
			return &ValidationError{Field: "legacy_amount", Reason: "must be positive"}
		}
	}
	if in.BirthDate.IsZero() {
		return &ValidationError{Field: "birth_date", Reason: "is required"}
	}
	if in.AsOf.IsZero() {
		return &ValidationError{Field: "as_of_date", Reason: "is required"}
	}

	if len(in.MicroPlans) == 0 {
		// The base regime will be synthesized from the plan's legacy
		// fields; they must all be present.
		if p.DesiredIncome == nil {
			return &ValidationError{Field: "desired_income", Reason: "is required"}
		}
		if p.ExpectedReturn == nil {
			return &ValidationError{Field: "expected_return", Reason: "is required"}
		}
		if p.Inflation == nil {
			return &ValidationError{Field: "inflation", Reason: "is required"}
		}
	}

	negOne := decimal.NewFromInt(-1)
	for i := range in.MicroPlans {
		mp := &in.MicroPlans[i]
		if mp.EffectiveDate.IsZero() {
			return &ValidationError{Field: "micro_plans.effective_date", Reason: "is required"}
		}
		if mp.ExpectedReturn.LessThanOrEqual(negOne) {
			return &ValidationError{Field: "micro_plans.expected_return", Reason: "must be greater than -100%"}
		}
		if mp.Inflation.LessThanOrEqual(negOne) {
			return &ValidationError{Field: "micro_plans.inflation", Reason: "must be greater than -100%"}
		}
	}

	for i := range in.Actuals {
		a := &in.Actuals[i]
		if a.Month < time.January || a.Month > time.December {
			return &ValidationError{Field: "actual_records.month", Reason: "must be between 1 and 12"}
		}
	}
	for i := range in.Goals {
		g := &in.Goals[i]
		if g.Month < time.January || g.Month > time.December {
			return &ValidationError{Field: "goal_events.month", Reason: "must be between 1 and 12"}
		}
		if g.Status != GoalPending && g.Status != GoalCompleted {
			return &ValidationError{Field: "goal_events.status", Reason: "must be 'pending' or 'completed'"}
		}
	}

	return nil
}
