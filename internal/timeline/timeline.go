// Package timeline maintains the ordered sequence of effective-dated
// parameter regimes ("micro-plans") and resolves which regime governs
// any given month.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/previplan/previplan/internal/domain"
	"github.com/previplan/previplan/pkg/dateutil"
)

// DuplicateEffectiveDateError reports a regime insert or edit whose
// (year, month) collides with an existing regime.
type DuplicateEffectiveDateError struct {
	Year  int
	Month time.Month
}

func (e *DuplicateEffectiveDateError) Error() string {
	return fmt.Sprintf("a micro-plan already takes effect in %04d-%02d", e.Year, int(e.Month))
}

// Timeline is a validated, ascending sequence of regimes. The earliest
// regime (the base regime) always takes effect at the plan's initial
// date.
type Timeline struct {
	regimes []domain.MicroPlan
}

// New builds a timeline from a plan's regimes. When the plan carries no
// micro-plans, exactly one base regime is synthesized from the plan's
// own legacy parameter fields so downstream code never special-cases an
// empty list. Effective dates are normalized to the first of the month.
func New(plan *domain.Plan, regimes []domain.MicroPlan) (*Timeline, error) {
	if plan == nil {
		return nil, &domain.ValidationError{Field: "plan", Reason: "is required"}
	}
	if len(regimes) == 0 {
		base, err := synthesizeBase(plan)
		if err != nil {
			return nil, err
		}
		regimes = []domain.MicroPlan{base}
	}

	sorted := make([]domain.MicroPlan, len(regimes))
	copy(sorted, regimes)
	for i := range sorted {
		sorted[i].EffectiveDate = dateutil.FirstOfMonth(sorted[i].EffectiveDate)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveDate.Before(sorted[j].EffectiveDate)
	})

	for i := 1; i < len(sorted); i++ {
		if dateutil.SameMonth(sorted[i].EffectiveDate, sorted[i-1].EffectiveDate) {
			d := sorted[i].EffectiveDate
			return nil, &DuplicateEffectiveDateError{Year: d.Year(), Month: d.Month()}
		}
	}

	if !dateutil.SameMonth(sorted[0].EffectiveDate, plan.PlanInitialDate) {
		return nil, &domain.ValidationError{
			Field:  "micro_plans",
			Reason: "earliest regime must take effect at the plan initial date",
		}
	}

	return &Timeline{regimes: sorted}, nil
}

func synthesizeBase(plan *domain.Plan) (domain.MicroPlan, error) {
	if plan.DesiredIncome == nil || plan.ExpectedReturn == nil || plan.Inflation == nil {
		return domain.MicroPlan{}, &domain.ValidationError{
			Field:  "micro_plans",
			Reason: "plan has no regimes and no legacy parameters to synthesize one from",
		}
	}
	deposit := decimal.Zero
	if plan.MonthlyDeposit != nil {
		deposit = *plan.MonthlyDeposit
	}
	return domain.MicroPlan{
		ID:                             "base",
		EffectiveDate:                  dateutil.FirstOfMonth(plan.PlanInitialDate),
		MonthlyDeposit:                 deposit,
		DesiredIncome:                  *plan.DesiredIncome,
		ExpectedReturn:                 *plan.ExpectedReturn,
		Inflation:                      *plan.Inflation,
		AdjustContributionForInflation: plan.AdjustContributionForInflation,
		AdjustIncomeForInflation:       plan.AdjustIncomeForInflation,
	}, nil
}

// Regimes returns the regimes in ascending effective-date order.
func (tl *Timeline) Regimes() []domain.MicroPlan {
	out := make([]domain.MicroPlan, len(tl.regimes))
	copy(out, tl.regimes)
	return out
}

// Len returns the number of regimes.
func (tl *Timeline) Len() int { return len(tl.regimes) }

// ResolveActive returns the regime with the greatest effective date not
// after the given date, or nil when the date precedes the earliest
// regime. Resolution is monotonic: a later query date never resolves an
// earlier regime.
func (tl *Timeline) ResolveActive(date time.Time) *domain.MicroPlan {
	month := dateutil.FirstOfMonth(date)
	// First index whose effective date is after the query month.
	idx := sort.Search(len(tl.regimes), func(i int) bool {
		return tl.regimes[i].EffectiveDate.After(month)
	})
	if idx == 0 {
		return nil
	}
	return &tl.regimes[idx-1]
}

// ValidateInsert rejects a candidate effective date whose (year, month)
// collides with an existing regime other than the one being edited.
func (tl *Timeline) ValidateInsert(candidate time.Time, excludeID string) error {
	for i := range tl.regimes {
		r := &tl.regimes[i]
		if excludeID != "" && r.ID == excludeID {
			continue
		}
		if dateutil.SameMonth(r.EffectiveDate, candidate) {
			return &DuplicateEffectiveDateError{Year: candidate.Year(), Month: candidate.Month()}
		}
	}
	return nil
}

// Insert validates and adds a regime, keeping the sequence ordered. On
// error the timeline is unchanged.
func (tl *Timeline) Insert(mp domain.MicroPlan) error {
	if err := tl.ValidateInsert(mp.EffectiveDate, ""); err != nil {
		return err
	}
	mp.EffectiveDate = dateutil.FirstOfMonth(mp.EffectiveDate)
	tl.regimes = append(tl.regimes, mp)
	sort.Slice(tl.regimes, func(i, j int) bool {
		return tl.regimes[i].EffectiveDate.Before(tl.regimes[j].EffectiveDate)
	})
	return nil
}

// Remove deletes a regime by id. The base regime cannot be removed
// while later regimes exist.
func (tl *Timeline) Remove(id string) error {
	for i := range tl.regimes {
		if tl.regimes[i].ID != id {
			continue
		}
		if i == 0 && len(tl.regimes) > 1 {
			return &domain.ValidationError{
				Field:  "micro_plans",
				Reason: "base regime cannot be removed while other regimes exist",
			}
		}
		tl.regimes = append(tl.regimes[:i], tl.regimes[i+1:]...)
		return nil
	}
	return &domain.ValidationError{Field: "micro_plans", Reason: fmt.Sprintf("no regime with id %q", id)}
}

// CheckActive compares the regime the caller flags as active against
// what the timeline resolves at the as-of date. A mismatch is reported
// as a non-fatal warning, never an error.
func (tl *Timeline) CheckActive(asOf time.Time, flaggedID string) *domain.StaleActiveRegimeWarning {
	resolved := tl.ResolveActive(asOf)
	if resolved == nil || resolved.ID == flaggedID {
		return nil
	}
	return &domain.StaleActiveRegimeWarning{
		FlaggedID:    flaggedID,
		ResolvedID:   resolved.ID,
		ResolvedDate: resolved.EffectiveDate,
	}
}
