package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PlanType identifies the retirement strategy a plan is solved for.
type PlanType int

const (
	// planTypeUnset is the zero value. It is deliberately not a variant:
	// a plan file that never chose a type must fail validation instead
	// of silently defaulting.
	planTypeUnset PlanType = iota
	// PerpetualIncome funds the desired income from the retirement date
	// until the limit age, allowing the principal to be consumed.
	PerpetualIncome
	// LegacyAmount behaves like PerpetualIncome but reserves a fixed
	// amount to be left over at the limit age.
	LegacyAmount
	// PreservePrincipal funds the desired income from returns alone; the
	// principal is never drawn down in the planned path.
	PreservePrincipal
)

var planTypeCodes = map[string]PlanType{
	"perpetual_income":   PerpetualIncome,
	"legacy_amount":      LegacyAmount,
	"preserve_principal": PreservePrincipal,
}

// ParsePlanType maps an external plan-type code onto the closed enum.
// Unrecognized codes fail with UnknownPlanTypeError rather than
// falling back to a default variant.
func ParsePlanType(code string) (PlanType, error) {
	pt, ok := planTypeCodes[code]
	if !ok {
		return 0, &UnknownPlanTypeError{Code: code}
	}
	return pt, nil
}

func (pt PlanType) String() string {
	switch pt {
	case PerpetualIncome:
		return "perpetual_income"
	case LegacyAmount:
		return "legacy_amount"
	case PreservePrincipal:
		return "preserve_principal"
	}
	return "unknown"
}

// UnmarshalYAML decodes the string code form used in plan files.
func (pt *PlanType) UnmarshalYAML(value *yaml.Node) error {
	var code string
	if err := value.Decode(&code); err != nil {
		return err
	}
	parsed, err := ParsePlanType(code)
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// MarshalYAML encodes the string code form.
func (pt PlanType) MarshalYAML() (interface{}, error) {
	return pt.String(), nil
}

// MarshalJSON encodes the string code form.
func (pt PlanType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + pt.String() + `"`), nil
}

// Plan is the immutable top-level description of a client's retirement
// plan. Required numeric fields are pointers so the configuration layer
// can distinguish an absent value from a legitimate zero.
//
// The legacy parameter block (monthly_deposit through inflation) is
// only consulted when the plan carries no micro-plans; the timeline
// synthesizes a base regime from it so downstream code never
// special-cases an empty regime list.
type Plan struct {
	InitialAmount       *decimal.Decimal `yaml:"initial_amount" json:"initial_amount"`
	PlanInitialDate     time.Time        `yaml:"plan_initial_date" json:"plan_initial_date"`
	FinalAge            *int             `yaml:"final_age,omitempty" json:"final_age,omitempty"`
	EndAccumulationDate *time.Time       `yaml:"plan_end_accumulation_date,omitempty" json:"plan_end_accumulation_date,omitempty"`
	LimitAge            int              `yaml:"limit_age" json:"limit_age"`
	LegacyAmount        *decimal.Decimal `yaml:"legacy_amount,omitempty" json:"legacy_amount,omitempty"`
	Type                PlanType         `yaml:"plan_type" json:"plan_type"`
	Currency            string           `yaml:"currency,omitempty" json:"currency,omitempty"`

	// Legacy single-regime parameters, used only to synthesize the base
	// regime when micro_plans is empty.
	MonthlyDeposit *decimal.Decimal `yaml:"monthly_deposit,omitempty" json:"monthly_deposit,omitempty"`
	DesiredIncome  *decimal.Decimal `yaml:"desired_income,omitempty" json:"desired_income,omitempty"`
	ExpectedReturn *decimal.Decimal `yaml:"expected_return,omitempty" json:"expected_return,omitempty"`
	Inflation      *decimal.Decimal `yaml:"inflation,omitempty" json:"inflation,omitempty"`

	AdjustContributionForInflation bool `yaml:"adjust_contribution_for_inflation,omitempty" json:"adjust_contribution_for_inflation,omitempty"`
	AdjustIncomeForInflation       bool `yaml:"adjust_income_for_inflation,omitempty" json:"adjust_income_for_inflation,omitempty"`
}

// MicroPlan is one time-bounded parameter regime, effective from its
// date until superseded by a later regime. Rates are annual fractions
// (0.04 means 4% a year).
type MicroPlan struct {
	ID             string          `yaml:"id,omitempty" json:"id,omitempty"`
	EffectiveDate  time.Time       `yaml:"effective_date" json:"effective_date"`
	MonthlyDeposit decimal.Decimal `yaml:"monthly_deposit" json:"monthly_deposit"`
	DesiredIncome  decimal.Decimal `yaml:"desired_income" json:"desired_income"`
	ExpectedReturn decimal.Decimal `yaml:"expected_return" json:"expected_return"`
	Inflation      decimal.Decimal `yaml:"inflation" json:"inflation"`

	AdjustContributionForInflation bool `yaml:"adjust_contribution_for_inflation,omitempty" json:"adjust_contribution_for_inflation,omitempty"`
	AdjustIncomeForInflation       bool `yaml:"adjust_income_for_inflation,omitempty" json:"adjust_income_for_inflation,omitempty"`
}

// ActualRecord is one already-realized month of account history. The
// engine reads these, it never fabricates them. MonthlyInflation is the
// observed inflation for the month when the data source provides it.
type ActualRecord struct {
	Year                int              `yaml:"year" json:"year"`
	Month               time.Month       `yaml:"month" json:"month"`
	StartingBalance     decimal.Decimal  `yaml:"starting_balance" json:"starting_balance"`
	EndingBalance       decimal.Decimal  `yaml:"ending_balance" json:"ending_balance"`
	MonthlyContribution decimal.Decimal  `yaml:"monthly_contribution" json:"monthly_contribution"`
	MonthlyReturn       decimal.Decimal  `yaml:"monthly_return" json:"monthly_return"`
	MonthlyInflation    *decimal.Decimal `yaml:"monthly_inflation,omitempty" json:"monthly_inflation,omitempty"`
}

// GoalEventStatus is the lifecycle state of a one-off goal or event.
type GoalEventStatus string

const (
	GoalPending   GoalEventStatus = "pending"
	GoalCompleted GoalEventStatus = "completed"
)

// GoalEvent is a one-off signed cash flow attached to a single month.
type GoalEvent struct {
	Name   string          `yaml:"name,omitempty" json:"name,omitempty"`
	Year   int             `yaml:"year" json:"year"`
	Month  time.Month      `yaml:"month" json:"month"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Status GoalEventStatus `yaml:"status" json:"status"`
}
