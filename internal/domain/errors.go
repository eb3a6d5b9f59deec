package domain

import (
	"fmt"
	"time"
)

// ValidationError reports a required input that is absent or out of
// range. It is raised before any computation; the engine never
// computes partially on incomplete input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid plan input: %s %s", e.Field, e.Reason)
}

// UnknownPlanTypeError reports a plan-type code outside the closed
// enum. This replaces the silent zero-fallback older clients relied on.
type UnknownPlanTypeError struct {
	Code string
}

func (e *UnknownPlanTypeError) Error() string {
	return fmt.Sprintf("unknown plan type %q", e.Code)
}

// StaleActiveRegimeWarning is surfaced when the regime the caller
// flagged as active disagrees with what the timeline resolves at the
// as-of date. It is returned alongside results, never raised.
type StaleActiveRegimeWarning struct {
	FlaggedID    string
	ResolvedID   string
	ResolvedDate time.Time
}

func (w StaleActiveRegimeWarning) Warning() string {
	return fmt.Sprintf("regime %q is flagged active but the timeline resolves %q (effective %s) at the as-of date",
		w.FlaggedID, w.ResolvedID, w.ResolvedDate.Format("2006-01"))
}
