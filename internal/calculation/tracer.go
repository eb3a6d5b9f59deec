package calculation

import (
	"time"

	"github.com/previplan/previplan/internal/domain"
)

// Tracer receives structured notifications at defined boundaries of a
// projection run. It is never part of control flow; the engine behaves
// identically with the no-op tracer installed.
type Tracer interface {
	// RegimeResolved fires whenever the month loop switches to a new
	// active regime.
	RegimeResolved(date time.Time, regime *domain.MicroPlan)
	// MonthSimulated fires after each month's point is produced.
	MonthSimulated(point domain.ProjectionPoint)
}

// NopTracer discards all trace events.
type NopTracer struct{}

func (NopTracer) RegimeResolved(time.Time, *domain.MicroPlan) {}
func (NopTracer) MonthSimulated(domain.ProjectionPoint)       {}
