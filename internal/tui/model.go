// Package tui is a read-only terminal browser over a projection
// result: a yearly table that drills down into each year's months.
package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/previplan/previplan/internal/domain"
)

type scene int

const (
	sceneYears scene = iota
	sceneMonths
)

// Model holds the browser state. The nominal and real results are both
// precomputed by the caller; the browser only switches between them.
type Model struct {
	nominal *domain.ProjectionResult
	real    *domain.ProjectionResult

	currentScene scene
	showReal     bool
	selectedYear int

	yearTable  table.Model
	monthTable table.Model

	width  int
	height int
}

// NewModel creates the browser over a nominal result and its
// inflation-rebased counterpart. The real result may be nil, which
// disables the toggle.
func NewModel(nominal, real *domain.ProjectionResult) Model {
	m := Model{
		nominal:      nominal,
		real:         real,
		currentScene: sceneYears,
	}

	yearColumns := []table.Column{
		{Title: "Year", Width: 6},
		{Title: "Age", Width: 5},
		{Title: "Contrib", Width: 14},
		{Title: "Withdrawn", Width: 14},
		{Title: "Balance", Width: 16},
		{Title: "Planned", Width: 16},
	}
	m.yearTable = table.New(
		table.WithColumns(yearColumns),
		table.WithRows(m.yearRows()),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	monthColumns := []table.Column{
		{Title: "Month", Width: 8},
		{Title: "Flow", Width: 14},
		{Title: "Goals", Width: 12},
		{Title: "Balance", Width: 16},
		{Title: "Planned", Width: 16},
		{Title: "Hist", Width: 5},
	}
	m.monthTable = table.New(
		table.WithColumns(monthColumns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	return m
}

func (m Model) result() *domain.ProjectionResult {
	if m.showReal && m.real != nil {
		return m.real
	}
	return m.nominal
}

func (m Model) yearRows() []table.Row {
	res := m.result()
	rows := make([]table.Row, len(res.Years))
	for i, y := range res.Years {
		rows[i] = table.Row{
			strconv.Itoa(y.Year),
			strconv.Itoa(y.Age),
			y.Contribution.StringFixed(2),
			y.Withdrawal.StringFixed(2),
			y.Balance.StringFixed(2),
			y.PlannedBalance.StringFixed(2),
		}
	}
	return rows
}

func (m Model) monthRows(yearIdx int) []table.Row {
	res := m.result()
	if yearIdx < 0 || yearIdx >= len(res.Years) {
		return nil
	}
	months := res.Years[yearIdx].Months
	rows := make([]table.Row, len(months))
	for i, p := range months {
		hist := ""
		if p.IsHistorical {
			hist = "yes"
		}
		rows[i] = table.Row{
			p.Month.String()[:3],
			p.CashFlow().StringFixed(2),
			p.GoalsEventsImpact.StringFixed(2),
			p.Balance.StringFixed(2),
			p.PlannedBalance.StringFixed(2),
			hist,
		}
	}
	return rows
}
