package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	mode := "nominal"
	if m.showReal {
		mode = "real (plan-inception purchasing power)"
	}

	switch m.currentScene {
	case sceneYears:
		b.WriteString(titleStyle.Render("Projection by year") + "  " + modeStyle.Render(mode))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(m.yearTable.View()))
		b.WriteString("\n" + helpStyle.Render("enter: months  r: real/nominal  q: quit"))
	case sceneMonths:
		res := m.result()
		year := ""
		if m.selectedYear >= 0 && m.selectedYear < len(res.Years) {
			year = fmt.Sprintf("%d", res.Years[m.selectedYear].Year)
		}
		b.WriteString(titleStyle.Render("Months of "+year) + "  " + modeStyle.Render(mode))
		b.WriteString("\n\n")
		b.WriteString(tableStyle.Render(m.monthTable.View()))
		b.WriteString("\n" + helpStyle.Render("esc: back  r: real/nominal  q: quit"))
	}

	return b.String()
}
