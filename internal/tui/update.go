package tui

import tea "github.com/charmbracelet/bubbletea"

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 6
		if h < 5 {
			h = 5
		}
		m.yearTable.SetHeight(h)
		m.monthTable.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.real != nil {
				m.showReal = !m.showReal
				m.yearTable.SetRows(m.yearRows())
				if m.currentScene == sceneMonths {
					m.monthTable.SetRows(m.monthRows(m.selectedYear))
				}
			}
			return m, nil
		case "enter":
			if m.currentScene == sceneYears {
				m.selectedYear = m.yearTable.Cursor()
				m.monthTable.SetRows(m.monthRows(m.selectedYear))
				m.currentScene = sceneMonths
			}
			return m, nil
		case "esc":
			if m.currentScene == sceneMonths {
				m.currentScene = sceneYears
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.currentScene == sceneYears {
		m.yearTable, cmd = m.yearTable.Update(msg)
	} else {
		m.monthTable, cmd = m.monthTable.Update(msg)
	}
	return m, cmd
}
