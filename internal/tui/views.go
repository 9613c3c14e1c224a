package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/dextrack/internal/tui/styles"
)

// View renders the whole screen
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if !m.loaded {
		return styles.DimStyle.Render("Reading collection...")
	}

	var body string
	if m.onOverview() {
		body = m.dashboard.View()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.inspector.View())
	}

	parts := []string{m.renderTabs(), body, m.renderFooter()}
	if m.showHelp {
		parts = append(parts, m.help.FullHelpView(m.keys.FullHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) renderTabs() string {
	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		if i == m.tab {
			rendered[i] = styles.ActiveTabStyle.Render(t.name)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(t.name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderFooter() string {
	if m.status != "" {
		style := styles.SuccessStyle
		if m.statusIsErr {
			style = styles.ErrorStyle
		}
		return styles.StatusBarStyle.Render(style.Render(m.status))
	}
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if !m.list.ShowLocked() && !m.onOverview() {
		hints = strings.TrimSpace(hints) + styles.DimStyle.Render("  (locked hidden)")
	}
	return styles.StatusBarStyle.Render(hints)
}
