package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

// View renders the current model state
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.width < minWidth || m.height < minHeight {
		return m.renderErrorBanner()
	}

	header := m.renderHeader()
	footer := m.renderFooter()

	sections := []string{header}
	if m.showError {
		sections = append(sections, m.renderErrorBanner())
	}

	used := lipgloss.Height(footer)
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	bodyHeight := m.height - used
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := lipgloss.Place(
		m.width, bodyHeight,
		lipgloss.Center, m.page.Placement(),
		m.page.View(m.styles, m.focus),
		lipgloss.WithWhitespaceBackground(m.styles.Palette.Surface.Base),
	)
	sections = append(sections, body, footer)

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderHeader overlays the theme toggle at the top-right.
func (m Model) renderHeader() string {
	toggle := m.toggle.View(m.styles, m.focus == widgets.ControlThemeToggle)
	return lipgloss.PlaceHorizontal(
		m.width, lipgloss.Right, toggle,
		lipgloss.WithWhitespaceBackground(m.styles.Palette.Surface.Base),
	)
}

// renderFooter renders the key hints
func (m Model) renderFooter() string {
	return m.styles.Footer.Width(m.width).Render(m.help.View(m.keys))
}

// renderErrorBanner renders an error message banner
func (m Model) renderErrorBanner() string {
	return m.styles.Banner.Render(m.errorMsg)
}
