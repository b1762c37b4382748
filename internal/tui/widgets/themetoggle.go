package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// ThemeToggle flips the session theme. It is mounted once by the app.
type ThemeToggle struct {
	provider theme.Provider
	unicode  bool
}

// NewThemeToggle creates a toggle bound to provider.
func NewThemeToggle(provider theme.Provider, unicode bool) ThemeToggle {
	return ThemeToggle{provider: provider, unicode: unicode}
}

func (t ThemeToggle) button() IconButton {
	if t.provider.Current() == theme.Dark {
		return IconButton{Glyph: "☾", Fallback: "[D]", Unicode: t.unicode}
	}
	return IconButton{Glyph: "☀", Fallback: "[L]", Unicode: t.unicode}
}

// Icon returns the glyph for the active theme.
func (t ThemeToggle) Icon() string {
	return t.button().Label()
}

// Click toggles the provider and reports the new value.
func (t ThemeToggle) Click() tea.Cmd {
	t.provider.Toggle()
	return emit(ThemeChangedMsg{Value: t.provider.Current()})
}

// View renders the toggle icon.
func (t ThemeToggle) View(styles theme.Styles, focused bool) string {
	return t.button().View(styles, focused)
}
