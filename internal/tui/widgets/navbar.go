package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// NavBar is the results page header: a small inert logo, the search input
// seeded with the resolved query, and a settings control.
type NavBar struct {
	logo    Logo
	input   SearchInput
	unicode bool
}

// NewNavBar builds the bar around query.
func NewNavBar(query string, brand string, opts ...SearchInputOption) NavBar {
	input := NewSearchInput(query, opts...)
	return NavBar{
		logo:    NewLogo(WithSize(SizeSM), WithRedirect(""), WithBrand(brand)),
		input:   input,
		unicode: input.unicode,
	}
}

// Logo returns the bar's logo.
func (n NavBar) Logo() Logo {
	return n.logo
}

// Input returns the bar's search input.
func (n NavBar) Input() SearchInput {
	return n.input
}

// Controls lists the focusable controls in order.
func (n NavBar) Controls() []ControlID {
	return []ControlID{ControlLogo, ControlInput, ControlSearchIcon, ControlSettings}
}

// Focus moves keyboard focus to id. Only the input takes key input.
func (n NavBar) Focus(id ControlID) (NavBar, tea.Cmd) {
	if id == ControlInput {
		return n, n.input.Focus()
	}
	n.input.Blur()
	return n, nil
}

// Activate performs the click action of id.
func (n NavBar) Activate(id ControlID) tea.Cmd {
	switch id {
	case ControlLogo:
		return n.logo.Click()
	case ControlSearchIcon:
		return n.input.ActivateIcon()
	case ControlSettings:
		return emit(SettingsRequestedMsg{})
	default:
		return nil
	}
}

// Update forwards a message to the search input.
func (n NavBar) Update(msg tea.Msg) (NavBar, tea.Cmd) {
	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// View renders the bar on one row.
func (n NavBar) View(styles theme.Styles, focus ControlID) string {
	settings := IconButton{Glyph: "⚙", Fallback: "[settings]", Unicode: n.unicode}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		n.logo.View(styles, focus == ControlLogo),
		"  ",
		n.input.View(styles),
		n.input.IconView(styles, focus == ControlSearchIcon),
		"  ",
		settings.View(styles, focus == ControlSettings),
	)
}
