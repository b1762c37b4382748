package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

// Home is the landing page: a large logo above an empty search input.
type Home struct {
	logo  widgets.Logo
	input widgets.SearchInput
}

// NewHome builds the landing page.
func NewHome(cfg Config) *Home {
	return &Home{
		logo:  widgets.NewLogo(widgets.WithSize(widgets.SizeXXL), widgets.WithBrand(cfg.Brand)),
		input: widgets.NewSearchInput("", cfg.inputOptions()...),
	}
}

// Input returns the page's search input.
func (h *Home) Input() widgets.SearchInput {
	return h.input
}

func (h *Home) Init() tea.Cmd {
	return nil
}

func (h *Home) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return cmd
}

func (h *Home) Controls() []widgets.ControlID {
	return []widgets.ControlID{widgets.ControlLogo, widgets.ControlInput, widgets.ControlSearchIcon}
}

func (h *Home) DefaultFocus() widgets.ControlID {
	return widgets.ControlInput
}

func (h *Home) SetFocus(id widgets.ControlID) tea.Cmd {
	if id == widgets.ControlInput {
		return h.input.Focus()
	}
	h.input.Blur()
	return nil
}

func (h *Home) Activate(id widgets.ControlID) tea.Cmd {
	switch id {
	case widgets.ControlLogo:
		return h.logo.Click()
	case widgets.ControlSearchIcon:
		return h.input.ActivateIcon()
	default:
		return nil
	}
}

func (h *Home) Placement() lipgloss.Position {
	return lipgloss.Center
}

func (h *Home) View(styles theme.Styles, focus widgets.ControlID) string {
	search := lipgloss.JoinHorizontal(
		lipgloss.Center,
		h.input.View(styles),
		h.input.IconView(styles, focus == widgets.ControlSearchIcon),
	)
	return lipgloss.JoinVertical(
		lipgloss.Center,
		h.logo.View(styles, focus == widgets.ControlLogo),
		"",
		search,
	)
}

var _ Page = (*Home)(nil)
