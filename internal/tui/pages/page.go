// Package pages holds the screens mounted for each location: the home page
// at "/" and the results page at "/search".
package pages

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

// Page is a mounted screen. The app owns focus and passes it back in when
// rendering; a page only knows which controls it exposes.
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(styles theme.Styles, focus widgets.ControlID) string

	// Controls lists the focusable controls in focus order.
	Controls() []widgets.ControlID
	// DefaultFocus is the control focused after mount or resolution.
	DefaultFocus() widgets.ControlID
	SetFocus(id widgets.ControlID) tea.Cmd
	Activate(id widgets.ControlID) tea.Cmd

	// Placement is the vertical position of the page in the body area.
	Placement() lipgloss.Position
}

// Config carries presentation settings shared by every page.
type Config struct {
	Brand         string
	UnicodeIcons  bool
	FrameInterval time.Duration
	ResolveDelay  time.Duration
	BarWidth      int
	InputWidth    int
}

func (c Config) inputOptions() []widgets.SearchInputOption {
	return []widgets.SearchInputOption{
		widgets.WithUnicodeIcons(c.UnicodeIcons),
		widgets.WithInputWidth(c.InputWidth),
	}
}
