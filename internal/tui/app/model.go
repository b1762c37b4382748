// Package app is the root Bubble Tea model. It owns the router, the mounted
// page, the focus ring and the search flow tracker.
package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/logger"
	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/pages"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

const (
	minWidth  = 40
	minHeight = 12
)

// ThemeSource is the session theme. Set replaces the value when the store
// changes underneath it.
type ThemeSource interface {
	theme.Provider
	Set(v theme.Value) bool
	Persist() error
}

// Options configures the application.
type Options struct {
	StartURL      string
	Brand         string
	UnicodeIcons  bool
	FrameInterval time.Duration
	ResolveDelay  time.Duration
	BarWidth      int

	Logger  *logger.Logger
	Watcher ThemeWatcher
}

// Model is the root application model.
type Model struct {
	// Navigation
	router *router.Router
	page   pages.Page
	seq    uint64
	flow   search.Flow

	// Theme
	theme  ThemeSource
	styles theme.Styles
	toggle widgets.ThemeToggle

	// UI state
	focus     widgets.ControlID
	keys      KeyMap
	help      help.Model
	showError bool
	errorMsg  string

	// Dimensions
	width  int
	height int

	// Configuration
	pageConfig pages.Config
	watcher    ThemeWatcher
	log        *logger.Logger
}

// NewModel creates the application at opts.StartURL, or "/" when unset.
func NewModel(source ThemeSource, opts Options) (Model, error) {
	if source == nil {
		return Model{}, fmt.Errorf("theme source is required")
	}

	start := opts.StartURL
	if start == "" {
		start = "/"
	}
	loc, err := router.Parse(start)
	if err != nil {
		return Model{}, fmt.Errorf("start location: %w", err)
	}

	m := Model{
		router: router.New(loc),
		flow:   search.NewFlow(),
		theme:  source,
		toggle: widgets.NewThemeToggle(source, opts.UnicodeIcons),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
		pageConfig: pages.Config{
			Brand:         opts.Brand,
			UnicodeIcons:  opts.UnicodeIcons,
			FrameInterval: opts.FrameInterval,
			ResolveDelay:  opts.ResolveDelay,
			BarWidth:      opts.BarWidth,
		},
		watcher: opts.Watcher,
		log:     opts.Logger.WithComponent("app"),
	}
	m.applyTheme(source.Current())
	m.mount(loc, router.OriginStart)

	return m, nil
}

// Init starts the mounted page and the theme watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.page.Init(),
		m.page.SetFocus(m.focus),
		waitForThemeChangeCmd(m.watcher),
	)
}

// Location returns the current router location.
func (m Model) Location() router.Location {
	return m.router.Current()
}

// Page returns the mounted page.
func (m Model) Page() pages.Page {
	return m.page
}

// Focus returns the focused control.
func (m Model) Focus() widgets.ControlID {
	return m.focus
}

// FlowState returns the search flow state.
func (m Model) FlowState() search.State {
	return m.flow.State()
}

// Helper Methods

// mount replaces the page for loc. Every mount starts a new navigation
// sequence so results resolved for an earlier page are dropped.
func (m *Model) mount(loc router.Location, origin router.Origin) {
	m.seq++
	m.showError = false
	m.errorMsg = ""

	switch loc.Path {
	case search.ResultsPath:
		m.page = pages.NewSearch(m.pageConfig, m.seq, loc)
		m.fireFlow(search.ResultsOpened)
	case "/":
		m.page = pages.NewHome(m.pageConfig)
		m.fireFlow(search.HomeOpened)
	default:
		m.page = pages.NewHome(m.pageConfig)
		m.fireFlow(search.HomeOpened)
		m.showError = true
		m.errorMsg = fmt.Sprintf("Nothing at %s", loc.String())
	}
	m.focus = m.page.DefaultFocus()

	m.log.WithFields(map[string]any{
		"location": loc.String(),
		"origin":   string(origin),
		"seq":      m.seq,
	}).Info("navigated")
}

// controls returns the focus ring: the page's controls, then the toggle.
func (m Model) controls() []widgets.ControlID {
	ring := append([]widgets.ControlID{}, m.page.Controls()...)
	return append(ring, widgets.ControlThemeToggle)
}

func (m *Model) setFocus(id widgets.ControlID) tea.Cmd {
	m.focus = id
	return m.page.SetFocus(id)
}

// cycleFocus moves focus by delta positions around the ring, wrapping.
func (m *Model) cycleFocus(delta int) tea.Cmd {
	ring := m.controls()
	current := -1
	for i, id := range ring {
		if id == m.focus {
			current = i
			break
		}
	}

	next := 0
	switch {
	case current >= 0:
		next = (current + delta + len(ring)) % len(ring)
	case delta < 0:
		next = len(ring) - 1
	}
	return m.setFocus(ring[next])
}

func (m *Model) fireFlow(e search.Event) {
	from := m.flow.State()
	if !m.flow.Fire(e) {
		m.log.WithFields(map[string]any{
			"state": from.String(),
			"event": e.String(),
		}).Debug("flow event ignored")
		return
	}
	m.log.WithFields(map[string]any{
		"from":  from.String(),
		"to":    m.flow.State().String(),
		"event": e.String(),
	}).Debug("flow transition")
}

func (m *Model) applyTheme(v theme.Value) {
	m.styles = theme.NewStyles(v)
	m.help.Styles.ShortKey = m.styles.Accent
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.ShortSeparator = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Accent
	m.help.Styles.FullDesc = m.styles.Muted
	m.help.Styles.FullSeparator = m.styles.Muted
}
