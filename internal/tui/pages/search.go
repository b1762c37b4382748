package pages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

// Search is the results page. Its navigation bar depends on the query in
// the location, so it stays behind a boundary with the loading animation as
// fallback until the query has been resolved.
type Search struct {
	cfg      Config
	location router.Location
	loading  widgets.Loading
	boundary widgets.Boundary[widgets.NavBar]
}

// NewSearch builds the results page for navigation seq at loc.
func NewSearch(cfg Config, seq uint64, loc router.Location) *Search {
	return &Search{
		cfg:      cfg,
		location: loc,
		loading: widgets.NewLoading(
			widgets.WithFrameInterval(cfg.FrameInterval),
			widgets.WithBarWidth(cfg.BarWidth),
			widgets.WithLoadingBrand(cfg.Brand),
		),
		boundary: widgets.NewBoundary[widgets.NavBar](seq),
	}
}

// Seq returns the navigation this page was mounted for.
func (s *Search) Seq() uint64 {
	return s.boundary.Seq()
}

// Ready reports whether the navigation bar has been mounted.
func (s *Search) Ready() bool {
	return s.boundary.State() == widgets.Ready
}

// NavBar returns the navigation bar once ready.
func (s *Search) NavBar() (widgets.NavBar, bool) {
	return s.boundary.Content()
}

// Init starts the loading animation and the query resolution.
func (s *Search) Init() tea.Cmd {
	return tea.Batch(
		s.loading.Init(),
		router.ResolveQuery(s.boundary.Seq(), s.location, search.Param, s.cfg.ResolveDelay),
	)
}

func (s *Search) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case router.QueryResolvedMsg:
		// Absent and undecodable queries both seed an empty input.
		bar := widgets.NewNavBar(msg.Value, s.cfg.Brand, s.cfg.inputOptions()...)
		s.boundary.Resolve(msg.Seq, bar)
		return nil

	case widgets.LoadingTickMsg:
		if s.Ready() {
			return nil
		}
		var cmd tea.Cmd
		s.loading, cmd = s.loading.Update(msg)
		return cmd
	}

	bar, ok := s.boundary.Content()
	if !ok {
		return nil
	}
	bar, cmd := bar.Update(msg)
	s.boundary.SetContent(bar)
	return cmd
}

func (s *Search) Controls() []widgets.ControlID {
	bar, ok := s.boundary.Content()
	if !ok {
		return nil
	}
	return bar.Controls()
}

func (s *Search) DefaultFocus() widgets.ControlID {
	if !s.Ready() {
		return widgets.ControlNone
	}
	return widgets.ControlInput
}

func (s *Search) SetFocus(id widgets.ControlID) tea.Cmd {
	bar, ok := s.boundary.Content()
	if !ok {
		return nil
	}
	bar, cmd := bar.Focus(id)
	s.boundary.SetContent(bar)
	return cmd
}

func (s *Search) Activate(id widgets.ControlID) tea.Cmd {
	bar, ok := s.boundary.Content()
	if !ok {
		return nil
	}
	return bar.Activate(id)
}

func (s *Search) Placement() lipgloss.Position {
	if s.Ready() {
		return lipgloss.Top
	}
	return lipgloss.Center
}

func (s *Search) View(styles theme.Styles, focus widgets.ControlID) string {
	return s.boundary.Render(
		func() string { return s.loading.View(styles) },
		func(bar widgets.NavBar) string { return bar.View(styles, focus) },
	)
}

var _ Page = (*Search)(nil)
