package pages

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
	"github.com/alexisbeaulieu97/nudle/internal/tui/tuitest"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

var styles = theme.NewStyles(theme.Light)

func testConfig() Config {
	return Config{
		Brand:         "nudle",
		UnicodeIcons:  true,
		FrameInterval: 10 * time.Millisecond,
		BarWidth:      20,
	}
}

func TestHomeCommitFromInput(t *testing.T) {
	h := NewHome(testConfig())
	assert.Equal(t, widgets.ControlInput, h.DefaultFocus())
	h.SetFocus(widgets.ControlInput)

	h.Update(tuitest.Keys("  cats  "))
	nav, ok := tuitest.Find[router.NavigateMsg](h.Update(tuitest.Key(tea.KeyEnter)))
	require.True(t, ok)
	assert.Equal(t, "/search?q=cats", nav.Target)
}

func TestHomeEmptyIconDoesNotNavigate(t *testing.T) {
	h := NewHome(testConfig())

	_, navigated := tuitest.Find[router.NavigateMsg](h.Activate(widgets.ControlSearchIcon))
	assert.False(t, navigated)
}

func TestHomeLogoNavigatesHome(t *testing.T) {
	h := NewHome(testConfig())

	nav, ok := tuitest.Find[router.NavigateMsg](h.Activate(widgets.ControlLogo))
	require.True(t, ok)
	assert.Equal(t, "/", nav.Target)
	assert.Nil(t, h.Activate(widgets.ControlSettings))
}

func TestHomeBlurStopsEditing(t *testing.T) {
	h := NewHome(testConfig())
	h.SetFocus(widgets.ControlInput)
	h.Update(tuitest.Keys("a"))
	h.SetFocus(widgets.ControlSearchIcon)
	h.Update(tuitest.Keys("b"))

	assert.Equal(t, "a", h.Input().Value())
}

func TestHomeView(t *testing.T) {
	h := NewHome(testConfig())

	view := h.View(styles, widgets.ControlInput)
	assert.Contains(t, view, "N")
	assert.Contains(t, view, "Search")
	assert.Equal(t, lipgloss.Center, h.Placement())
	assert.Len(t, h.Controls(), 3)
}

func TestSearchShowsLoadingUntilResolved(t *testing.T) {
	s := NewSearch(testConfig(), 4, router.MustParse("/search?q=hello%20world"))

	assert.False(t, s.Ready())
	assert.Empty(t, s.Controls())
	assert.Equal(t, widgets.ControlNone, s.DefaultFocus())
	assert.Nil(t, s.Activate(widgets.ControlSettings))
	assert.NotContains(t, s.View(styles, widgets.ControlNone), "⚙")

	resolved, ok := tuitest.Find[router.QueryResolvedMsg](s.Init())
	require.True(t, ok)
	assert.Equal(t, uint64(4), resolved.Seq)

	s.Update(resolved)
	require.True(t, s.Ready())

	bar, ok := s.NavBar()
	require.True(t, ok)
	assert.Equal(t, "hello world", bar.Input().Value())
	assert.Equal(t, widgets.ControlInput, s.DefaultFocus())
	assert.Equal(t, lipgloss.Top, s.Placement())

	view := s.View(styles, widgets.ControlInput)
	assert.Contains(t, view, "hello world")
	assert.Contains(t, view, "⚙")
}

func TestSearchIgnoresStaleResolution(t *testing.T) {
	s := NewSearch(testConfig(), 2, router.MustParse("/search?q=cats"))

	s.Update(router.QueryResolvedMsg{Seq: 1, Value: "old"})
	assert.False(t, s.Ready())

	s.Update(router.QueryResolvedMsg{Seq: 2, Value: "cats"})
	s.Update(router.QueryResolvedMsg{Seq: 2, Value: "again"})
	bar, _ := s.NavBar()
	assert.Equal(t, "cats", bar.Input().Value())
}

func TestSearchAbsentAndMalformedQuerySeedEmpty(t *testing.T) {
	for _, loc := range []router.Location{
		router.MustParse("/search"),
		{Path: "/search", RawQuery: "q=%zz"},
	} {
		s := NewSearch(testConfig(), 1, loc)
		resolved, ok := tuitest.Find[router.QueryResolvedMsg](s.Init())
		require.True(t, ok)
		s.Update(resolved)

		bar, ok := s.NavBar()
		require.True(t, ok)
		assert.Empty(t, bar.Input().Value(), loc.String())
	}
}

func TestSearchSeedsLongQueryWhole(t *testing.T) {
	query := strings.Repeat("a", 300)
	target, ok := search.Target(query)
	require.True(t, ok)

	s := NewSearch(testConfig(), 1, router.MustParse(target))
	resolved, ok := tuitest.Find[router.QueryResolvedMsg](s.Init())
	require.True(t, ok)
	s.Update(resolved)

	bar, ok := s.NavBar()
	require.True(t, ok)
	assert.Equal(t, query, bar.Input().Value())

	s.SetFocus(widgets.ControlInput)
	nav, ok := tuitest.Find[router.NavigateMsg](s.Update(tuitest.Key(tea.KeyEnter)))
	require.True(t, ok)
	assert.Equal(t, target, nav.Target, "recommitting sends the same query")
}

func TestSearchLoadingAnimatesOnlyWhilePending(t *testing.T) {
	s := NewSearch(testConfig(), 1, router.MustParse("/search?q=x"))

	cmd := s.Update(widgets.LoadingTickMsg{ID: s.loading.ID(), Frame: 0})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.loading.Frame())

	s.Update(router.QueryResolvedMsg{Seq: 1, Value: "x"})
	cmd = s.Update(widgets.LoadingTickMsg{ID: s.loading.ID(), Frame: 1})
	assert.Nil(t, cmd, "ticks stop once the boundary resolves")
}

func TestSearchNavBarInteraction(t *testing.T) {
	s := NewSearch(testConfig(), 1, router.MustParse("/search?q=cats"))
	s.Update(router.QueryResolvedMsg{Seq: 1, Value: "cats"})
	s.SetFocus(widgets.ControlInput)

	s.Update(tuitest.Keys(" and dogs"))
	nav, ok := tuitest.Find[router.NavigateMsg](s.Update(tuitest.Key(tea.KeyEnter)))
	require.True(t, ok)
	assert.Equal(t, "/search?q=cats%20and%20dogs", nav.Target)

	assert.Nil(t, s.Activate(widgets.ControlLogo), "results logo is inert")
	_, ok = tuitest.Find[widgets.SettingsRequestedMsg](s.Activate(widgets.ControlSettings))
	assert.True(t, ok)
}
