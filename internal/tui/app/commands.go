package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// ThemeWatcher is the part of theme.Watcher the app consumes.
type ThemeWatcher interface {
	Changes() <-chan theme.Value
	Errors() <-chan error
}

// waitForThemeChangeCmd blocks until the watcher reports a value or an error.
// The app re-issues it after each message.
func waitForThemeChangeCmd(w ThemeWatcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case v := <-w.Changes():
			return ThemeFileChangedMsg{Value: v}
		case err := <-w.Errors():
			return ThemeWatchErrorMsg{Err: err}
		}
	}
}

// persistThemeCmd writes the active theme to its store outside the update
// loop. Failures are logged by the source and surface as ThemePersistedMsg.
func persistThemeCmd(source ThemeSource) tea.Cmd {
	return func() tea.Msg {
		return ThemePersistedMsg{Err: source.Persist()}
	}
}
