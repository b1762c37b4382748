package app

import "github.com/alexisbeaulieu97/nudle/internal/theme"

// Theme file messages

// ThemeFileChangedMsg carries a theme value written to the store by
// someone else, such as `nudle theme toggle` in another terminal.
type ThemeFileChangedMsg struct {
	Value theme.Value
}

// ThemeWatchErrorMsg carries a failure reported by the theme watcher.
type ThemeWatchErrorMsg struct {
	Err error
}

// ThemePersistedMsg reports the outcome of writing the theme to its store.
type ThemePersistedMsg struct {
	Err error
}
