package widgets

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// QueryEditedMsg reports that a search input's value changed.
type QueryEditedMsg struct {
	Value string
}

// CommitRejectedMsg reports a commit attempt whose query was blank after
// trimming. It never carries a navigation.
type CommitRejectedMsg struct{}

// ThemeChangedMsg reports the theme value now active.
type ThemeChangedMsg struct {
	Value theme.Value
}

// SettingsRequestedMsg is sent when the settings control is activated.
type SettingsRequestedMsg struct{}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
