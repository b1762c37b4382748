package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/tui/widgets"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.showError && strings.HasPrefix(m.errorMsg, "Terminal too small") {
			m.showError = false
			m.errorMsg = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	// Navigation messages
	case router.NavigateMsg:
		loc, err := m.router.Push(msg.Target)
		if err != nil {
			m.log.Error(err, "navigation rejected")
			m.showError = true
			m.errorMsg = fmt.Sprintf("Cannot open %s", msg.Target)
			return m, nil
		}
		if msg.Origin == router.OriginSearchInput {
			m.fireFlow(search.CommitAccepted)
		}
		m.mount(loc, msg.Origin)
		return m, tea.Batch(m.page.Init(), m.page.SetFocus(m.focus))

	case router.BackMsg:
		loc, ok := m.router.Back()
		if !ok {
			m.log.Debug("no earlier location")
			return m, nil
		}
		m.mount(loc, router.OriginBack)
		return m, tea.Batch(m.page.Init(), m.page.SetFocus(m.focus))

	case router.QueryResolvedMsg:
		if msg.Seq != m.seq {
			m.log.WithFields(map[string]any{"seq": msg.Seq, "current": m.seq}).Debug("stale resolution dropped")
			return m, nil
		}
		if msg.Err != nil {
			m.log.WithFields(map[string]any{
				"param": msg.Param,
				"error": msg.Err.Error(),
			}).Warn("undecodable query parameter, using empty query")
		}
		m.page.Update(msg)
		m.fireFlow(search.Resolved)
		m.log.WithFields(map[string]any{
			"seq":     msg.Seq,
			"present": msg.Present,
		}).Debug("query resolved")
		return m, m.setFocus(m.page.DefaultFocus())

	// Search input messages
	case widgets.QueryEditedMsg:
		m.fireFlow(search.Edited)
		return m, nil

	case widgets.CommitRejectedMsg:
		m.fireFlow(search.CommitRejected)
		return m, nil

	case widgets.SettingsRequestedMsg:
		m.log.Debug("settings requested")
		return m, nil

	// Theme messages
	case widgets.ThemeChangedMsg:
		m.applyTheme(msg.Value)
		return m, persistThemeCmd(m.theme)

	case ThemePersistedMsg:
		return m, nil

	case ThemeFileChangedMsg:
		if m.theme.Set(msg.Value) {
			m.applyTheme(msg.Value)
			m.log.WithFields(map[string]any{"theme": msg.Value.String()}).Info("theme reloaded from store")
		}
		return m, waitForThemeChangeCmd(m.watcher)

	case ThemeWatchErrorMsg:
		m.log.Error(msg.Err, "theme watcher failed")
		return m, waitForThemeChangeCmd(m.watcher)
	}

	// Animation ticks, cursor blinks and anything else belong to the page.
	return m, m.page.Update(msg)
}

// handleKeyPress routes keys: global bindings first, then the focused input,
// then activation of the focused control.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		return m, m.toggle.Click()
	case key.Matches(msg, m.keys.Next):
		return m, m.cycleFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.cycleFocus(-1)
	}

	if m.focus == widgets.ControlInput {
		// The input consumes everything but escape, alt+left included.
		if msg.Type == tea.KeyEsc {
			return m, router.Back()
		}
		return m, m.page.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, router.Back()
	case key.Matches(msg, m.keys.Activate):
		return m, m.activate(m.focus)
	}
	return m, nil
}

func (m Model) activate(id widgets.ControlID) tea.Cmd {
	m.log.WithFields(map[string]any{"control": string(id)}).Debug("control activated")
	if id == widgets.ControlThemeToggle {
		return m.toggle.Click()
	}
	return m.page.Activate(id)
}
