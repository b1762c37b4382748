package router

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigate returns a command requesting a push navigation to target.
func Navigate(target string, origin Origin) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Target: target, Origin: origin}
	}
}

// Back returns a command requesting back navigation.
func Back() tea.Cmd {
	return func() tea.Msg {
		return BackMsg{}
	}
}

// ResolveQuery extracts param from loc off the UI loop, after delay, and
// reports it as a QueryResolvedMsg tagged with seq. It resolves exactly once
// and cannot be cancelled; receivers drop results whose seq is stale.
func ResolveQuery(seq uint64, loc Location, param string, delay time.Duration) tea.Cmd {
	resolve := func() tea.Msg {
		value, present, err := loc.QueryParam(param)
		return QueryResolvedMsg{
			Seq:     seq,
			Param:   param,
			Value:   value,
			Present: present,
			Err:     err,
		}
	}

	if delay <= 0 {
		return resolve
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return resolve()
	})
}
