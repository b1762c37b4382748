// Package tuitest holds helpers for driving Bubble Tea models in tests.
package tuitest

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Wait bounds how long a single command may run before it is treated as a
// timer (cursor blinks, animation ticks) and skipped.
const Wait = 50 * time.Millisecond

// Collect runs cmd and returns every message it produces, flattening batches.
// Commands that do not return within Wait are dropped.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() {
		done <- cmd()
	}()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var msgs []tea.Msg
			for _, c := range batch {
				msgs = append(msgs, Collect(c)...)
			}
			return msgs
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(Wait):
		return nil
	}
}

// Find returns the first message of type T produced by cmd.
func Find[T tea.Msg](cmd tea.Cmd) (T, bool) {
	for _, msg := range Collect(cmd) {
		if typed, ok := msg.(T); ok {
			return typed, true
		}
	}
	var zero T
	return zero, false
}

// Keys converts text into the key message a terminal would send when typed.
func Keys(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

// Key builds a key message of a special type such as tea.KeyEnter.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}
