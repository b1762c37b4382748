package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowStartsIdle(t *testing.T) {
	t.Parallel()

	var zero Flow
	assert.Equal(t, Idle, zero.State())
	assert.Equal(t, Idle, NewFlow().State())
}

func TestFlowFullCycle(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	steps := []struct {
		event Event
		want  State
	}{
		{Edited, Composing},
		{CommitAccepted, Committed},
		{ResultsOpened, Resolving},
		{Resolved, Seeded},
		{Edited, Composing},
		{CommitAccepted, Committed},
		{ResultsOpened, Resolving},
		{Resolved, Seeded},
		{HomeOpened, Idle},
	}

	for _, step := range steps {
		assert.True(t, f.Fire(step.event), "event %s", step.event)
		assert.Equal(t, step.want, f.State(), "after %s", step.event)
	}
}

func TestFlowRejectedCommitKeepsState(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	f.Fire(Edited)
	assert.True(t, f.Fire(CommitRejected))
	assert.Equal(t, Composing, f.State())

	idle := NewFlow()
	assert.True(t, idle.Fire(CommitRejected))
	assert.Equal(t, Idle, idle.State())
}

func TestFlowIgnoresInvalidEvents(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	assert.False(t, f.Fire(Resolved), "nothing is resolving")
	assert.False(t, f.Fire(CommitAccepted), "idle input cannot commit")
	assert.Equal(t, Idle, f.State())

	f.Fire(Edited)
	f.Fire(CommitAccepted)
	assert.False(t, f.Fire(Edited), "input is gone once committed")
	assert.Equal(t, Committed, f.State())
}

func TestFlowSeededCanCommitWithoutEditing(t *testing.T) {
	t.Parallel()

	f := NewFlow()
	f.Fire(ResultsOpened)
	f.Fire(Resolved)
	assert.Equal(t, Seeded, f.State())
	assert.True(t, f.Fire(CommitAccepted))
	assert.Equal(t, Committed, f.State())
}

func TestStateAndEventStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "resolving", Resolving.String())
	assert.Equal(t, "state(42)", State(42).String())
	assert.Equal(t, "commit_rejected", CommitRejected.String())
	assert.Equal(t, "event(42)", Event(42).String())
}
