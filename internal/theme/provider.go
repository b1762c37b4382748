package theme

import (
	"sync"

	"github.com/alexisbeaulieu97/nudle/internal/logger"
)

// Provider is the contract widgets depend on.
type Provider interface {
	Current() Value
	Toggle()
}

// State is the session-wide Provider. It is safe for concurrent use: the UI
// loop toggles it while the file watcher may replace it.
type State struct {
	mu     sync.RWMutex
	value  Value
	store  *FileStore
	logger *logger.Logger

	// saveMu serialises writes to the store's temp file.
	saveMu sync.Mutex
}

// Option customises a State.
type Option func(*State)

// WithStore sets the store Persist writes to.
func WithStore(store *FileStore) Option {
	return func(s *State) {
		s.store = store
	}
}

// WithLogger attaches a logger for persistence failures and changes.
func WithLogger(log *logger.Logger) Option {
	return func(s *State) {
		s.logger = log
	}
}

// NewState creates a State holding initial.
func NewState(initial Value, opts ...Option) *State {
	s := &State{value: initial}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the active value.
func (s *State) Current() Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Toggle flips the active value. It does not touch the store; callers
// persist with Persist, off the UI loop.
func (s *State) Toggle() {
	s.mu.Lock()
	s.value = s.value.Inverse()
	next := s.value
	s.mu.Unlock()

	s.logger.WithFields(map[string]any{"theme": next.String()}).Info("theme toggled")
}

// Persist writes the active value to the store, if one is attached. A failure
// is logged and returned; the in-memory value is kept either way.
func (s *State) Persist() error {
	if s.store == nil {
		return nil
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	current := s.Current()
	if err := s.store.Save(current); err != nil {
		s.logger.WithFields(map[string]any{"theme": current.String()}).Error(err, "failed to persist theme")
		return err
	}
	return nil
}

// Set replaces the active value without persisting it. It reports whether
// the value changed.
func (s *State) Set(v Value) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.value == v {
		return false
	}
	s.value = v
	return true
}

var _ Provider = (*State)(nil)
