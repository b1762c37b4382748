// Package router keeps the in-app navigation history and turns navigation
// requests into Bubble Tea messages.
package router

import "sync"

// Router is a push-only history stack with back navigation.
type Router struct {
	mu      sync.RWMutex
	history []Location
}

// New creates a Router whose history starts at start.
func New(start Location) *Router {
	return &Router{history: []Location{start}}
}

// Current returns the location on top of the history stack.
func (r *Router) Current() Location {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history[len(r.history)-1]
}

// Push parses target and adds it to the history.
func (r *Router) Push(target string) (Location, error) {
	loc, err := Parse(target)
	if err != nil {
		return Location{}, err
	}
	r.mu.Lock()
	r.history = append(r.history, loc)
	r.mu.Unlock()
	return loc, nil
}

// Back drops the current entry and returns the previous one. The first
// entry is never dropped; ok is false when there is nowhere to go back to.
func (r *Router) Back() (Location, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) <= 1 {
		return r.history[0], false
	}
	r.history = r.history[:len(r.history)-1]
	return r.history[len(r.history)-1], true
}

// Depth returns the number of history entries.
func (r *Router) Depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.history)
}

// QueryParam reads a parameter of the current location.
func (r *Router) QueryParam(name string) (string, bool, error) {
	return r.Current().QueryParam(name)
}
