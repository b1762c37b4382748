// Package theme owns the light/dark presentation mode shared by every widget.
//
// The active value lives in a State that is created once per session and
// passed explicitly to the widgets that read it. A FileStore persists the
// preference between sessions and a Watcher reports edits made to that file
// by other processes.
package theme

import (
	"fmt"
	"strings"
)

// Value is the active presentation mode.
type Value int

const (
	Light Value = iota
	Dark
)

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v {
	case Dark:
		return "dark"
	default:
		return "light"
	}
}

// Inverse returns the other value. Inverse(Inverse(v)) == v.
func (v Value) Inverse() Value {
	if v == Dark {
		return Light
	}
	return Dark
}

// Parse converts "light" or "dark" (case-insensitive) to a Value.
func Parse(s string) (Value, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", s)
	}
}

// MarshalYAML stores the value by name.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts the names produced by MarshalYAML.
func (v *Value) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
