package theme

import (
	"strings"

	"github.com/muesli/termenv"
)

// BackgroundDetector reports whether the terminal background is dark.
type BackgroundDetector func() bool

// TerminalBackground queries the controlling terminal.
func TerminalBackground() bool {
	return termenv.HasDarkBackground()
}

// Resolve picks the starting value: a stored preference wins, then the
// configured default, and "auto" defers to the terminal background.
func Resolve(setting string, stored Value, hasStored bool, detect BackgroundDetector) Value {
	if hasStored {
		return stored
	}
	if strings.EqualFold(setting, "auto") || setting == "" {
		if detect != nil && detect() {
			return Dark
		}
		return Light
	}
	v, err := Parse(setting)
	if err != nil {
		return Light
	}
	return v
}
