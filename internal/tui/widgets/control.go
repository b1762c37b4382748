// Package widgets holds the building blocks of the search screens: the logo,
// the search input, the loading boundary, the navigation bar and the theme
// toggle. Widgets are value types rendered with a theme.Styles set.
package widgets

// ControlID names a focusable control. The app cycles focus through the
// controls a page exposes, then the theme toggle.
type ControlID string

const (
	ControlNone        ControlID = ""
	ControlLogo        ControlID = "logo"
	ControlInput       ControlID = "input"
	ControlSearchIcon  ControlID = "search_icon"
	ControlSettings    ControlID = "settings"
	ControlThemeToggle ControlID = "theme_toggle"
)

// Cursor is the pointer affordance a control advertises while focused.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)
