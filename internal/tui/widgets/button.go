package widgets

import "github.com/alexisbeaulieu97/nudle/internal/theme"

// IconButton is a one-glyph control with an ASCII fallback for terminals
// without the glyph.
type IconButton struct {
	Glyph    string
	Fallback string
	Unicode  bool
	Disabled bool
}

// Label returns the text the button renders.
func (b IconButton) Label() string {
	if b.Unicode || b.Fallback == "" {
		return b.Glyph
	}
	return b.Fallback
}

// View renders the button. Focus is ignored while disabled.
func (b IconButton) View(styles theme.Styles, focused bool) string {
	style := styles.Control
	switch {
	case b.Disabled:
		style = styles.Muted.Faint(true).Padding(0, 1)
	case focused:
		style = styles.Focused.Padding(0, 1)
	}
	return style.Render(b.Label())
}
