package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups related colours for one semantic slot.
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by widgets.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Neutral ColourSet
	// Brand holds one colour per glyph of the five-letter mark.
	Brand [5]lipgloss.Color
}

// Styles is the set of lipgloss styles derived from a Value.
type Styles struct {
	Value   Value
	Palette Palette

	App        lipgloss.Style
	Text       lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Focused    lipgloss.Style
	Pointer    lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	Control    lipgloss.Style
	Footer     lipgloss.Style
	Banner     lipgloss.Style
	Brand      [5]lipgloss.Style
}

func lightPalette() Palette {
	return Palette{
		Primary: ColourSet{Base: "#3b82f6", OnBase: "#f8fafc", Muted: "#2563eb", Contrast: "#facc15"},
		Surface: ColourSet{Base: "#f9fafb", OnBase: "#111827", Muted: "#e2e8f0", Contrast: "#3b82f6"},
		Danger:  ColourSet{Base: "#ef4444", OnBase: "#7f1d1d", Muted: "#dc2626", Contrast: "#f8fafc"},
		Neutral: ColourSet{Base: "#64748b", OnBase: "#f1f5f9", Muted: "#475569", Contrast: "#f8fafc"},
		Brand:   [5]lipgloss.Color{"#2563eb", "#dc2626", "#ca8a04", "#2563eb", "#16a34a"},
	}
}

func darkPalette() Palette {
	return Palette{
		Primary: ColourSet{Base: "#60a5fa", OnBase: "#0b1120", Muted: "#1d4ed8", Contrast: "#ca8a04"},
		Surface: ColourSet{Base: "#0b1120", OnBase: "#e5e7eb", Muted: "#1f2937", Contrast: "#60a5fa"},
		Danger:  ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#b91c1c", Contrast: "#f8fafc"},
		Neutral: ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155", Contrast: "#f8fafc"},
		Brand:   [5]lipgloss.Color{"#60a5fa", "#f87171", "#facc15", "#60a5fa", "#4ade80"},
	}
}

// NewStyles derives the style set for v.
func NewStyles(v Value) Styles {
	p := lightPalette()
	if v == Dark {
		p = darkPalette()
	}

	s := Styles{Value: v, Palette: p}

	s.App = lipgloss.NewStyle().
		Foreground(p.Surface.OnBase).
		Background(p.Surface.Base)

	s.Text = lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	s.Muted = lipgloss.NewStyle().Foreground(p.Neutral.Base)
	s.Accent = lipgloss.NewStyle().Foreground(p.Primary.Base).Bold(true)

	s.Focused = lipgloss.NewStyle().
		Foreground(p.Primary.OnBase).
		Background(p.Primary.Base).
		Bold(true)

	s.Pointer = lipgloss.NewStyle().Underline(true)

	s.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Neutral.Muted).
		Padding(0, 1)

	s.InputFocus = s.Input.
		BorderForeground(p.Primary.Base)

	s.Control = lipgloss.NewStyle().
		Foreground(p.Neutral.Base).
		Padding(0, 1)

	s.Footer = lipgloss.NewStyle().
		Foreground(p.Neutral.Base).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(p.Neutral.Muted)

	s.Banner = lipgloss.NewStyle().
		Foreground(p.Danger.Contrast).
		Background(p.Danger.Muted).
		Bold(true).
		Padding(0, 1)

	for i, c := range p.Brand {
		s.Brand[i] = lipgloss.NewStyle().Foreground(c).Bold(true)
	}

	return s
}
