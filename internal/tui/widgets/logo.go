package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

// Size is a presentation-only logo scale.
type Size int

const (
	SizeSM Size = iota
	SizeMD
	SizeLG
	SizeXL
	SizeXXL
)

func (s Size) String() string {
	switch s {
	case SizeSM:
		return "sm"
	case SizeMD:
		return "md"
	case SizeLG:
		return "lg"
	case SizeXL:
		return "xl"
	case SizeXXL:
		return "xxl"
	default:
		return "unknown"
	}
}

// DefaultBrand is the five-letter mark rendered by the logo.
const DefaultBrand = "nudle"

// Logo renders the brand mark and optionally navigates when activated.
type Logo struct {
	brand    []rune
	size     Size
	redirect string
}

// LogoOption customises a Logo.
type LogoOption func(*Logo)

// WithSize sets the logo scale.
func WithSize(s Size) LogoOption {
	return func(l *Logo) {
		l.size = s
	}
}

// WithRedirect sets the navigation target. An empty target disables
// navigation entirely.
func WithRedirect(target string) LogoOption {
	return func(l *Logo) {
		l.redirect = target
	}
}

// WithBrand replaces the rendered mark.
func WithBrand(brand string) LogoOption {
	return func(l *Logo) {
		if brand != "" {
			l.brand = []rune(brand)
		}
	}
}

// NewLogo creates a medium logo that navigates to "/".
func NewLogo(opts ...LogoOption) Logo {
	l := Logo{
		brand:    []rune(DefaultBrand),
		size:     SizeMD,
		redirect: "/",
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// Size returns the logo scale.
func (l Logo) Size() Size {
	return l.size
}

// Redirect returns the navigation target, empty when disabled.
func (l Logo) Redirect() string {
	return l.redirect
}

// Enabled reports whether activating the logo navigates.
func (l Logo) Enabled() bool {
	return l.redirect != ""
}

// Cursor reports the pointer affordance of the logo.
func (l Logo) Cursor() Cursor {
	if l.Enabled() {
		return CursorPointer
	}
	return CursorDefault
}

// Click pushes the redirect target. A disabled logo is inert.
func (l Logo) Click() tea.Cmd {
	if !l.Enabled() {
		return nil
	}
	return router.Navigate(l.redirect, router.OriginLogo)
}

// View renders the mark at the logo's size. A focused, enabled logo shows
// where it leads.
func (l Logo) View(styles theme.Styles, focused bool) string {
	mark := l.renderMark(styles)
	if !focused {
		return mark
	}
	if l.Cursor() == CursorPointer {
		hint := styles.Pointer.Inherit(styles.Accent).Render("↵ " + l.redirect)
		return lipgloss.JoinVertical(lipgloss.Center, mark, hint)
	}
	return lipgloss.JoinVertical(lipgloss.Center, mark, styles.Muted.Render("·"))
}

func (l Logo) renderMark(styles theme.Styles) string {
	glyphs := make([]string, 0, len(l.brand))
	for i, r := range l.brand {
		style := styles.Brand[i%len(styles.Brand)]
		glyphs = append(glyphs, l.renderGlyph(style, r))
	}

	switch l.size {
	case SizeSM:
		return strings.Join(glyphs, "")
	case SizeMD:
		return strings.Join(glyphs, " ")
	case SizeLG:
		return strings.Join(glyphs, "  ")
	default:
		return lipgloss.JoinHorizontal(lipgloss.Top, glyphs...)
	}
}

func (l Logo) renderGlyph(style lipgloss.Style, r rune) string {
	switch l.size {
	case SizeXL:
		return style.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(style.GetForeground()).
			Padding(0, 1).
			Render(string(r))
	case SizeXXL:
		return style.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(style.GetForeground()).
			Padding(1, 2).
			Render(strings.ToUpper(string(r)))
	case SizeLG:
		return style.Render(strings.ToUpper(string(r)))
	default:
		return style.Render(string(r))
	}
}
