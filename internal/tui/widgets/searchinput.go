package widgets

import (
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/nudle/internal/router"
	"github.com/alexisbeaulieu97/nudle/internal/search"
	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

const (
	defaultInputWidth = 40
	queryCharLimit    = 256
)

// SearchInput is a single-line query editor with a search icon. It owns its
// text; the initial value only seeds it.
type SearchInput struct {
	input   textinput.Model
	initial string
	unicode bool
}

// SearchInputOption customises a SearchInput.
type SearchInputOption func(*SearchInput)

// WithInputWidth sets the visible width of the text field.
func WithInputWidth(width int) SearchInputOption {
	return func(s *SearchInput) {
		if width > 0 {
			s.input.Width = width
		}
	}
}

// WithPlaceholder sets the text shown while the field is empty.
func WithPlaceholder(text string) SearchInputOption {
	return func(s *SearchInput) {
		s.input.Placeholder = text
	}
}

// WithUnicodeIcons switches between glyph and ASCII icons.
func WithUnicodeIcons(enabled bool) SearchInputOption {
	return func(s *SearchInput) {
		s.unicode = enabled
	}
}

// NewSearchInput creates an unfocused input seeded with initial.
func NewSearchInput(initial string, opts ...SearchInputOption) SearchInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search"
	ti.CharLimit = queryCharLimit
	ti.Width = defaultInputWidth

	s := SearchInput{input: ti, unicode: true}
	for _, opt := range opts {
		opt(&s)
	}
	s.seed(initial)
	return s
}

// SetInitial re-seeds the input when v differs from the last initial value.
// Edits made since the last seed are discarded in that case.
func (s *SearchInput) SetInitial(v string) {
	if v == s.initial {
		return
	}
	s.seed(v)
}

// seed replaces the text with v. The limit only bounds typing, so it grows to
// fit a longer seed rather than cutting it.
func (s *SearchInput) seed(v string) {
	s.initial = v
	s.input.CharLimit = max(queryCharLimit, utf8.RuneCountInString(v))
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// Initial returns the value the input was last seeded with.
func (s SearchInput) Initial() string {
	return s.initial
}

// Value returns the current text.
func (s SearchInput) Value() string {
	return s.input.Value()
}

// Focus gives the text field keyboard focus.
func (s *SearchInput) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus.
func (s *SearchInput) Blur() {
	s.input.Blur()
}

// Focused reports whether the text field has keyboard focus.
func (s SearchInput) Focused() bool {
	return s.input.Focused()
}

// Update applies a message to the text field. Enter commits; any change to
// the text is reported with a QueryEditedMsg.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEnter && s.input.Focused() {
		return s, s.Commit()
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		cmd = tea.Batch(cmd, emit(QueryEditedMsg{Value: after}))
	}
	return s, cmd
}

// Commit turns the current text into a push navigation to the results page.
// A blank query produces a CommitRejectedMsg and no navigation.
func (s SearchInput) Commit() tea.Cmd {
	target, ok := search.Target(s.input.Value())
	if !ok {
		return emit(CommitRejectedMsg{})
	}
	return router.Navigate(target, router.OriginSearchInput)
}

// ActivateIcon is the search icon's activation; it commits like enter does.
func (s SearchInput) ActivateIcon() tea.Cmd {
	return s.Commit()
}

// View renders the text field inside its frame.
func (s SearchInput) View(styles theme.Styles) string {
	s.input.TextStyle = styles.Text
	s.input.PlaceholderStyle = styles.Muted.Italic(true)
	s.input.Cursor.Style = styles.Accent

	frame := styles.Input
	if s.input.Focused() {
		frame = styles.InputFocus
	}
	return frame.Render(s.input.View())
}

// IconView renders the search icon control.
func (s SearchInput) IconView(styles theme.Styles, focused bool) string {
	icon := IconButton{Glyph: "⌕", Fallback: "[go]", Unicode: s.unicode}
	return icon.View(styles, focused)
}
