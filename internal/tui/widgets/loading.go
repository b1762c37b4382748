package widgets

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/nudle/internal/theme"
)

const (
	defaultFrameInterval = 120 * time.Millisecond
	defaultBarWidth      = 30
	barSteps             = 20
)

var lastLoadingID int64

func nextLoadingID() int {
	return int(atomic.AddInt64(&lastLoadingID, 1))
}

// LoadingTickMsg advances one Loading animation.
type LoadingTickMsg struct {
	ID    int
	Frame int
}

// Loading is the placeholder shown while a page waits on navigation state.
// It animates forever and reflects no real progress.
type Loading struct {
	id       int
	brand    []rune
	frame    int
	interval time.Duration
	bar      progress.Model
}

// LoadingOption customises a Loading.
type LoadingOption func(*Loading)

// WithFrameInterval sets the animation speed.
func WithFrameInterval(d time.Duration) LoadingOption {
	return func(l *Loading) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithBarWidth sets the progress bar width in cells.
func WithBarWidth(width int) LoadingOption {
	return func(l *Loading) {
		if width > 0 {
			l.bar.Width = width
		}
	}
}

// WithLoadingBrand replaces the animated mark.
func WithLoadingBrand(brand string) LoadingOption {
	return func(l *Loading) {
		if brand != "" {
			l.brand = []rune(brand)
		}
	}
}

// NewLoading creates a Loading with its own tick identity.
func NewLoading(opts ...LoadingOption) Loading {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = defaultBarWidth

	l := Loading{
		id:       nextLoadingID(),
		brand:    []rune(DefaultBrand),
		interval: defaultFrameInterval,
		bar:      bar,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

// ID identifies the ticks that belong to this Loading.
func (l Loading) ID() int {
	return l.id
}

// Frame returns the number of ticks applied so far.
func (l Loading) Frame() int {
	return l.frame
}

// Init starts the animation.
func (l Loading) Init() tea.Cmd {
	return l.tick()
}

// Update advances the animation on its own ticks and ignores everything else.
func (l Loading) Update(msg tea.Msg) (Loading, tea.Cmd) {
	tick, ok := msg.(LoadingTickMsg)
	if !ok || tick.ID != l.id || tick.Frame != l.frame {
		return l, nil
	}
	l.frame++
	return l, l.tick()
}

func (l Loading) tick() tea.Cmd {
	id, frame := l.id, l.frame
	return tea.Tick(l.interval, func(time.Time) tea.Msg {
		return LoadingTickMsg{ID: id, Frame: frame}
	})
}

// Highlighted returns the index of the brand glyph currently lit.
func (l Loading) Highlighted() int {
	if len(l.brand) == 0 {
		return 0
	}
	return l.frame % len(l.brand)
}

// Ratio returns the looping progress bar fill.
func (l Loading) Ratio() float64 {
	return float64(l.frame%(barSteps+1)) / barSteps
}

// View renders the animated brand above the looping bar.
func (l Loading) View(styles theme.Styles) string {
	lit := l.Highlighted()
	var b strings.Builder
	for i, r := range l.brand {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == lit {
			b.WriteString(styles.Brand[i%len(styles.Brand)].Render(strings.ToUpper(string(r))))
			continue
		}
		b.WriteString(styles.Muted.Render(string(r)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		b.String(),
		"",
		l.bar.ViewAs(l.Ratio()),
	)
}
