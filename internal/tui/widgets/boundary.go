package widgets

// BoundaryState is the state of a suspension Boundary.
type BoundaryState int

const (
	Pending BoundaryState = iota
	Ready
)

func (s BoundaryState) String() string {
	if s == Ready {
		return "ready"
	}
	return "pending"
}

// Boundary selects between a fallback and content that only exists once
// navigation state has been resolved. It belongs to one navigation, named by
// its sequence number, and resolves at most once.
type Boundary[T any] struct {
	seq     uint64
	state   BoundaryState
	content T
}

// NewBoundary creates a pending Boundary for navigation seq.
func NewBoundary[T any](seq uint64) Boundary[T] {
	return Boundary[T]{seq: seq}
}

// Seq returns the navigation the Boundary belongs to.
func (b Boundary[T]) Seq() uint64 {
	return b.seq
}

// State returns Pending or Ready.
func (b Boundary[T]) State() BoundaryState {
	return b.state
}

// Resolve installs content and flips the Boundary to Ready. Resolutions for
// another navigation, and any after the first, are ignored and return false.
func (b *Boundary[T]) Resolve(seq uint64, content T) bool {
	if seq != b.seq || b.state == Ready {
		return false
	}
	b.content = content
	b.state = Ready
	return true
}

// Content returns the content once Ready.
func (b Boundary[T]) Content() (T, bool) {
	return b.content, b.state == Ready
}

// SetContent replaces the content of a Ready Boundary.
func (b *Boundary[T]) SetContent(content T) bool {
	if b.state != Ready {
		return false
	}
	b.content = content
	return true
}

// Render calls fallback while pending and render once ready.
func (b Boundary[T]) Render(fallback func() string, render func(T) string) string {
	if b.state != Ready {
		return fallback()
	}
	return render(b.content)
}
