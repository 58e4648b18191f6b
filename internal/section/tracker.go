package section

// Defaults in terminal lines.
const (
	DefaultReferenceOffset   = 2
	DefaultScrolledThreshold = 3
)

// Tracker keeps the active section and the scrolled flag for one page.
type Tracker struct {
	anchors           []string
	referenceOffset   int
	scrolledThreshold int

	active   string
	scrolled bool
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithReferenceOffset sets the line, counted from the viewport top, that a
// section must span to be active.
func WithReferenceOffset(lines int) Option {
	return func(t *Tracker) {
		if lines >= 0 {
			t.referenceOffset = lines
		}
	}
}

// WithScrolledThreshold sets how far the page must scroll before Scrolled
// reports true.
func WithScrolledThreshold(lines int) Option {
	return func(t *Tracker) {
		if lines >= 0 {
			t.scrolledThreshold = lines
		}
	}
}

// NewTracker returns a tracker over anchors (DefaultAnchors when empty). The
// first anchor starts active.
func NewTracker(anchors []string, opts ...Option) *Tracker {
	if len(anchors) == 0 {
		anchors = DefaultAnchors
	}
	t := &Tracker{
		anchors:           append([]string(nil), anchors...),
		referenceOffset:   DefaultReferenceOffset,
		scrolledThreshold: DefaultScrolledThreshold,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.active = t.anchors[0]
	return t
}

// Anchors returns the tracked anchors in order.
func (t *Tracker) Anchors() []string {
	return append([]string(nil), t.anchors...)
}

// Active returns the current section.
func (t *Tracker) Active() string {
	return t.active
}

// Scrolled reports whether the last observed offset passed the threshold.
func (t *Tracker) Scrolled() bool {
	return t.scrolled
}

// ReferenceOffset returns the reference line.
func (t *Tracker) ReferenceOffset() int {
	return t.referenceOffset
}

// Observe recomputes state for a scroll offset. It is called once when the
// page mounts and again after every scroll, resize or content change. The
// return value reports whether the active section changed.
func (t *Tracker) Observe(offset int, loc Locator) bool {
	t.scrolled = offset > t.scrolledThreshold

	next := ComputeActive(Measure(t.anchors, loc), t.referenceOffset, t.active)
	changed := next != t.active
	t.active = next
	return changed
}

// Index returns the position of id in the anchor list, or -1.
func (t *Tracker) Index(id string) int {
	for i, a := range t.anchors {
		if a == id {
			return i
		}
	}
	return -1
}
