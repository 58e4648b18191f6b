package layout

// Breakpoint represents terminal width categories for responsive layouts.
type Breakpoint int

const (
	// Narrow hides the nav tabs behind a drawer.
	Narrow Breakpoint = iota

	// Regular shows the nav tabs in the header.
	Regular
)

// DefaultNarrowWidth is the first width that shows the nav tabs.
const DefaultNarrowWidth = 80

// Detect returns the breakpoint for width. Widths below narrowWidth are
// Narrow; a non-positive narrowWidth falls back to DefaultNarrowWidth.
func Detect(width, narrowWidth int) Breakpoint {
	if narrowWidth <= 0 {
		narrowWidth = DefaultNarrowWidth
	}
	if width < narrowWidth {
		return Narrow
	}
	return Regular
}

// String returns a human-readable name for the breakpoint.
func (b Breakpoint) String() string {
	switch b {
	case Narrow:
		return "Narrow"
	case Regular:
		return "Regular"
	default:
		return "Unknown"
	}
}

// HeaderHeightFor returns the header zone height for b.
func HeaderHeightFor(b Breakpoint) int {
	if b == Narrow {
		return CompactHeaderHeight
	}
	return HeaderHeight
}
