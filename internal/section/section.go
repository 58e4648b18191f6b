// Package section maps a scroll position to the page section currently in
// view. The matching rule lives in ComputeActive, a pure function; Tracker
// adds the sticky state and the "scrolled" flag used by the header.
package section

// DefaultAnchors is the ordered list of page sections. The navigation bar,
// the terminal page and the HTML page all use these exact identifiers.
var DefaultAnchors = []string{
	"hero",
	"about",
	"experience",
	"education",
	"publications",
	"certifications",
	"projects",
	"skills",
	"contact",
}

// Bounds is the vertical span of an anchor in viewport coordinates. Top is
// negative once the anchor has scrolled above the viewport; Bottom is
// inclusive.
type Bounds struct {
	ID     string
	Top    int
	Bottom int
}

// Contains reports whether y falls within the span.
func (b Bounds) Contains(y int) bool {
	return b.Top <= y && y <= b.Bottom
}

// Locator resolves an anchor to its current bounds. ok is false when the
// anchor is not on the page.
type Locator interface {
	Bounds(id string) (b Bounds, ok bool)
}

// ComputeActive returns the first entry whose span contains reference. When
// nothing matches the previous section is kept.
//
// The first match in declaration order wins even when a later section
// covers more of the viewport.
func ComputeActive(bounds []Bounds, reference int, previous string) string {
	for _, b := range bounds {
		if b.Contains(reference) {
			return b.ID
		}
	}
	return previous
}

// Measure collects the bounds of every anchor the locator knows about, in
// anchor order.
func Measure(anchors []string, loc Locator) []Bounds {
	out := make([]Bounds, 0, len(anchors))
	if loc == nil {
		return out
	}
	for _, id := range anchors {
		if b, ok := loc.Bounds(id); ok {
			b.ID = id
			out = append(out, b)
		}
	}
	return out
}
