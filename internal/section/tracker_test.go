package section

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// staticPage lays sections out back to back, like a rendered page, and
// shifts them by the scroll offset.
type staticPage struct {
	heights map[string]int
	order   []string
	offset  int
}

func (p *staticPage) Bounds(id string) (Bounds, bool) {
	top := 0
	for _, a := range p.order {
		h := p.heights[a]
		if a == id {
			return Bounds{Top: top - p.offset, Bottom: top + h - 1 - p.offset}, true
		}
		top += h
	}
	return Bounds{}, false
}

type mapLocator map[string]Bounds

func (m mapLocator) Bounds(id string) (Bounds, bool) {
	b, ok := m[id]
	return b, ok
}

func TestComputeActive_StickyOnNoMatch(t *testing.T) {
	bounds := []Bounds{
		{ID: "hero", Top: -40, Bottom: -20},
		{ID: "contact", Top: 10, Bottom: 30},
	}
	assert.Equal(t, "projects", ComputeActive(bounds, 2, "projects"))
	assert.Equal(t, "projects", ComputeActive(nil, 2, "projects"))
}

func TestComputeActive_FirstMatchWins(t *testing.T) {
	// "about" barely touches the reference line while "experience" fills
	// the screen; declaration order still decides.
	bounds := []Bounds{
		{ID: "hero", Top: -30, Bottom: -1},
		{ID: "about", Top: -10, Bottom: 2},
		{ID: "experience", Top: 2, Bottom: 60},
	}
	assert.Equal(t, "about", ComputeActive(bounds, 2, "hero"))
}

func TestComputeActive_InclusiveEdges(t *testing.T) {
	assert.Equal(t, "a", ComputeActive([]Bounds{{ID: "a", Top: 2, Bottom: 2}}, 2, ""))
	assert.Equal(t, "", ComputeActive([]Bounds{{ID: "a", Top: 3, Bottom: 9}}, 2, ""))
	assert.Equal(t, "", ComputeActive([]Bounds{{ID: "a", Top: -5, Bottom: 1}}, 2, ""))
}

func TestMeasure_SkipsMissingAnchors(t *testing.T) {
	loc := mapLocator{
		"about":  {Top: 0, Bottom: 5},
		"skills": {Top: 6, Bottom: 9},
	}
	got := Measure(DefaultAnchors, loc)
	want := []Bounds{
		{ID: "about", Top: 0, Bottom: 5},
		{ID: "skills", Top: 6, Bottom: 9},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Measure() mismatch (-want +got):\n%s", diff)
	}
}

func TestTracker_StartsOnFirstAnchor(t *testing.T) {
	tr := NewTracker(nil)
	assert.Equal(t, "hero", tr.Active())
	assert.False(t, tr.Scrolled())
}

func TestTracker_MissingAnchorIsNotAnError(t *testing.T) {
	tr := NewTracker(nil)
	tr.Observe(0, mapLocator{})
	assert.Equal(t, "hero", tr.Active())

	tr.Observe(0, nil)
	assert.Equal(t, "hero", tr.Active())
}

func TestTracker_ScrolledThreshold(t *testing.T) {
	tr := NewTracker(nil, WithScrolledThreshold(3))
	for _, tt := range []struct {
		offset int
		want   bool
	}{{0, false}, {3, false}, {4, true}, {200, true}} {
		tr.Observe(tt.offset, nil)
		assert.Equal(t, tt.want, tr.Scrolled(), "offset %d", tt.offset)
	}
}

func TestTracker_ScrollScenario(t *testing.T) {
	page := &staticPage{
		order: DefaultAnchors,
		heights: map[string]int{
			"hero": 10, "about": 10, "experience": 10, "education": 10,
			"publications": 10, "certifications": 10, "projects": 10,
			"skills": 10, "contact": 10,
		},
	}
	tr := NewTracker(nil, WithReferenceOffset(2))

	assert.False(t, tr.Observe(0, page))
	assert.Equal(t, "hero", tr.Active())

	// skills starts at line 70.
	page.offset = 69
	assert.True(t, tr.Observe(page.offset, page))
	assert.Equal(t, "skills", tr.Active())

	page.offset = 85
	tr.Observe(page.offset, page)
	assert.Equal(t, "contact", tr.Active())

	// Past the last section nothing spans the reference line.
	page.offset = 200
	assert.False(t, tr.Observe(page.offset, page))
	assert.Equal(t, "contact", tr.Active())
}

func TestTracker_Index(t *testing.T) {
	tr := NewTracker([]string{"hero", "contact"})
	assert.Equal(t, 1, tr.Index("contact"))
	assert.Equal(t, -1, tr.Index("skills"))
}
