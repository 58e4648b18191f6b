package layout

import "fmt"

// Rect represents a rectangle in terminal cells.
// Origin (0,0) is top-left.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect creates a new Rect, clamping negative sizes to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Inner returns r shrunk by padding. Padding larger than r yields a zero size.
func (r Rect) Inner(top, right, bottom, left int) Rect {
	return NewRect(r.X+left, r.Y+top, r.Width-left-right, r.Height-top-bottom)
}

// Contains reports whether (x, y) is within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Local translates absolute coordinates into r's coordinate space.
func (r Rect) Local(x, y int) (int, int) {
	return x - r.X, y - r.Y
}
