package layout

// Grid defines the 3-zone layout of the folio screen.
//
//	+-----------------------+
//	| HEADER (Fixed)        |  nav tabs, or the compact title bar
//	+-----------------------+
//	|                       |
//	| BODY (Flex)           |  the scrolling page
//	|                       |
//	+-----------------------+
//	| FOOTER (Fixed)        |
//	+-----------------------+
type Grid struct {
	Header Rect
	Body   Rect
	Footer Rect
}

const (
	HeaderHeight        = 4 // 1 line padding top + 3 lines bubble tabs
	CompactHeaderHeight = 2 // title line + rule, used below the narrow breakpoint
	FooterHeight        = 1 // 1 line status bar
)

// CalculateGrid computes the grid zones for a given terminal size.
// headerHeight is HeaderHeight or CompactHeaderHeight. The header wins over
// the footer, and the body takes whatever is left.
func CalculateGrid(width, height, headerHeight int) Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if headerHeight < 0 {
		headerHeight = 0
	}

	availH := height

	allocH := min(headerHeight, availH)
	header := NewRect(0, 0, width, allocH)
	availH -= allocH

	allocF := min(FooterHeight, availH)
	// Footer sticks to bottom
	footer := NewRect(0, height-allocF, width, allocF)
	if footer.Y < header.Height {
		footer.Y = header.Height
	}

	body := NewRect(0, header.Height, width, footer.Y-header.Height)

	return Grid{
		Header: header,
		Body:   body,
		Footer: footer,
	}
}
