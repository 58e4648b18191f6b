package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DrawerStyles defines the appearance of the drawer.
type DrawerStyles struct {
	Container lipgloss.Style
	Item      lipgloss.Style
	Focus     lipgloss.Style
	Active    lipgloss.Style

	// MinWidth is the narrowest panel the drawer draws, screen permitting.
	MinWidth int
}

// Drawer is the slide-down section menu used on narrow terminals.
type Drawer struct {
	Labels []string
	Cursor int
	open   bool
}

// NewDrawer creates a closed drawer over labels.
func NewDrawer(labels []string) Drawer {
	return Drawer{Labels: labels}
}

// Open reports whether the drawer is shown.
func (d *Drawer) Open() bool { return d.open }

// Toggle opens or closes the drawer. Opening puts the cursor on active.
func (d *Drawer) Toggle(active int) {
	if d.open {
		d.Close()
		return
	}
	d.open = true
	d.Cursor = clampIndex(active, len(d.Labels))
}

// Close hides the drawer.
func (d *Drawer) Close() { d.open = false }

// Move shifts the cursor by delta, wrapping around.
func (d *Drawer) Move(delta int) {
	n := len(d.Labels)
	if n == 0 {
		return
	}
	d.Cursor = ((d.Cursor+delta)%n + n) % n
}

// Select closes the drawer and returns the index under the cursor.
func (d *Drawer) Select() int {
	d.Close()
	return d.Cursor
}

// ItemAt maps a line of the rendered drawer to an item index, or -1.
// The first line is the container padding.
func (d *Drawer) ItemAt(y int) int {
	i := y - 1
	if i < 0 || i >= len(d.Labels) {
		return -1
	}
	return i
}

// View renders the drawer at width. active marks the current section.
func (d *Drawer) View(width, active int, styles DrawerStyles) string {
	if !d.open {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n")
	for i, label := range d.Labels {
		marker := "  "
		style := styles.Item
		if i == active {
			marker = "• "
			style = styles.Active
		}
		if i == d.Cursor {
			marker = "› "
			style = styles.Focus
		}
		b.WriteString(style.Render(marker + label))
		b.WriteString("\n")
	}
	// lipgloss widths include padding but not borders
	inner := width - styles.Container.GetHorizontalBorderSize()
	if inner < 0 {
		inner = 0
	}
	return styles.Container.Width(inner).Render(strings.TrimSuffix(b.String(), "\n"))
}

// PanelWidth is the drawer width on a screen of the given width: wide
// enough for the longest label, never below styles.MinWidth, never wider
// than the screen.
func (d *Drawer) PanelWidth(screen int, styles DrawerStyles) int {
	w := 0
	for _, label := range d.Labels {
		w = max(w, lipgloss.Width("› "+label))
	}
	w += styles.Container.GetHorizontalFrameSize()
	w = max(w, styles.MinWidth)
	return max(0, min(w, screen))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
