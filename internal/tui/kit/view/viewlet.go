package view

import (
	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/layout"
	tea "github.com/charmbracelet/bubbletea"
)

// Shortcut represents a keyboard shortcut with its key and description.
type Shortcut struct {
	Key   string // e.g., "↑/↓", "pgup"
	Label string // e.g., "scroll", "page"
}

// Viewlet is the interface the shell body implements.
// It provides a consistent lifecycle for initialization, updates,
// rendering, and sizing.
type Viewlet interface {
	// Init returns a command to run when the viewlet is first mounted.
	Init() tea.Cmd

	// Update handles messages and returns the updated viewlet and any command.
	Update(msg tea.Msg) (Viewlet, tea.Cmd)

	// View renders the viewlet content as a string.
	// The content MUST fit within the Rect provided by Resize.
	View() string

	// Resize updates the viewlet's dimensions.
	Resize(r layout.Rect)

	// Shortcuts lists the viewlet's own keys for the status bar.
	Shortcuts() []Shortcut
}

// Page is a scrolling viewlet made of named sections. It reports section
// bounds relative to its current scroll offset.
type Page interface {
	Viewlet
	section.Locator

	// Offset is the first visible line.
	Offset() int

	// ScrollTo brings the anchor's first line to the top of the body.
	ScrollTo(id string) bool
}

// BaseViewlet provides common functionality for viewlets.
// Embed this in your viewlet implementation.
type BaseViewlet struct {
	Rect layout.Rect
}

// Resize updates the viewlet's dimensions.
func (b *BaseViewlet) Resize(r layout.Rect) {
	b.Rect = r
}

// Width returns the current width.
func (b *BaseViewlet) Width() int {
	return b.Rect.Width
}

// Height returns the current height.
func (b *BaseViewlet) Height() int {
	return b.Rect.Height
}

// Shortcuts returns no viewlet-specific shortcuts.
func (b *BaseViewlet) Shortcuts() []Shortcut {
	return nil
}

// ThemeMsg tells the body the display mode changed.
type ThemeMsg struct {
	Mode themestore.Mode
}

// StatusMsg sets the transient text on the right of the status bar.
type StatusMsg struct {
	Text string
}
