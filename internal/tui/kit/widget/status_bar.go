package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarStyles defines the appearance of the status bar.
type StatusBarStyles struct {
	Key    lipgloss.Style
	Label  lipgloss.Style
	Status lipgloss.Style
}

// StatusBar renders the footer bar with keymap hints and status.
type StatusBar struct {
	width  int
	items  []StatusBarItem
	status string
	styles StatusBarStyles
}

// StatusBarItem represents a single keymap hint.
type StatusBarItem struct {
	Key   string
	Label string
}

// NewStatusBar creates a status bar with the given width and styles.
func NewStatusBar(width int, styles StatusBarStyles) StatusBar {
	return StatusBar{
		width:  width,
		styles: styles,
	}
}

// SetItems updates the keymap hints.
func (s *StatusBar) SetItems(items []StatusBarItem) {
	s.items = items
}

// SetStatus sets the right-aligned status text.
func (s *StatusBar) SetStatus(status string) {
	s.status = status
}

// View renders the status bar. Hints that do not fit are dropped from the
// end; the status text is always kept.
func (s StatusBar) View() string {
	statusRendered := s.styles.Status.Render(s.status)
	room := s.width - lipgloss.Width(statusRendered) - 2

	var keymap strings.Builder
	for i, item := range s.items {
		hint := s.styles.Key.Render(item.Key) + " " + s.styles.Label.Render(item.Label)
		sep := ""
		if i > 0 {
			sep = "  "
		}
		if lipgloss.Width(keymap.String())+lipgloss.Width(sep+hint) > room {
			break
		}
		keymap.WriteString(sep + hint)
	}

	spacerWidth := s.width - lipgloss.Width(keymap.String()) - lipgloss.Width(statusRendered)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	return keymap.String() + strings.Repeat(" ", spacerWidth) + statusRendered
}
