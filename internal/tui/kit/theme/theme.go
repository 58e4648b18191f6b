// Package theme turns a themestore.Mode into lipgloss styles for the
// terminal page.
//
// Usage:
//
//	b := theme.NewBinding(themestore.Light)
//	detach := b.Attach(store)
//	defer detach()
//	style := b.Current().Styles.Title
package theme

import (
	"os"
	"strings"

	"github.com/Josepavese/folio/internal/themestore"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the active palette and terminal capability flags.
type Theme struct {
	Mode themestore.Mode

	// Palette contains all color tokens
	Palette Palette

	// Is256 indicates if we're using 256-color fallback
	Is256 bool

	// IsDark mirrors Mode for components that only need the flag
	IsDark bool

	// Styles contains pre-defined lipgloss styles
	Styles Styles

	// Layout contains spacing/sizing metrics
	Layout Layout
}

// Styles holds common reusable styles
type Styles struct {
	Text         lipgloss.Style
	TextDim      lipgloss.Style
	TextMuted    lipgloss.Style
	Accent       lipgloss.Style
	AccentStrong lipgloss.Style
	Success      lipgloss.Style
	Error        lipgloss.Style
	Warning      lipgloss.Style

	// Page elements
	Name    lipgloss.Style
	Heading lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Link    lipgloss.Style
	Chip    lipgloss.Style
	Border  lipgloss.Style

	// Navigation
	NavItem         lipgloss.Style
	NavItemActive   lipgloss.Style
	Header          lipgloss.Style
	HeaderScrolled  lipgloss.Style
	Drawer          lipgloss.Style
	DrawerItem      lipgloss.Style
	DrawerItemFocus lipgloss.Style
}

// Layout holds metrics for UI spacing and sizing.
type Layout struct {
	ContainerPadding int
}

// GlamourStyle names the glamour standard style matching the mode.
func (t Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// FromMode builds the theme for mode, picking the 256-color fallback when
// the terminal lacks true color.
func FromMode(mode themestore.Mode) Theme {
	is256 := shouldUse256Colors()
	t := buildTheme(PaletteFor(mode, is256), mode)
	t.Is256 = is256
	return t
}

func buildTheme(p Palette, mode themestore.Mode) Theme {
	styles := Styles{
		Text:         lipgloss.NewStyle().Foreground(p.Text),
		TextDim:      lipgloss.NewStyle().Foreground(p.TextDim),
		TextMuted:    lipgloss.NewStyle().Foreground(p.TextMuted),
		Accent:       lipgloss.NewStyle().Foreground(p.Accent),
		AccentStrong: lipgloss.NewStyle().Foreground(p.AccentStrong).Bold(true),
		Success:      lipgloss.NewStyle().Foreground(p.Success),
		Error:        lipgloss.NewStyle().Foreground(p.Error),
		Warning:      lipgloss.NewStyle().Foreground(p.Warning),

		Name:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(p.AccentStrong).Bold(true).Underline(true),
		Title:   lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(p.TextDim),
		Value:   lipgloss.NewStyle().Foreground(p.Text),
		Link:    lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		Chip:    lipgloss.NewStyle().Foreground(p.Accent).Background(p.SurfaceSubtle).Padding(0, 1),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.SurfaceHighlight),

		NavItem:       lipgloss.NewStyle().Foreground(p.TextDim),
		NavItemActive: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Header:        lipgloss.NewStyle().Foreground(p.Text),
		HeaderScrolled: lipgloss.NewStyle().
			Foreground(p.Text).
			Background(p.Surface),
		Drawer: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.SurfaceHighlight).
			Background(p.Surface).
			Padding(0, 2),
		DrawerItem:      lipgloss.NewStyle().Foreground(p.TextDim),
		DrawerItemFocus: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
	}

	return Theme{
		Mode:    mode,
		Palette: p,
		IsDark:  mode.IsDark(),
		Styles:  styles,
		Layout:  Layout{ContainerPadding: 2},
	}
}

// shouldUse256Colors checks if we should use 256-color fallback.
// This happens when COLORTERM is not set to truecolor/24bit.
func shouldUse256Colors() bool {
	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return false
	}
	return strings.Contains(os.Getenv("TERM"), "256color")
}
