package theme

import (
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds all color tokens for one mode. Colors are fixed per mode:
// the user toggle, not the terminal background, decides which palette is
// drawn.
type Palette struct {
	// Base surfaces
	Background       lipgloss.Color
	Surface          lipgloss.Color
	SurfaceSubtle    lipgloss.Color
	SurfaceHighlight lipgloss.Color

	// Text hierarchy
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	TextMuted lipgloss.Color

	// Accent colors
	Accent       lipgloss.Color
	AccentStrong lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
}

// Dark is the palette for dark mode.
var Dark = Palette{
	Background:       "#0F1216",
	Surface:          "#151A21",
	SurfaceSubtle:    "#1A2028",
	SurfaceHighlight: "#2A3440",

	Text:      "#E6EBF2",
	TextDim:   "#9AA6B4",
	TextMuted: "#5B6675",

	Accent:       "#76C7FF",
	AccentStrong: "#3BA3E6",

	Success: "#3DDC84",
	Warning: "#F5C26B",
	Error:   "#F06D79",
}

// Light is the palette for light mode.
var Light = Palette{
	Background:       "#FFFFFF",
	Surface:          "#F5F7FA",
	SurfaceSubtle:    "#E8ECF0",
	SurfaceHighlight: "#C9D2DC",

	Text:      "#1A1A1A",
	TextDim:   "#555F6B",
	TextMuted: "#8A939E",

	Accent:       "#2B7CB8",
	AccentStrong: "#1D5F8F",

	Success: "#2DA866",
	Warning: "#B97F08",
	Error:   "#D93F4C",
}

// Dark256 and Light256 are ANSI 256-color fallbacks for terminals without
// true color.
var (
	Dark256 = Palette{
		Background:       "233",
		Surface:          "235",
		SurfaceSubtle:    "236",
		SurfaceHighlight: "238",
		Text:             "255",
		TextDim:          "245",
		TextMuted:        "240",
		Accent:           "117",
		AccentStrong:     "75",
		Success:          "84",
		Warning:          "221",
		Error:            "210",
	}
	Light256 = Palette{
		Background:       "231",
		Surface:          "255",
		SurfaceSubtle:    "254",
		SurfaceHighlight: "250",
		Text:             "232",
		TextDim:          "243",
		TextMuted:        "248",
		Accent:           "32",
		AccentStrong:     "25",
		Success:          "34",
		Warning:          "172",
		Error:            "160",
	}
)

// PaletteFor picks the palette for mode.
func PaletteFor(mode themestore.Mode, is256 bool) Palette {
	switch {
	case mode.IsDark() && is256:
		return Dark256
	case mode.IsDark():
		return Dark
	case is256:
		return Light256
	default:
		return Light
	}
}
