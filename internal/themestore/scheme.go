package themestore

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// StaticScheme answers with a fixed preference. The zero value expresses
// no preference.
type StaticScheme struct {
	Dark  bool
	Known bool
}

// PrefersDark implements SchemeDetector.
func (s StaticScheme) PrefersDark() (bool, bool) {
	return s.Dark, s.Known
}

// SchemeFromSetting maps a config value (auto|light|dark) to a detector.
// "auto" and unknown values defer to the host.
func SchemeFromSetting(setting string) SchemeDetector {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "dark":
		return StaticScheme{Dark: true, Known: true}
	case "light":
		return StaticScheme{Dark: false, Known: true}
	}
	return SystemScheme{}
}

// SystemScheme asks, in order: the desktop environment, the COLORFGBG
// variable exported by many terminals, and finally the terminal itself
// (only when stdout is a terminal, since the probe writes an escape query).
type SystemScheme struct{}

// PrefersDark implements SchemeDetector.
func (SystemScheme) PrefersDark() (bool, bool) {
	if dark, ok := platformPrefersDark(); ok {
		return dark, true
	}
	if dark, ok := colorFGBG(os.Getenv("COLORFGBG")); ok {
		return dark, true
	}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return lipgloss.HasDarkBackground(), true
	}
	return false, false
}

// colorFGBG parses "fg;bg" or "fg;default;bg". Background indexes 0-6 and 8
// are the dark half of the 16-colour palette.
func colorFGBG(v string) (bool, bool) {
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil || bg < 0 || bg > 15 {
		return false, false
	}
	return bg < 7 || bg == 8, true
}
