package themestore

import "strings"

// Mode is the display theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the persisted token for m.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// ParseMode recognises the two persisted tokens. Anything else is rejected.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}
