//go:build linux

package themestore

import (
	"os"
	"os/exec"
	"strings"
)

// platformPrefersDark asks GNOME's color-scheme setting, which other
// desktops mirror through the settings portal. Headless sessions skip it.
func platformPrefersDark() (bool, bool) {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") == "" {
		return false, false
	}
	out, err := exec.Command("gsettings", "get", "org.gnome.desktop.interface", "color-scheme").Output()
	if err != nil {
		return false, false
	}
	switch strings.Trim(strings.TrimSpace(string(out)), "'") {
	case "prefer-dark":
		return true, true
	case "prefer-light":
		return false, true
	}
	return false, false
}
