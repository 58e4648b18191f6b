//go:build darwin

package themestore

import (
	"os/exec"
	"strings"
)

// platformPrefersDark reads AppleInterfaceStyle; the key only exists in
// dark mode, so a failed read means light.
func platformPrefersDark() (bool, bool) {
	out, err := exec.Command("defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return false, true
	}
	return strings.TrimSpace(string(out)) == "Dark", true
}
