//go:build !darwin && !linux

package themestore

func platformPrefersDark() (bool, bool) {
	return false, false
}
