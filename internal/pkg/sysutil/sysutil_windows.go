//go:build windows

package sysutil

// TargetUIDGID has no meaning on Windows.
func TargetUIDGID() (int, int, error) {
	return 0, 0, nil
}

// FixPermissions is a no-op on Windows.
func FixPermissions(path string) error {
	return nil
}
