//go:build !windows

package sysutil

import (
	"os"
	"strconv"
)

// TargetUIDGID returns the UID and GID of the SUDO_USER,
// or the current process's UID/GID if not running under sudo.
func TargetUIDGID() (int, int, error) {
	uidStr := os.Getenv("SUDO_UID")
	gidStr := os.Getenv("SUDO_GID")

	if uidStr == "" || gidStr == "" {
		return os.Getuid(), os.Getgid(), nil
	}
	uid, err := strconv.Atoi(uidStr)
	if err != nil {
		return 0, 0, err
	}
	gid, err := strconv.Atoi(gidStr)
	if err != nil {
		return 0, 0, err
	}
	return uid, gid, nil
}

// FixPermissions hands a file in the folio home back to the invoking user
// when folio runs under sudo, so the next unprivileged session can rewrite it.
func FixPermissions(path string) error {
	if os.Getenv("SUDO_UID") == "" {
		return nil
	}
	uid, gid, err := TargetUIDGID()
	if err != nil {
		return err
	}
	return os.Chown(path, uid, gid)
}
