package build

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version, Commit and Date are injected at build time:
//
//	go build -ldflags "-X github.com/Josepavese/folio/internal/build.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info describes the running binary. A dev build falls back to the module
// version and VCS revision recorded by the Go toolchain.
func Info() string {
	version, commit := Version, Commit
	if bi, ok := debug.ReadBuildInfo(); ok {
		if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			version = bi.Main.Version
		}
		if commit == "" {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && len(s.Value) >= 7 {
					commit = s.Value[:7]
				}
			}
		}
	}

	out := "folio " + version
	if commit != "" {
		out += " (" + commit + ")"
	}
	if Date != "" {
		out += " built " + Date
	}
	return fmt.Sprintf("%s %s/%s", out, runtime.GOOS, runtime.GOARCH)
}
