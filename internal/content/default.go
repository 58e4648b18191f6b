package content

import (
	_ "embed"
)

//go:embed defaults/profile.yaml
var defaultProfile []byte

// Default returns the built-in sample profile.
func Default() (*Profile, error) {
	return Parse(defaultProfile)
}
