package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config that keeps every file under a temp dir.
func writeConfig(t *testing.T, extra string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "prefs_file: " + filepath.Join(dir, "prefs.yaml") + "\n" +
		"log:\n  level: error\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestThemeCommands_Persist(t *testing.T) {
	cfg := writeConfig(t, "theme:\n  scheme: light\n")

	out, err := execute(t, "--config", cfg, "theme", "show")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)

	out, err = execute(t, "--config", cfg, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	// A new process sees the persisted mode, not the scheme setting.
	out, err = execute(t, "--config", cfg, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = execute(t, "--config", cfg, "theme", "toggle")
	require.NoError(t, err)
	assert.Equal(t, "light\n", out)
}

func TestThemeShow_FollowsSchemeSetting(t *testing.T) {
	cfg := writeConfig(t, "theme:\n  scheme: dark\n")
	out, err := execute(t, "--config", cfg, "theme", "show")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)
}

func TestSections(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := execute(t, "--config", cfg, "sections")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "ANCHOR")
	assert.Contains(t, lines[1], "hero")
	assert.Contains(t, lines[1], "Hero")
	assert.Contains(t, lines[9], "contact")
}

func TestExport(t *testing.T) {
	cfg := writeConfig(t, "")
	dir := t.TempDir()
	out, err := execute(t, "--config", cfg, "export", "-o", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "index.html")+"\n"+filepath.Join(dir, "dark", "index.html")+"\n", out)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.FileExists(t, filepath.Join(dir, "dark", "index.html"))
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "folio "), out)
}

func TestInvalidConfig(t *testing.T) {
	cfg := writeConfig(t, "theme:\n  scheme: sepia\n")
	_, err := execute(t, "--config", cfg, "theme", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme.scheme")
}

func TestMissingProfile(t *testing.T) {
	cfg := writeConfig(t, "profile: /does/not/exist.yaml\n")
	_, err := execute(t, "--config", cfg, "sections")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading content")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	// The written file loads and drives the other commands.
	out, err = execute(t, "--config", path, "sections")
	require.NoError(t, err)
	assert.Contains(t, out, "hero")

	_, err = execute(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)
}
