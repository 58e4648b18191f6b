package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	s := NewFileStorage(path)

	_, err := s.Load("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save("theme", "dark"))
	require.NoError(t, s.Save("other", "kept"))

	fresh := NewFileStorage(path)
	got, err := fresh.Load("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)

	other, err := fresh.Load("other")
	require.NoError(t, err)
	assert.Equal(t, "kept", other)
}

func TestFileStorage_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- dark\n- light\n"), 0644))

	s := NewFileStorage(path)
	_, err := s.Load("theme")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	// Saving over a corrupt file recovers it.
	require.NoError(t, s.Save("theme", "light"))
	got, err := s.Load("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}

func TestMemoryStorage(t *testing.T) {
	m := NewMemoryStorage()
	_, err := m.Load("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save("theme", "dark"))
	got, err := m.Load("theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", got)
}

func TestMemoryStorage_ZeroValue(t *testing.T) {
	var m MemoryStorage
	_, err := m.Load("theme")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save("theme", "light"))
	got, err := m.Load("theme")
	require.NoError(t, err)
	assert.Equal(t, "light", got)
}
