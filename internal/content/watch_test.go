package content

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcher_ReloadsProfile(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "me.yaml")
	write(t, path, "name: Before\n")

	ctx, cancel := context.WithCancel(context.Background())
	reloaded := make(chan *Profile, 4)
	done := make(chan error, 1)

	w := Watcher{ProfilePath: path, Debounce: 20 * time.Millisecond}
	go func() {
		done <- w.Run(ctx, func(p *Profile) { reloaded <- p })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	write(t, path, "name: After\n")

	select {
	case p := <-reloaded:
		assert.Equal(t, "After", p.Name)
	case <-time.After(3 * time.Second):
		t.Fatal("profile was not reloaded")
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_NothingToWatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watcher{}.Run(ctx, func(*Profile) {}) }()
	cancel()
	require.NoError(t, <-done)
}

func TestWatcher_Relevant(t *testing.T) {
	w := Watcher{ProfilePath: "/a/me.yaml", PublicationsDir: "/a/pubs"}
	assert.True(t, w.relevant("/a/me.yaml"))
	assert.True(t, w.relevant("/a/pubs/x.md"))
	assert.True(t, w.relevant("/a/pubs/X.MD"))
	assert.False(t, w.relevant("/a/pubs/x.txt"))
	assert.False(t, w.relevant("/a/other.yaml"))
}
