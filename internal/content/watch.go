package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces editor save bursts.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads content when the profile file or the publications
// directory changes.
type Watcher struct {
	ProfilePath     string
	PublicationsDir string
	Debounce        time.Duration
	Logger          *zap.Logger
}

// Run blocks until ctx is cancelled, calling onChange with every
// successfully reloaded profile. Reload errors are logged and the previous
// content stays on screen.
func (w Watcher) Run(ctx context.Context, onChange func(*Profile)) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch directories, not files: editors replace files on save.
	watched := map[string]bool{}
	for _, dir := range []string{dirOf(w.ProfilePath), w.PublicationsDir} {
		if dir == "" || watched[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		watched[dir] = true
	}
	if len(watched) == 0 {
		<-ctx.Done()
		return nil
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev.Name) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("content watcher error", zap.Error(err))
		case <-timer.C:
			p, err := Load(w.ProfilePath, w.PublicationsDir)
			if err != nil {
				logger.Warn("content reload failed", zap.Error(err))
				continue
			}
			logger.Info("content reloaded", zap.String("profile", w.ProfilePath))
			onChange(p)
		}
	}
}

func (w Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if w.ProfilePath != "" && name == filepath.Clean(w.ProfilePath) {
		return true
	}
	if w.PublicationsDir != "" && filepath.Dir(name) == filepath.Clean(w.PublicationsDir) {
		return isPublicationFile(name)
	}
	return false
}

func dirOf(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Dir(path)
}
