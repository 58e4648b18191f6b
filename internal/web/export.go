package web

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/pkg/sysutil"
	"github.com/Josepavese/folio/internal/themestore"
)

// Export writes a static rendition of p under dir: index.html in light mode
// and dark/index.html in dark mode, each linking to the other. It returns
// the written paths.
func Export(dir string, p *content.Profile, anchors []string) ([]string, error) {
	r, err := NewRenderer(anchors)
	if err != nil {
		return nil, err
	}

	pages := []struct {
		path   string
		mode   themestore.Mode
		toggle string
	}{
		{filepath.Join(dir, "index.html"), themestore.Light, "dark/"},
		{filepath.Join(dir, "dark", "index.html"), themestore.Dark, "../"},
	}

	var written []string
	for _, pg := range pages {
		if _, err := sysutil.EnsureDir(filepath.Dir(pg.path)); err != nil {
			return written, fmt.Errorf("export directory: %w", err)
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, p, pg.mode, renderOptions{toggleHref: pg.toggle}); err != nil {
			return written, err
		}
		if err := sysutil.WriteFileAtomic(pg.path, buf.Bytes(), 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", pg.path, err)
		}
		written = append(written, pg.path)
	}
	return written, nil
}
