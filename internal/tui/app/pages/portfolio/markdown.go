package portfolio

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type markdownKey struct {
	style string
	width int
}

// markdown renders profile prose with glamour. Renderers are cached per
// style and width because building one parses the whole style sheet.
type markdown struct {
	renderers map[markdownKey]*glamour.TermRenderer
	logger    *zap.Logger
}

func newMarkdown(logger *zap.Logger) *markdown {
	return &markdown{
		renderers: map[markdownKey]*glamour.TermRenderer{},
		logger:    logger,
	}
}

// render returns src rendered at width, without the blank lines glamour
// puts around a document. On failure the plain text is wrapped instead.
func (m *markdown) render(src, style string, width int) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	r, err := m.renderer(style, width)
	if err == nil {
		var out string
		if out, err = r.Render(src); err == nil {
			return trimBlankLines(out)
		}
	}
	m.logger.Warn("markdown render failed", zap.Error(err))
	return lipgloss.NewStyle().Width(width).Render(src)
}

func (m *markdown) renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := markdownKey{style: style, width: width}
	if r, ok := m.renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[key] = r
	return r, nil
}

// trimBlankLines drops leading and trailing lines that hold only spaces.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
