// Package portfolio is the single scrolling page of the terminal UI. Each
// section of the profile is rendered as one block; the page records the
// line span of every block so the section tracker can locate it.
package portfolio

import (
	"strings"

	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/layout"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/view"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// sectionGap is the number of blank lines between sections.
var sectionGap = theme.Space.XS

// ContentMsg replaces the profile shown on the page.
type ContentMsg struct {
	Profile *content.Profile
}

type span struct {
	top, bottom int
}

type renderKey struct {
	mode  themestore.Mode
	width int
}

// Page implements view.Page over a content.Profile.
type Page struct {
	view.BaseViewlet

	theme    *theme.Binding
	profile  *content.Profile
	anchors  []string
	viewport viewport.Model
	markdown *markdown
	logger   *zap.Logger

	spans    map[string]span
	rendered renderKey
}

// New returns a page over profile showing anchors in order. Anchors with
// nothing to show (no publications, say) are left off the page.
func New(profile *content.Profile, binding *theme.Binding, anchors []string, logger *zap.Logger) *Page {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(anchors) == 0 {
		anchors = section.DefaultAnchors
	}
	return &Page{
		theme:    binding,
		profile:  profile,
		anchors:  anchors,
		viewport: viewport.New(0, 0),
		markdown: newMarkdown(logger),
		logger:   logger,
		spans:    map[string]span{},
	}
}

// Init initializes the viewlet.
func (p *Page) Init() tea.Cmd {
	return nil
}

// Update handles content reloads, theme changes and scrolling.
func (p *Page) Update(msg tea.Msg) (view.Viewlet, tea.Cmd) {
	switch msg := msg.(type) {
	case ContentMsg:
		if msg.Profile != nil {
			p.profile = msg.Profile
			p.rerender()
		}
		return p, nil

	case view.ThemeMsg:
		if p.rendered.mode != msg.Mode {
			p.rerender()
		}
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "home", "g":
			p.viewport.GotoTop()
			return p, nil
		case "end", "G":
			p.viewport.GotoBottom()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the visible part of the page.
func (p *Page) View() string {
	return p.viewport.View()
}

// Resize updates the viewport and re-renders when the width changed.
func (p *Page) Resize(r layout.Rect) {
	p.BaseViewlet.Resize(r)
	p.viewport.Width = r.Width
	p.viewport.Height = r.Height
	if p.rendered.width != theme.ContentWidth(r.Width) {
		p.rerender()
		return
	}
	// Height changes move the bottom padding.
	p.render()
}

// Shortcuts returns the page's scrolling keys.
func (p *Page) Shortcuts() []view.Shortcut {
	return []view.Shortcut{
		{Key: "↑/↓", Label: "scroll"},
		{Key: "pgup/pgdn", Label: "page"},
	}
}

// Bounds reports the anchor's span relative to the top of the body.
func (p *Page) Bounds(id string) (section.Bounds, bool) {
	s, ok := p.spans[id]
	if !ok {
		return section.Bounds{}, false
	}
	off := p.viewport.YOffset
	return section.Bounds{ID: id, Top: s.top - off, Bottom: s.bottom - off}, true
}

// Offset is the first visible line.
func (p *Page) Offset() int {
	return p.viewport.YOffset
}

// ScrollTo puts the anchor's first line at the top of the body.
func (p *Page) ScrollTo(id string) bool {
	s, ok := p.spans[id]
	if !ok {
		return false
	}
	p.viewport.SetYOffset(s.top)
	return true
}

// rerender renders again and keeps the section at the top of the body in
// place, so a resize or theme switch does not lose the reader's position.
func (p *Page) rerender() {
	id, delta := p.topSection()
	p.render()
	if id == "" {
		return
	}
	s, ok := p.spans[id]
	if !ok {
		return
	}
	if limit := s.bottom - s.top; delta > limit {
		delta = limit
	}
	p.viewport.SetYOffset(s.top + delta)
}

// topSection returns the section covering the first visible line and how
// far into it that line is.
func (p *Page) topSection() (string, int) {
	off := p.viewport.YOffset
	for _, id := range p.anchors {
		s, ok := p.spans[id]
		if ok && s.top <= off && off <= s.bottom {
			return id, off - s.top
		}
	}
	return "", 0
}

func (p *Page) render() {
	t := p.theme.Current()
	width := theme.ContentWidth(p.Width())
	p.rendered = renderKey{mode: t.Mode, width: width}
	p.spans = map[string]span{}

	if width <= 0 || p.profile == nil {
		p.viewport.SetContent("")
		return
	}

	indent := lipgloss.NewStyle().PaddingLeft(theme.Inset.TotalContent / 2)
	clip := lipgloss.NewStyle().MaxWidth(width)

	var blocks []string
	line := 0
	lastTop := 0
	for _, id := range p.anchors {
		block := p.renderSection(id, t, width)
		if block == "" {
			continue
		}
		block = indent.Render(clip.Render(block))
		n := layout.LineCount(block)
		p.spans[id] = span{top: line, bottom: line + n - 1}
		lastTop = line
		blocks = append(blocks, block)
		line += n + sectionGap
	}

	page := strings.Join(blocks, strings.Repeat("\n", sectionGap+1))
	total := layout.LineCount(page)
	// Pad so the last section can still be scrolled to the top.
	if pad := lastTop + p.viewport.Height - total; pad > 0 {
		page += strings.Repeat("\n", pad)
	}
	p.viewport.SetContent(page)
	p.logger.Debug("page rendered",
		zap.Stringer("mode", t.Mode),
		zap.Int("width", width),
		zap.Int("sections", len(p.spans)))
}
