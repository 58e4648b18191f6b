package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/Josepavese/folio/internal/content"
	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/themestore"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// navItem is one link of the page navigation.
type navItem struct {
	ID    string
	Label string
}

// pageData is what the page template sees.
type pageData struct {
	Profile *content.Profile
	Mode    string
	Dark    bool
	Palette theme.Palette
	Nav     []navItem

	// Sections holds the rendered sections in anchor order.
	Sections []template.HTML

	// Toggle is either a form action (served) or a link (exported).
	ToggleAction string
	ToggleHref   string
}

// Renderer turns a profile into the HTML page.
type Renderer struct {
	md      goldmark.Markdown
	tmpl    *template.Template
	anchors []string
}

// NewRenderer parses the page template. anchors defaults to
// section.DefaultAnchors.
func NewRenderer(anchors []string) (*Renderer, error) {
	if len(anchors) == 0 {
		anchors = section.DefaultAnchors
	}
	r := &Renderer{
		md:      goldmark.New(goldmark.WithExtensions(extension.GFM)),
		anchors: anchors,
	}
	tmpl, err := template.New("folio").Funcs(template.FuncMap{
		"md": r.markdown,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// renderOptions selects how the theme toggle is drawn.
type renderOptions struct {
	toggleAction string
	toggleHref   string
}

// Render writes the page for mode.
func (r *Renderer) Render(w io.Writer, p *content.Profile, mode themestore.Mode, opts renderOptions) error {
	data := pageData{
		Profile:      p,
		Mode:         mode.String(),
		Dark:         mode.IsDark(),
		Palette:      theme.PaletteFor(mode, false),
		ToggleAction: opts.toggleAction,
		ToggleHref:   opts.toggleHref,
	}
	for _, id := range r.anchors {
		if !p.HasSection(id) || r.tmpl.Lookup("section-"+id) == nil {
			continue
		}
		var sec bytes.Buffer
		if err := r.tmpl.ExecuteTemplate(&sec, "section-"+id, data); err != nil {
			return fmt.Errorf("rendering section %s: %w", id, err)
		}
		data.Nav = append(data.Nav, navItem{ID: id, Label: section.Label(id)})
		data.Sections = append(data.Sections, template.HTML(sec.String()))
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// markdown converts profile prose. Raw HTML in the source is not passed
// through.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
