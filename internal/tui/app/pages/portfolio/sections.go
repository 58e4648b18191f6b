package portfolio

import (
	"fmt"
	"strings"

	"github.com/Josepavese/folio/internal/section"
	"github.com/Josepavese/folio/internal/tui/kit/layout"
	"github.com/Josepavese/folio/internal/tui/kit/theme"
	"github.com/Josepavese/folio/internal/tui/kit/widget"
	"github.com/charmbracelet/lipgloss"
)

// renderSection renders one anchor. An empty result leaves the anchor off
// the page.
func (p *Page) renderSection(id string, t theme.Theme, width int) string {
	if !p.profile.HasSection(id) {
		return ""
	}
	var body string
	switch id {
	case "hero":
		return p.renderHero(t, width)
	case "about":
		body = p.renderAbout(t, width)
	case "experience":
		body = p.renderExperience(t, width)
	case "education":
		body = p.renderEducation(t, width)
	case "publications":
		body = p.renderPublications(t, width)
	case "certifications":
		body = p.renderCertifications(t, width)
	case "projects":
		body = p.renderProjects(t, width)
	case "skills":
		body = p.renderSkills(t, width)
	case "contact":
		body = p.renderContact(t, width)
	}
	return layout.VStack(theme.Space.XS, t.Styles.Heading.Render(strings.ToUpper(section.Label(id))), body)
}

func (p *Page) renderHero(t theme.Theme, width int) string {
	pr := p.profile
	var lines []string
	lines = append(lines, "")
	lines = append(lines, t.Styles.Name.Render(strings.ToUpper(pr.Name)))
	if pr.Headline != "" {
		lines = append(lines, t.Styles.Title.Render(pr.Headline))
	}
	if pr.Tagline != "" {
		lines = append(lines, "", t.Styles.TextDim.Width(width).Render(pr.Tagline))
	}
	if pr.Location != "" {
		lines = append(lines, "", t.Styles.Label.Render("⌖ "+pr.Location))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (p *Page) renderAbout(t theme.Theme, width int) string {
	pr := p.profile
	parts := []string{p.markdown.render(pr.About, t.GlamourStyle(), width)}
	if len(pr.Technologies) > 0 {
		parts = append(parts,
			t.Styles.Label.Render("Recently working with:"),
			columns(pr.Technologies, t.Styles.Accent, width))
	}
	return layout.VStack(theme.Space.XS, parts...)
}

func (p *Page) renderExperience(t theme.Theme, width int) string {
	var cards []string
	for _, e := range p.profile.Experience {
		sub := joinNonEmpty(" · ", e.Company, e.Location)
		inner := widget.CardInner(width, cardStyles(t))
		var body []string
		body = append(body, bullets(e.Highlights, t.Styles.Text, inner))
		if len(e.Achievements) > 0 {
			body = append(body, t.Styles.Label.Render("Achievements"), bullets(e.Achievements, t.Styles.Text, inner))
		}
		if len(e.Skills) > 0 {
			body = append(body, chips(e.Skills, t.Styles.Chip, inner))
		}
		cards = append(cards, widget.Card{
			Title:    e.Title,
			Subtitle: sub,
			Meta:     e.Period,
			Body:     layout.VStack(theme.Space.XS, body...),
		}.View(width, cardStyles(t)))
	}
	return layout.VStack(theme.Space.XS, cards...)
}

func (p *Page) renderEducation(t theme.Theme, width int) string {
	var cards []string
	for _, e := range p.profile.Education {
		cards = append(cards, widget.Card{
			Title:    e.Degree,
			Subtitle: e.School,
			Meta:     e.Period,
			Body:     bullets(e.Details, t.Styles.Text, widget.CardInner(width, cardStyles(t))),
		}.View(width, cardStyles(t)))
	}
	return layout.VStack(theme.Space.XS, cards...)
}

func (p *Page) renderPublications(t theme.Theme, width int) string {
	var cards []string
	inner := widget.CardInner(width, cardStyles(t))
	for _, pub := range p.profile.Publications {
		meta := pub.Journal
		if pub.Year > 0 {
			meta = joinNonEmpty(" ", pub.Journal, fmt.Sprintf("(%d)", pub.Year))
		}
		var body []string
		body = append(body, p.markdown.render(pub.Abstract, t.GlamourStyle(), inner))
		if len(pub.Keywords) > 0 {
			body = append(body, chips(pub.Keywords, t.Styles.Chip, inner))
		}
		var refs []string
		if pub.DOI != "" {
			refs = append(refs, t.Styles.Label.Render("doi ")+t.Styles.Link.Render(pub.DOI))
		}
		if pub.ArxivID != "" {
			refs = append(refs, t.Styles.Label.Render("arXiv ")+t.Styles.Link.Render(pub.ArxivID))
		}
		if len(refs) > 0 {
			body = append(body, strings.Join(refs, "  "))
		}
		cards = append(cards, widget.Card{
			Title:    pub.Title,
			Subtitle: pub.Authors,
			Body:     layout.VStack(theme.Space.XS, body...),
			Meta:     meta,
		}.View(width, cardStyles(t)))
	}
	return layout.VStack(theme.Space.XS, cards...)
}

func (p *Page) renderCertifications(t theme.Theme, width int) string {
	var lines []string
	for _, c := range p.profile.Certifications {
		line := t.Styles.Success.Render("✓ ") + t.Styles.Title.Render(c.Title)
		if meta := joinNonEmpty(" · ", c.Issuer, c.Date); meta != "" {
			line += t.Styles.Label.Render("  " + meta)
		}
		lines = append(lines, line)
		if c.URL != "" {
			lines = append(lines, "  "+t.Styles.Link.Render(c.URL))
		}
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (p *Page) renderProjects(t theme.Theme, width int) string {
	var cards []string
	inner := widget.CardInner(width, cardStyles(t))
	for _, pr := range p.profile.Projects {
		var body []string
		body = append(body, p.markdown.render(pr.Description, t.GlamourStyle(), inner))
		if len(pr.Tech) > 0 {
			body = append(body, chips(pr.Tech, t.Styles.Chip, inner))
		}
		var links []string
		if pr.Repo != "" {
			links = append(links, t.Styles.Link.Render(pr.Repo))
		}
		if pr.URL != "" {
			links = append(links, t.Styles.Link.Render(pr.URL))
		}
		if len(links) > 0 {
			body = append(body, strings.Join(links, "  "))
		}
		cards = append(cards, widget.Card{
			Title: pr.Title,
			Body:  layout.VStack(theme.Space.XS, body...),
		}.View(width, cardStyles(t)))
	}
	return layout.VStack(theme.Space.XS, cards...)
}

func (p *Page) renderSkills(t theme.Theme, width int) string {
	styles := widget.SkillBarStyles{
		Name:    t.Styles.Text,
		Percent: t.Styles.Label,
		Fill:    t.Palette.Accent,
		Empty:   t.Palette.SurfaceHighlight,
	}
	var groups []string
	for _, cat := range p.profile.Skills {
		lines := []string{t.Styles.Title.Render(cat.Title)}
		for _, s := range cat.Skills {
			lines = append(lines, widget.SkillBar{Name: s.Name, Level: s.Level}.
				View(width, theme.Width.SkillLabel, theme.Width.SkillBar, styles))
			if s.Description != "" {
				lines = append(lines, t.Styles.TextMuted.Width(width).Render("  "+s.Description))
			}
		}
		groups = append(groups, strings.Join(lines, "\n"))
	}
	return layout.VStack(theme.Space.XS, groups...)
}

func (p *Page) renderContact(t theme.Theme, width int) string {
	c := p.profile.Contact
	var parts []string
	if c.Message != "" {
		parts = append(parts, p.markdown.render(c.Message, t.GlamourStyle(), width))
	}
	var links []string
	if c.Email != "" {
		links = append(links, t.Styles.Label.Render("email  ")+t.Styles.Link.Render(c.Email))
	}
	for _, l := range c.Links {
		links = append(links, t.Styles.Label.Render(fmt.Sprintf("%-6s ", strings.ToLower(l.Label)))+t.Styles.Link.Render(l.URL))
	}
	if len(links) > 0 {
		parts = append(parts, strings.Join(links, "\n"))
	}
	return layout.VStack(theme.Space.XS, parts...)
}

func cardStyles(t theme.Theme) widget.CardStyles {
	return widget.CardStyles{
		Border:   t.Styles.Border,
		Title:    t.Styles.Title,
		Subtitle: t.Styles.Accent,
		Meta:     t.Styles.Label,
		Body:     t.Styles.Text,
		Padding:  theme.Space.XS,
	}
}

// bullets renders items as a list with a hanging indent.
func bullets(items []string, style lipgloss.Style, width int) string {
	if len(items) == 0 {
		return ""
	}
	textW := width - 2
	if textW < 1 {
		textW = 1
	}
	var out []string
	for _, it := range items {
		wrapped := strings.Split(style.Width(textW).Render(it), "\n")
		for i, l := range wrapped {
			prefix := "  "
			if i == 0 {
				prefix = "• "
			}
			out = append(out, prefix+l)
		}
	}
	return strings.Join(out, "\n")
}

// chips lays out short labels left to right, wrapping at width.
func chips(items []string, style lipgloss.Style, width int) string {
	var lines []string
	var row []string
	rowW := 0
	for _, it := range items {
		c := style.Render(it)
		w := lipgloss.Width(c)
		if len(row) > 0 && rowW+1+w > width {
			lines = append(lines, strings.Join(row, " "))
			row, rowW = nil, 0
		}
		if len(row) > 0 {
			rowW++
		}
		row = append(row, c)
		rowW += w
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	return strings.Join(lines, "\n")
}

// columns renders items as a two column "▹ item" list, or one column when
// width is small. Items run down the first column, then the second.
func columns(items []string, marker lipgloss.Style, width int) string {
	if len(items) == 0 {
		return ""
	}
	cols := 2
	if width < 50 {
		cols = 1
	}
	rows := (len(items) + cols - 1) / cols
	colW := (width - theme.Space.SM*(cols-1)) / cols

	var blocks []string
	for start := 0; start < len(items); start += rows {
		end := min(start+rows, len(items))
		lines := make([]string, 0, end-start)
		for _, it := range items[start:end] {
			lines = append(lines, layout.Fill(colW, marker.Render("▹ ")+it))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return layout.HStack(theme.Space.SM, blocks...)
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
