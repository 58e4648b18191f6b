package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CardStyles defines the appearance of a card.
type CardStyles struct {
	Border   lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Meta     lipgloss.Style
	Body     lipgloss.Style

	// Padding is the horizontal padding inside the border, per side.
	Padding int
}

// Card is a bordered block with a title line, an optional right-aligned
// meta (dates), a subtitle and a pre-rendered body.
type Card struct {
	Title    string
	Subtitle string
	Meta     string
	Body     string
}

// CardInner is the content width of a card drawn at width.
func CardInner(width int, styles CardStyles) int {
	return max(1, width-2-2*styles.Padding)
}

// View renders the card at width, including the border.
func (c Card) View(width int, styles CardStyles) string {
	inner := CardInner(width, styles)

	meta := styles.Meta.Render(c.Meta)
	metaW := lipgloss.Width(meta)

	titleAvail := inner - metaW - 1
	if c.Meta == "" {
		titleAvail = inner
	}
	title := styles.Title.Render(truncate(c.Title, titleAvail))

	head := title
	if c.Meta != "" {
		gap := inner - lipgloss.Width(title) - metaW
		if gap < 1 {
			// No room beside the title: meta moves to its own line.
			head = title + "\n" + meta
		} else {
			head = title + strings.Repeat(" ", gap) + meta
		}
	}

	parts := []string{head}
	if c.Subtitle != "" {
		parts = append(parts, styles.Subtitle.Render(truncate(c.Subtitle, inner)))
	}
	if c.Body != "" {
		parts = append(parts, "", styles.Body.Render(c.Body))
	}

	return styles.Border.
		Width(width-2).
		Padding(0, styles.Padding).
		Render(strings.Join(parts, "\n"))
}

// truncate cuts s to w cells, marking the cut with an ellipsis.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= w {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > w {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
