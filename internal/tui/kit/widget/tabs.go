package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabsRenderOptions configures the rendering of the nav tabs.
type TabsRenderOptions struct {
	Labels      []string
	ActiveIndex int
	Width       int

	// Scrolled draws the baseline heavier once the page has left the top.
	Scrolled bool

	// Colors
	HighlightColor lipgloss.TerminalColor // For active text
	InactiveColor  lipgloss.TerminalColor // For inactive text
	BorderColor    lipgloss.TerminalColor // For separators/lines
	ScrolledColor  lipgloss.TerminalColor // For the baseline when Scrolled
}

// TabsHeight is the number of lines RenderTabs produces.
const TabsHeight = 4

// RenderTabs renders a contiguous tab bar with rounded "bubble" tabs. When
// the tabs do not fit, a window of tabs around the active one is shown.
func RenderTabs(opts TabsRenderOptions) string {
	if len(opts.Labels) == 0 {
		return ""
	}

	baseline := "─"
	lineColor := opts.BorderColor
	if opts.Scrolled {
		baseline = "━"
		if opts.ScrolledColor != nil {
			lineColor = opts.ScrolledColor
		}
	}

	// Active tab style: Open bottom (3 lines high)
	activeStyle := lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:         "─",
			Bottom:      " ",
			Left:        "│",
			Right:       "│",
			TopLeft:     "╭",
			TopRight:    "╮",
			BottomLeft:  "┘",
			BottomRight: "└",
		}, true).
		BorderForeground(opts.BorderColor).
		Foreground(opts.HighlightColor).
		Padding(0, 1).
		Bold(true)

	// Inactive tab style: Closed bottom (3 lines high to maintain baseline)
	inactiveStyle := lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:         "─",
			Bottom:      baseline,
			Left:        "│",
			Right:       "│",
			TopLeft:     "╭",
			TopRight:    "╮",
			BottomLeft:  "┴",
			BottomRight: "┴",
		}, true).
		BorderForeground(opts.BorderColor).
		BorderBottomForeground(lineColor).
		Foreground(opts.InactiveColor).
		Padding(0, 1)

	rendered := make([]string, len(opts.Labels))
	widths := make([]int, len(opts.Labels))
	for i, label := range opts.Labels {
		text := strings.ToUpper(label)
		if i == opts.ActiveIndex {
			rendered[i] = activeStyle.Render(text)
		} else {
			rendered[i] = inactiveStyle.Render(text)
		}
		widths[i] = lipgloss.Width(rendered[i])
	}

	rule := func(w int) string {
		return lipgloss.NewStyle().
			Border(lipgloss.Border{Bottom: baseline}, false, false, true, false).
			BorderForeground(lineColor).
			Width(w).
			Height(2).
			Render("")
	}

	// Stable prefix: always 2 cells of baseline to prevent shifting
	const prefixWidth = 2
	start, end := VisibleTabs(widths, opts.ActiveIndex, opts.Width-prefixWidth)

	pieces := []string{rule(prefixWidth)}
	pieces = append(pieces, rendered[start:end]...)
	tabsRow := lipgloss.JoinHorizontal(lipgloss.Bottom, pieces...)

	if gapWidth := opts.Width - lipgloss.Width(tabsRow); gapWidth > 0 {
		tabsRow = lipgloss.JoinHorizontal(lipgloss.Bottom, tabsRow, rule(gapWidth))
	}

	// Force bottom alignment: the 3-line tabs sit on lines 1-3, line 0 stays empty
	return lipgloss.Place(opts.Width, TabsHeight, lipgloss.Left, lipgloss.Bottom, tabsRow)
}

// VisibleTabs returns the half-open range of tabs that fits in avail cells
// and contains active. The window grows outward from the active tab, one
// tab to the right and then one to the left per step.
func VisibleTabs(widths []int, active, avail int) (start, end int) {
	if len(widths) == 0 {
		return 0, 0
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= avail {
		return 0, len(widths)
	}
	if active < 0 || active >= len(widths) {
		active = 0
	}

	start, end = active, active+1
	used := widths[active]
	for {
		grew := false
		if end < len(widths) && used+widths[end] <= avail {
			used += widths[end]
			end++
			grew = true
		}
		if start > 0 && used+widths[start-1] <= avail {
			start--
			used += widths[start]
			grew = true
		}
		if !grew {
			return start, end
		}
	}
}

// TabAt maps an x offset in the rendered bar to a tab index, or -1.
func TabAt(widths []int, active, avail, x int) int {
	const prefixWidth = 2
	start, end := VisibleTabs(widths, active, avail-prefixWidth)
	cursor := prefixWidth
	for i := start; i < end; i++ {
		if x >= cursor && x < cursor+widths[i] {
			return i
		}
		cursor += widths[i]
	}
	return -1
}

// TabWidths measures each label as RenderTabs draws it: upper-cased, one
// cell of padding and one of border on each side.
func TabWidths(labels []string) []int {
	widths := make([]int, len(labels))
	for i, l := range labels {
		widths[i] = lipgloss.Width(strings.ToUpper(l)) + 4
	}
	return widths
}
