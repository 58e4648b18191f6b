package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HStack joins items horizontally with the specified gap between them.
// Items are aligned at the top.
func HStack(gap int, items ...string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}

	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, item)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// VStack joins items vertically with gap blank lines between them.
// Empty items are skipped.
func VStack(gap int, items ...string) string {
	var parts []string
	for _, item := range items {
		if item == "" {
			continue
		}
		if len(parts) > 0 && gap > 0 {
			parts = append(parts, strings.Repeat("\n", gap-1))
		}
		parts = append(parts, item)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Fill expands content to fill the specified width with spaces.
func Fill(w int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= w {
		return content
	}
	return content + strings.Repeat(" ", w-contentWidth)
}

// Center centers content within the specified width.
func Center(w int, content string) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(content)
}

// Right aligns content to the right within the specified width.
func Right(w int, content string) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Right).Render(content)
}

// Place forces content into r, padding or clipping as needed.
func Place(r Rect, content string) string {
	if r.Height == 0 || r.Width == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(r.Width).
		Height(r.Height).
		MaxHeight(r.Height).
		MaxWidth(r.Width).
		Render(content)
}

// Overlay draws top over the first lines of base, line by line.
func Overlay(base, top string) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i, l := range topLines {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = l
	}
	return strings.Join(baseLines, "\n")
}

// LineCount returns the number of lines in s; the empty string has none.
func LineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
