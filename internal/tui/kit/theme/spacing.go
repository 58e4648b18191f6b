package theme

// Space defines the spacing scale in terminal cells.
// Use these values for consistent padding, margins, and gaps.
var Space = struct {
	XS int // Blank lines between blocks, card padding
	SM int // Gap between columns
}{
	XS: 1,
	SM: 2,
}

// Width defines common width presets for layout elements.
var Width = struct {
	Content    int // Maximum width of the page column
	SkillLabel int // Name column beside a skill bar
	SkillBar   int // Maximum skill bar width
	DrawerMin  int // Minimum drawer width
}{
	Content:    96,
	SkillLabel: 22,
	SkillBar:   40,
	DrawerMin:  24,
}

// Inset defines horizontal padding applied to the page column.
// TotalContent is left+right padding; subtract it from available width when
// sizing inner blocks.
var Inset = struct {
	TotalContent int
}{
	TotalContent: 4, // 2 cells per side
}

// ContentWidth returns the page column width for a body of width w.
func ContentWidth(w int) int {
	cw := w - Inset.TotalContent
	if cw > Width.Content {
		cw = Width.Content
	}
	if cw < 0 {
		cw = 0
	}
	return cw
}
