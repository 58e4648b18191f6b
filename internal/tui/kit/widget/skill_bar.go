package widget

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// SkillBarStyles defines the appearance of a skill bar.
type SkillBarStyles struct {
	Name    lipgloss.Style
	Percent lipgloss.Style
	Fill    lipgloss.Color
	Empty   lipgloss.Color
}

// SkillBar renders one named proficiency as a progress bar.
type SkillBar struct {
	Name  string
	Level int // 0-100
}

// View renders "name  [bar]  NN%" in width cells. labelWidth is the name
// column; barMax caps the bar.
func (s SkillBar) View(width, labelWidth, barMax int, styles SkillBarStyles) string {
	level := s.Level
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}

	percent := styles.Percent.Render(fmt.Sprintf("%3d%%", level))
	barWidth := width - labelWidth - lipgloss.Width(percent) - 2
	if barWidth > barMax {
		barWidth = barMax
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(styles.Fill)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
	bar.EmptyColor = string(styles.Empty)

	name := styles.Name.Width(labelWidth).MaxWidth(labelWidth).Render(s.Name)
	return lipgloss.JoinHorizontal(lipgloss.Top, name, bar.ViewAs(float64(level)/100), " ", percent)
}
