package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/upjobs/upjobs/internal/ui/theme"
)

// ProgressBar is a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

// StepIndicator renders a "Step 2 of 3: Title" line with dots marking
// done, current and upcoming steps.
func StepIndicator(current, total int, title string) string {
	var dots []string
	for i := range total {
		switch {
		case i < current:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		case i == current:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("●"))
		default:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Step %d of %d: ", current+1, total))
	name := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title)

	return strings.Join(dots, " ") + label + name
}
