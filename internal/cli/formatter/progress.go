package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%, colored by how far
// along it is: red below a third, yellow below two thirds, green above.
func RenderProgress(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)

	filled := min(int(pct*float64(width)), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct).Render(bar), pct*100)
}

func progressStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 0.33:
		return StyleRed
	case pct < 0.66:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// TodoProgress renders the checklist completion bar for done/total counts.
func TodoProgress(done, total int) string {
	if total == 0 {
		return Dim("no checklist")
	}
	return fmt.Sprintf("%s %d/%d", RenderProgress(float64(done)/float64(total), 10), done, total)
}
