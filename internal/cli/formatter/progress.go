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

// RenderProgress renders a completion bar like [████░░░░] 45%.
// Green above 66%, yellow from 33%, red below.
func RenderProgress(pct float64, width int) string {
	pct, width = clampBar(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", barStyle(pct).Render(bar(pct, width)), pct*100)
}

// RenderCompactBar renders the bar alone, for dense layouts such as the
// dashboard day list. dim renders it without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, width = clampBar(pct, width)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	return barStyle(pct).Render(bar(pct, width))
}

func clampBar(pct float64, width int) (float64, int) {
	pct = max(0, min(1, pct))
	return pct, max(2, width)
}

func bar(pct float64, width int) string {
	filled := min(width, int(pct*float64(width)))
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

func barStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 0.33:
		return StyleRed
	case pct < 0.66:
		return StyleYellow
	default:
		return StyleGreen
	}
}
