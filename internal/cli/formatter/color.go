package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle maps a recommendation priority to its color.
func PriorityStyle(p analytics.Priority) lipgloss.Style {
	switch p {
	case analytics.PriorityUrgent:
		return StyleRed
	case analytics.PriorityHigh:
		return StyleYellow
	case analytics.PriorityMedium:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PriorityBadge renders a priority as a colored dot plus label, e.g. "● HIGH".
func PriorityBadge(p analytics.Priority) string {
	label := strings.ToUpper(string(p))
	if label == "" {
		label = "NONE"
	}
	return PriorityStyle(p).Render("● " + label)
}

// ReadinessIndicator returns a colored readiness label such as "● OPTIMAL".
func ReadinessIndicator(r analytics.Readiness) string {
	label := "● " + strings.ToUpper(string(r))
	switch r {
	case analytics.ReadinessOptimal:
		return StyleGreen.Render(label)
	case analytics.ReadinessGood:
		return StyleBlue.Render(label)
	case analytics.ReadinessCaution:
		return StyleYellow.Render(label)
	case analytics.ReadinessRest:
		return StyleRed.Render(label)
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// CoachingIndicator colors the energy status of a coaching message.
func CoachingIndicator(s analytics.CoachingStatus) string {
	switch s {
	case analytics.StatusPeakEnergy:
		return StyleGreen.Render("▲ peak energy")
	case analytics.StatusLowEnergy:
		return StyleYellow.Render("▼ low energy")
	case analytics.StatusModerateEnergy:
		return StyleBlue.Render("■ moderate energy")
	default:
		return StyleDim.Render("· no pattern yet")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
