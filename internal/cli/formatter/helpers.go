package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDateFrom returns a human-friendly relative day label for t as
// seen from now, compared by calendar date.
func RelativeDateFrom(t time.Time, now time.Time) string {
	days := domain.DaysBetween(now, t)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0:
		return fmt.Sprintf("In %dw", days/7)
	case days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// DayLabel renders a routine date as "Thu Mar 20" followed by its relative label.
func DayLabel(date, now time.Time) string {
	return fmt.Sprintf("%s %s", date.Format("Mon Jan 2"), Dim("("+RelativeDateFrom(date, now)+")"))
}

// Percent formats a 0..1 ratio as a whole percentage.
func Percent(v float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(v*100))
}

// Score formats a 0..1 score with two decimals.
func Score(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders clock hours as "07:00, 08:00".
func FormatHours(hours []int) string {
	if len(hours) == 0 {
		return Dim("--")
	}
	parts := make([]string, len(hours))
	for i, h := range hours {
		parts[i] = fmt.Sprintf("%02d:00", h)
	}
	return strings.Join(parts, ", ")
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Truncate shortens s to at most n visible runes, marking the cut with "…".
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// CheckMark renders a completed or open task marker.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Bullets renders items as a dimmed-bullet list, or a placeholder when empty.
func Bullets(items []string, empty string) string {
	if len(items) == 0 {
		return "  " + Dim(empty) + "\n"
	}
	var b strings.Builder
	for _, it := range items {
		b.WriteString("  " + Dim("•") + " " + it + "\n")
	}
	return b.String()
}
