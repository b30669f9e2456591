package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func wellspringHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newLogTaskForm collects a routine task. Values are written into in as
// the user types; in.task converts them once the form completes.
func newLogTaskForm(in *taskInput) *huh.Form {
	categories := make([]huh.Option[string], len(domain.KnownCategories))
	for i, c := range domain.KnownCategories {
		categories[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Placeholder("Morning run").
				Value(&in.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Start time (HH:MM)").
				Value(&in.Time).
				Validate(validateClock),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&in.Duration).
				Validate(validateNonNegativeInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&in.Category),
			huh.NewInput().
				Title("Description (optional)").
				Value(&in.Description),
			huh.NewConfirm().
				Title("Already done?").
				Value(&in.Completed),
		),
	).WithTheme(wellspringHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateClock(s string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use 24h HH:MM, e.g. 07:30")
	}
	return nil
}

func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a whole number of minutes")
	}
	return nil
}

// task converts the raw input into a RoutineTask. An empty duration is zero.
func (in taskInput) task() (domain.RoutineTask, error) {
	if err := validateNonNegativeInt(in.Duration); err != nil {
		return domain.RoutineTask{}, fmt.Errorf("duration %q: %w", in.Duration, err)
	}
	minutes, _ := strconv.Atoi(strings.TrimSpace(in.Duration))
	return domain.RoutineTask{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Time:        strings.TrimSpace(in.Time),
		Duration:    minutes,
		Category:    strings.TrimSpace(in.Category),
		Completed:   in.Completed,
	}, nil
}
