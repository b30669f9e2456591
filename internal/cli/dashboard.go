package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/repository"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDashboardCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse today's routine and every insight in a tabbed view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !r.interactive() {
				return errors.New("dashboard needs an interactive terminal; use `wellspring report` instead")
			}
			now, err := r.now()
			if err != nil {
				return err
			}
			m := newDashboardModel(cmd.Context(), r.app, now)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeys struct {
	Next    key.Binding
	Prev    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var defaultDashboardKeys = dashboardKeys{
	Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

func (k dashboardKeys) help() string {
	parts := make([]string, 0, 4)
	for _, b := range []key.Binding{k.Next, k.Prev, k.Refresh, k.Quit} {
		h := b.Help()
		parts = append(parts, formatter.StyleFg.Render(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}

// ── messages ─────────────────────────────────────────────────────────────────

type dashboardLoadedMsg struct {
	report *service.Report
	today  *domain.DailyRoutine
	err    error
}

// ── model ────────────────────────────────────────────────────────────────────

var dashboardTabs = []string{"Today", "Profile", "Recommendations", "Coaching"}

const dashboardChrome = 4 // tab bar, blank line, blank line, help

type dashboardModel struct {
	ctx  context.Context
	app  *App
	now  time.Time
	keys dashboardKeys

	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int

	loading bool
	err     error
	report  *service.Report
	today   *domain.DailyRoutine
	tab     int
}

func newDashboardModel(ctx context.Context, app *App, now time.Time) *dashboardModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	return &dashboardModel{
		ctx:      ctx,
		app:      app,
		now:      now,
		keys:     defaultDashboardKeys,
		spinner:  sp,
		viewport: viewport.New(80, 20),
		loading:  true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *dashboardModel) load() tea.Cmd {
	ctx, app, now := m.ctx, m.app, m.now
	return func() tea.Msg {
		rep, err := app.Insights.Report(ctx, now)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		today, err := app.Routines.Get(ctx, now)
		if errors.Is(err, repository.ErrNotFound) {
			today, err = nil, nil
		}
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{report: rep, today: today}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-dashboardChrome)
		m.refreshContent()
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.report, m.today = msg.report, msg.today
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(dashboardTabs)
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(dashboardTabs) - 1) % len(dashboardTabs)
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.load())
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dashboardModel) refreshContent() {
	m.viewport.SetContent(m.tabContent())
	m.viewport.GotoTop()
}

// tabContent renders the active tab with the shared formatters.
func (m *dashboardModel) tabContent() string {
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	r := m.report
	if r == nil {
		return ""
	}

	var b strings.Builder
	switch dashboardTabs[m.tab] {
	case "Today":
		if m.today == nil {
			b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("No routine for %s yet. Log one with `wellspring routine log`.", m.now.Format(domain.DateLayout))) + "\n")
		} else {
			b.WriteString(formatter.FormatRoutine(m.today, m.now))
		}
		b.WriteString(formatter.FormatReadiness(r.Readiness))
	case "Profile":
		b.WriteString(formatter.FormatProfile(r.Profile))
		b.WriteString(formatter.FormatPatterns(r.Patterns))
	case "Recommendations":
		b.WriteString(formatter.FormatRecommendations("Workouts", r.Workouts))
		b.WriteString(formatter.FormatRecommendations("Meals", r.Meals))
		b.WriteString(formatter.FormatMealTiming(r.MealTiming))
		b.WriteString(formatter.FormatRecommendations("Routine Tips", r.RoutineTips))
		b.WriteString(formatter.FormatRecommendations("Scheduling", r.Scheduling))
	case "Coaching":
		b.WriteString(formatter.FormatCoaching(r.Coaching))
		b.WriteString(formatter.FormatInterventions(r.Interventions))
		b.WriteString(formatter.FormatSummary(r.Summary))
	}
	return b.String()
}

var (
	activeTabStyle   = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
)

func (m *dashboardModel) tabBar() string {
	tabs := make([]string, len(dashboardTabs))
	for i, t := range dashboardTabs {
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(t)
		} else {
			tabs[i] = inactiveTabStyle.Render(t)
		}
	}
	title := formatter.StyleGreen.Render("wellspring") + formatter.Dim(" "+m.now.Format("Mon Jan 2 15:04"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabBar() + "\n\n")
	if m.loading {
		b.WriteString("  " + m.spinner.View() + " " + formatter.Dim("Loading insights...") + "\n")
	} else {
		b.WriteString(m.viewport.View() + "\n")
	}
	b.WriteString("\n" + m.keys.help())
	return b.String()
}
