package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/analytics"
	"github.com/alexanderramin/wellspring/internal/api"
	"github.com/alexanderramin/wellspring/internal/config"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the services and settings the CLI commands run against.
type App struct {
	Insights service.InsightService
	Routines service.RoutineService
	Import   service.ImportService
	Export   service.ExportService

	// Clock supplies the current time when --now is not given.
	Clock func() time.Time

	// HTTPAddr and API configure `wellspring serve`.
	HTTPAddr string
	API      api.Options

	// IsInteractive reports whether stdin is a terminal. Forms and the
	// dashboard refuse to start when it returns false.
	IsInteractive func() bool
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	now  string
	json bool
}

func (g *globalFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringVar(&g.now, "now", "", "evaluate as of this instant (RFC3339 or YYYY-MM-DD)")
	fs.BoolVar(&g.json, "json", false, "print JSON instead of styled text")
	return fs
}

// runner carries the App and parsed global flags into each command.
type runner struct {
	app   *App
	flags *globalFlags
}

// NewRootCmd creates the top-level "wellspring" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Clock == nil {
		app.Clock = time.Now
	}
	r := &runner{app: app, flags: &globalFlags{}}

	root := &cobra.Command{
		Use:           "wellspring",
		Short:         "Personal wellness tracker with routine, workout and meal insights",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddFlagSet(r.flags.flagSet())

	root.AddCommand(
		newImportCmd(r),
		newExportCmd(r),
		newRoutineCmd(r),
		newProfileCmd(r),
		newPatternsCmd(r),
		newRecommendCmd(r),
		newInterventionsCmd(r),
		newCoachCmd(r),
		newReadinessCmd(r),
		newMealTimingCmd(r),
		newSummaryCmd(r),
		newReportCmd(r),
		newDashboardCmd(r),
		newServeCmd(r),
	)
	return root
}

// now resolves --now, falling back to the App clock.
func (r *runner) now() (time.Time, error) {
	if r.flags.now == "" {
		return r.app.Clock(), nil
	}
	return config.ParseNow(r.flags.now)
}

func (r *runner) engine(ctx context.Context) (*analytics.Engine, error) {
	now, err := r.now()
	if err != nil {
		return nil, err
	}
	return r.app.Insights.Engine(ctx, now)
}

// emit writes v as indented JSON under --json, otherwise the styled text.
func (r *runner) emit(cmd *cobra.Command, v any, text func() string) error {
	w := cmd.OutOrStdout()
	if r.flags.json {
		return writeJSON(w, v)
	}
	_, err := io.WriteString(w, text())
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *runner) interactive() bool {
	return r.app.IsInteractive != nil && r.app.IsInteractive()
}

// parseDay accepts YYYY-MM-DD, "today" or "yesterday" relative to now.
// An empty string means today.
func parseDay(s string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return domain.CivilDate(now), nil
	case "yesterday":
		return domain.CivilDate(now).AddDate(0, 0, -1), nil
	}
	d, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD, today or yesterday)", s)
	}
	return d, nil
}
