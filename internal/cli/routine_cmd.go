package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/wellspring/internal/cli/formatter"
	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/spf13/cobra"
)

func newRoutineCmd(r *runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routine",
		Aliases: []string{"r"},
		Short:   "Show and log daily routines",
	}
	cmd.AddCommand(
		newRoutineShowCmd(r),
		newRoutineListCmd(r),
		newRoutineLogCmd(r),
		newRoutineCompleteCmd(r, "done", "Mark a task completed", boolPtr(true)),
		newRoutineCompleteCmd(r, "undo", "Mark a task not completed", boolPtr(false)),
		newRoutineCompleteCmd(r, "toggle", "Flip a task's completion", nil),
		newRoutineDeleteCmd(r),
	)
	return cmd
}

func boolPtr(b bool) *bool { return &b }

func newRoutineShowCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Show the tasks for one day (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			date, err := parseDay(firstArg(args), now)
			if err != nil {
				return err
			}
			rt, err := r.app.Routines.Get(cmd.Context(), date)
			if err != nil {
				return err
			}
			return r.emit(cmd, rt, func() string { return formatter.FormatRoutine(rt, now) })
		},
	}
}

func newRoutineListCmd(r *runner) *cobra.Command {
	var from, to string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines in a date range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			if days < 1 {
				return fmt.Errorf("--days must be at least 1, got %d", days)
			}
			end, err := parseDay(to, now)
			if err != nil {
				return err
			}
			start := end.AddDate(0, 0, -(days - 1))
			if from != "" {
				if start, err = parseDay(from, now); err != nil {
					return err
				}
			}
			routines, err := r.app.Routines.List(cmd.Context(), start, end)
			if err != nil {
				return err
			}
			return r.emit(cmd, routines, func() string { return formatter.FormatRoutineList(routines, now) })
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date (YYYY-MM-DD); overrides --days")
	cmd.Flags().StringVar(&to, "to", "", "last date (default today)")
	cmd.Flags().IntVar(&days, "days", 14, "number of days ending at --to")
	return cmd
}

func newRoutineLogCmd(r *runner) *cobra.Command {
	var (
		day  string
		in   taskInput
		done bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Add a task to a day's routine",
		Long: "Add a task to a day's routine, creating the routine if needed.\n" +
			"Without --name an interactive form is shown when running in a terminal.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			date, err := parseDay(day, now)
			if err != nil {
				return err
			}

			if in.Name == "" {
				if !r.interactive() {
					return errors.New("--name is required when not running in a terminal")
				}
				in = defaultTaskInput(now)
				if err := newLogTaskForm(&in).Run(); err != nil {
					return err
				}
			} else {
				in.Completed = done
			}

			task, err := in.task()
			if err != nil {
				return err
			}
			rt, err := r.app.Routines.LogTask(cmd.Context(), date, task)
			if err != nil {
				return err
			}
			logged := rt.Tasks[len(rt.Tasks)-1]
			return r.emit(cmd, rt, func() string { return formatter.FormatTaskLogged(rt, logged) })
		},
	}

	f := cmd.Flags()
	f.StringVar(&day, "date", "", "routine date (YYYY-MM-DD, today or yesterday)")
	f.StringVar(&in.Name, "name", "", "task name")
	f.StringVar(&in.Time, "time", "", "start time HH:MM (default now)")
	f.StringVar(&in.Duration, "duration", "30", "length in minutes")
	f.StringVar(&in.Category, "category", domain.CategoryOther, "task category")
	f.StringVar(&in.Description, "description", "", "optional description")
	f.BoolVar(&done, "done", false, "log the task as already completed")

	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if in.Time == "" {
			now, err := r.now()
			if err != nil {
				return err
			}
			in.Time = now.Format("15:04")
		}
		return nil
	}
	return cmd
}

// newRoutineCompleteCmd builds done/undo/toggle. A nil target flips the
// current state.
func newRoutineCompleteCmd(r *runner, use, short string, target *bool) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   use + " <task>",
		Short: short,
		Long: short + ".\n<task> is a task ID, an ID prefix, a 1-based position or a task name.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			date, err := parseDay(day, now)
			if err != nil {
				return err
			}
			var task *domain.RoutineTask
			if target == nil {
				task, err = r.app.Routines.ToggleTask(cmd.Context(), date, args[0])
			} else {
				task, err = r.app.Routines.SetTaskCompleted(cmd.Context(), date, args[0], *target)
			}
			if err != nil {
				return err
			}
			return r.emit(cmd, task, func() string { return formatter.FormatTaskUpdate(date, task) })
		},
	}

	cmd.Flags().StringVar(&day, "date", "", "routine date (default today)")
	return cmd
}

func newRoutineDeleteCmd(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <date>",
		Short: "Delete the routine for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := r.now()
			if err != nil {
				return err
			}
			date, err := parseDay(args[0], now)
			if err != nil {
				return err
			}
			if err := r.app.Routines.Delete(cmd.Context(), date); err != nil {
				return err
			}
			res := map[string]string{"deleted": date.Format(domain.DateLayout)}
			return r.emit(cmd, res, func() string {
				return formatter.StyleYellow.Render("✖") + " Deleted routine for " + formatter.Bold(res["deleted"]) + "\n"
			})
		},
	}
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// taskInput holds task fields as entered, before validation.
type taskInput struct {
	Name        string
	Time        string
	Duration    string
	Category    string
	Description string
	Completed   bool
}

func defaultTaskInput(now time.Time) taskInput {
	return taskInput{
		Time:     now.Format("15:04"),
		Duration: "30",
		Category: domain.CategoryOther,
	}
}
