package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/wellspring/internal/domain"
	"github.com/alexanderramin/wellspring/internal/service"
)

// FormatRoutine renders one day's tasks in list order with their 1-based
// positions, which `routine done` accepts as task references.
func FormatRoutine(rt *domain.DailyRoutine, now time.Time) string {
	var b strings.Builder
	b.WriteString("\n" + Header(rt.Name) + "\n")
	b.WriteString(DayLabel(rt.Date, now) + "  " + RenderProgress(rt.CompletionRate(), 12) + "\n\n")

	if len(rt.Tasks) == 0 {
		b.WriteString("  " + Dim("No tasks logged.") + "\n\n")
		return b.String()
	}
	rows := make([][]string, len(rt.Tasks))
	for i, t := range rt.Tasks {
		name := t.Name
		if t.Completed {
			name = StyleDim.Render(name)
		}
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			CheckMark(t.Completed),
			t.Time,
			name,
			t.Category,
			FormatMinutes(t.Duration),
			TruncID(t.ID),
		}
	}
	b.WriteString(RenderTable([]string{"#", "", "Time", "Task", "Category", "Length", "ID"}, rows, 0, 5))
	if rt.Notes != "" {
		b.WriteString("\n  " + Dim(rt.Notes) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// FormatRoutineList renders one row per day with its completion.
func FormatRoutineList(routines []domain.DailyRoutine, now time.Time) string {
	var b strings.Builder
	b.WriteString("\n" + Header("Routines") + "\n\n")
	if len(routines) == 0 {
		b.WriteString("  " + Dim("No routines in range. Try `wellspring routine log` or `wellspring import`.") + "\n\n")
		return b.String()
	}
	rows := make([][]string, len(routines))
	for i, rt := range routines {
		rows[i] = []string{
			rt.DateKey(),
			rt.Date.Format("Mon"),
			RelativeDateFrom(rt.Date, now),
			fmt.Sprintf("%d/%d", rt.CompletedCount(), len(rt.Tasks)),
			RenderProgress(rt.CompletionRate(), 10),
		}
	}
	b.WriteString(RenderTable([]string{"Date", "Day", "When", "Done", "Completion"}, rows, 3))
	b.WriteString("\n")
	return b.String()
}

// FormatTaskUpdate confirms a completion change.
func FormatTaskUpdate(date time.Time, t *domain.RoutineTask) string {
	state := StyleYellow.Render("open")
	if t.Completed {
		state = StyleGreen.Render("done")
	}
	return fmt.Sprintf("%s %s on %s is now %s\n", CheckMark(t.Completed), Bold(t.Name), date.Format(domain.DateLayout), state)
}

func FormatTaskLogged(rt *domain.DailyRoutine, t domain.RoutineTask) string {
	return fmt.Sprintf("%s Logged %s at %s on %s (%d tasks)\n",
		StyleGreen.Render("+"), Bold(t.Name), t.Time, rt.DateKey(), len(rt.Tasks))
}

func FormatImportResult(path string, res *service.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Imported %s\n", StyleGreen.Render("✔"), Bold(path))
	kv(&b, "Routines", fmt.Sprintf("%d", res.Routines))
	if res.ReplacedRoutines > 0 {
		kv(&b, "Replaced", StyleYellow.Render(fmt.Sprintf("%d", res.ReplacedRoutines))+Dim(" (same date, new id)"))
	}
	kv(&b, "Workouts", fmt.Sprintf("%d", res.Workouts))
	kv(&b, "Diet plans", fmt.Sprintf("%d", res.Diets))
	return b.String()
}

func FormatExportResult(res *service.ExportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Exported to %s\n", StyleGreen.Render("✔"), Bold(res.Path))
	kv(&b, "Routines", fmt.Sprintf("%d", res.Routines))
	kv(&b, "Workouts", fmt.Sprintf("%d", res.Workouts))
	kv(&b, "Diet plans", fmt.Sprintf("%d", res.Diets))
	return b.String()
}
