package domain

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for routine keys.
const DateLayout = "2006-01-02"

// RoutineTask is a single timed entry inside a DailyRoutine.
type RoutineTask struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Time        string `json:"time"`                  // "HH:MM"; kept verbatim, may be malformed
	Duration    int    `json:"duration"`              // minutes
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
}

// Hour parses the hour component of Time. ok is false when the time is
// unparsable or outside 0-23.
func (t RoutineTask) Hour() (hour int, ok bool) {
	head, _, _ := strings.Cut(t.Time, ":")
	h, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// DailyRoutine is the set of tasks planned for one calendar date.
// At most one routine exists per date.
type DailyRoutine struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Date      time.Time     `json:"date"`
	Tasks     []RoutineTask `json:"tasks"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	UpdatedAt time.Time     `json:"updated_at,omitempty"`
}

// Weekday returns the English weekday name of the routine's date.
func (r DailyRoutine) Weekday() string {
	return r.Date.Weekday().String()
}

// DateKey returns the routine date formatted as YYYY-MM-DD.
func (r DailyRoutine) DateKey() string {
	return r.Date.Format(DateLayout)
}

// CompletionRate is completed tasks over total tasks, 0 for an empty routine.
func (r DailyRoutine) CompletionRate() float64 {
	if len(r.Tasks) == 0 {
		return 0
	}
	return float64(r.CompletedCount()) / float64(len(r.Tasks))
}

func (r DailyRoutine) CompletedCount() int {
	n := 0
	for _, t := range r.Tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// CivilDate truncates t to midnight UTC of its calendar date in t's location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(CivilDate(b).Sub(CivilDate(a)).Hours() / 24)
}
