package calendar

import (
	"time"

	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

// ForDay picks completions whose completionDate equals day's YYYY-MM-DD key.
// Dates come serialized from the backend, so the match is on strings.
func ForDay(completions []entity.HabitCompletion, day time.Time) []entity.HabitCompletion {
	key := week.FormatKey(day)
	out := make([]entity.HabitCompletion, 0)
	for _, c := range completions {
		if c.CompletionDate == key {
			out = append(out, c)
		}
	}
	return out
}

func TotalXP(completions []entity.HabitCompletion) int {
	total := 0
	for _, c := range completions {
		total += c.XPEarned
	}
	return total
}

type Day struct {
	Date        time.Time
	Key         string
	Label       string
	Completions []entity.HabitCompletion
	XP          int
}

// Week is one fetched week of completions
type Week struct {
	Start       time.Time
	Completions []entity.HabitCompletion
}

func NewWeek(start time.Time, completions []entity.HabitCompletion) Week {
	return Week{
		Start:       week.Start(start),
		Completions: append(make([]entity.HabitCompletion, 0, len(completions)), completions...),
	}
}

// Days buckets completions Monday..Sunday
func (w Week) Days() [week.DaysInWeek]Day {
	var days [week.DaysInWeek]Day
	for i, d := range week.Dates(w.Start) {
		cs := ForDay(w.Completions, d)
		days[i] = Day{
			Date:        d,
			Key:         week.FormatKey(d),
			Label:       week.DayLabels[i],
			Completions: cs,
			XP:          TotalXP(cs),
		}
	}
	return days
}

// TotalXP sums the whole fetched set
func (w Week) TotalXP() int {
	return TotalXP(w.Completions)
}

func (w Week) Count() int {
	return len(w.Completions)
}

// Range is the display form, e.g. "Jan 1 - Jan 7"
func (w Week) Range() string {
	return week.FormatDisplay(w.Start) + " - " + week.FormatDisplay(week.End(w.Start))
}
