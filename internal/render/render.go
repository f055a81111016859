// Package render prints client state for a terminal
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/limbo/habitquest/internal/calendar"
	"github.com/limbo/habitquest/internal/suggestion"
	"github.com/limbo/habitquest/internal/tracker"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

const barWidth = 20

// LevelProgress returns the xp gathered toward the next level and the size of the level
func LevelProgress(u entity.User) (current, span int) {
	level := u.Level
	if level < 1 {
		level = 1
	}
	span = level * 100
	return u.TotalXP % span, span
}

func bar(done, total int) string {
	if total <= 0 {
		return "[" + strings.Repeat(".", barWidth) + "]"
	}
	filled := done * barWidth / total
	if filled > barWidth {
		filled = barWidth
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func UserStats(w io.Writer, u entity.User) {
	current, span := LevelProgress(u)
	fmt.Fprintf(w, "%s  Level %d\n", u.Username, u.Level)
	fmt.Fprintf(w, "XP      %s %d / %d (total %d)\n", bar(current, span), current, span, u.TotalXP)
	fmt.Fprintf(w, "Streak  %d days (longest %d)\n", u.CurrentStreak, u.LongestStreak)
}

func habitLine(h entity.Habit) string {
	return fmt.Sprintf("%s [%s, +%d XP]", h.Name, h.Difficulty, h.XP)
}

// Suggestion prints one slot card
func Suggestion(w io.Writer, s suggestion.SlotState) {
	title := "Daily"
	if s.Frequency == entity.FrequencyWeekly {
		title = "Weekly"
	}
	switch {
	case s.Loading:
		fmt.Fprintf(w, "%s suggestion: loading...\n", title)
	case s.Habit == nil:
		fmt.Fprintf(w, "%s suggestion: none\n", title)
	default:
		fmt.Fprintf(w, "%s suggestion: %s\n", title, habitLine(*s.Habit))
		if s.Habit.Description != "" {
			fmt.Fprintf(w, "  %s\n", s.Habit.Description)
		}
		fmt.Fprintf(w, "  id: %s\n", s.Habit.ID)
	}
}

func Catalog(w io.Writer, habits []entity.Habit) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDIFFICULTY\tFREQUENCY\tXP")
	for _, h := range habits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", h.ID, h.Name, h.Category, h.Difficulty, h.Frequency, h.XP)
	}
	tw.Flush()
}

// Tracked prints the progress bars and both frequency groups
func Tracked(w io.Writer, habits []entity.UserHabit, now time.Time) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits tracked yet. Accept a suggestion to get started.")
		return
	}
	s := tracker.Summarize(habits, now)
	fmt.Fprintf(w, "Today   %s %d/%d\n", bar(s.DailyDone, s.DailyTotal), s.DailyDone, s.DailyTotal)
	fmt.Fprintf(w, "Week    %s %d/%d\n", bar(s.WeeklyDone, s.WeeklyTotal), s.WeeklyDone, s.WeeklyTotal)

	for _, group := range []struct {
		title string
		freq  entity.Frequency
	}{
		{"Daily", entity.FrequencyDaily},
		{"Weekly", entity.FrequencyWeekly},
	} {
		list := tracker.ByFrequency(habits, group.freq)
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n", group.title)
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, h := range list {
			mark := "○"
			if tracker.IsCompletedForCurrentPeriod(h, now) {
				mark = "✓"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\tstreak %d (best %d)\t%d XP\t%s\n",
				mark, h.HabitName, h.Difficulty, h.CurrentStreak, h.LongestStreak, h.TotalXPEarned, h.HabitID)
		}
		tw.Flush()
	}
}

// Week prints the seven day calendar. Today is marked with '*'.
func Week(w io.Writer, wk calendar.Week, now time.Time) {
	fmt.Fprintf(w, "Week of %s\n", wk.Range())
	for _, d := range wk.Days() {
		marker := " "
		if week.IsToday(d.Date, now) {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s %-6s %4d XP\n", marker, d.Label, week.FormatDisplay(d.Date), d.XP)
		for _, c := range d.Completions {
			fmt.Fprintf(w, "      - %s (+%d)\n", c.HabitName, c.XPEarned)
		}
	}
	fmt.Fprintf(w, "Total: %d completions, %d XP\n", wk.Count(), wk.TotalXP())
}
