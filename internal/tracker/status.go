package tracker

import (
	"time"

	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

// IsCompletedForCurrentPeriod derives completion status from lastCompletedDate.
// A daily habit is done when it was completed today, a weekly one when it was
// completed on or after Monday of the current week. Keys compare lexically.
func IsCompletedForCurrentPeriod(uh entity.UserHabit, now time.Time) bool {
	if uh.LastCompletedDate == nil || *uh.LastCompletedDate == "" {
		return false
	}
	last := *uh.LastCompletedDate
	switch uh.Frequency {
	case entity.FrequencyDaily:
		return last == week.FormatKey(now)
	case entity.FrequencyWeekly:
		return last >= week.FormatKey(week.Start(now))
	}
	return false
}

type Summary struct {
	DailyDone   int
	DailyTotal  int
	WeeklyDone  int
	WeeklyTotal int
}

func Summarize(habits []entity.UserHabit, now time.Time) Summary {
	var s Summary
	for _, h := range habits {
		done := IsCompletedForCurrentPeriod(h, now)
		switch h.Frequency {
		case entity.FrequencyDaily:
			s.DailyTotal++
			if done {
				s.DailyDone++
			}
		case entity.FrequencyWeekly:
			s.WeeklyTotal++
			if done {
				s.WeeklyDone++
			}
		}
	}
	return s
}

// DailyPercent is 0..100, zero when there is no daily habit
func (s Summary) DailyPercent() float64 {
	return percent(s.DailyDone, s.DailyTotal)
}

func (s Summary) WeeklyPercent() float64 {
	return percent(s.WeeklyDone, s.WeeklyTotal)
}

func percent(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

func ByFrequency(habits []entity.UserHabit, freq entity.Frequency) []entity.UserHabit {
	out := make([]entity.UserHabit, 0, len(habits))
	for _, h := range habits {
		if h.Frequency == freq {
			out = append(out, h)
		}
	}
	return out
}
