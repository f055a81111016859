package service

import (
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

const xpPerLevel = 100

func LevelFor(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	return totalXP/xpPerLevel + 1
}

// CompletedInPeriod reports whether last (YYYY-MM-DD) lies in the period of today.
// Daily period is the day, weekly one is the Monday-first week.
func CompletedInPeriod(freq entity.Frequency, last *string, today time.Time) bool {
	if last == nil || *last == "" {
		return false
	}
	switch freq {
	case entity.FrequencyDaily:
		return *last == week.FormatKey(today)
	case entity.FrequencyWeekly:
		return *last >= week.FormatKey(week.Start(today))
	}
	return false
}

// consecutivePeriod reports whether last lies in the period right before today's
func consecutivePeriod(freq entity.Frequency, last string, today time.Time) bool {
	lastDay, err := week.ParseKey(last, today.Location())
	if err != nil {
		return false
	}
	switch freq {
	case entity.FrequencyDaily:
		return week.FormatKey(lastDay.AddDate(0, 0, 1)) == week.FormatKey(today)
	case entity.FrequencyWeekly:
		return week.Start(lastDay).Equal(week.Shift(week.Start(today), -1))
	}
	return false
}

// ApplyCompletion advances uh and user for a completion made today and
// returns the ledger entry to record. uh must not be completed for the period yet.
func ApplyCompletion(uh *entity.UserHabit, user *entity.User, today time.Time) (*entity.HabitCompletion, error) {
	if CompletedInPeriod(uh.Frequency, uh.LastCompletedDate, today) {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	key := week.FormatKey(today)
	xp := uh.Difficulty.XP()

	if uh.LastCompletedDate != nil && consecutivePeriod(uh.Frequency, *uh.LastCompletedDate, today) {
		uh.CurrentStreak++
	} else {
		uh.CurrentStreak = 1
	}
	uh.LongestStreak = max(uh.LongestStreak, uh.CurrentStreak)
	uh.LastCompletedDate = &key
	uh.TotalCompletions++
	uh.TotalXPEarned += xp

	advanceUser(user, xp, today)

	return &entity.HabitCompletion{
		UserID:         user.ID,
		UserHabitID:    uh.ID,
		HabitID:        uh.HabitID,
		HabitName:      uh.HabitName,
		Difficulty:     uh.Difficulty,
		Frequency:      uh.Frequency,
		CompletionDate: key,
		XPEarned:       xp,
	}, nil
}

// advanceUser adds xp and moves the daily activity streak
func advanceUser(user *entity.User, xp int, today time.Time) {
	user.TotalXP += xp
	user.Level = LevelFor(user.TotalXP)

	key := week.FormatKey(today)
	switch {
	case user.LastActiveDate != nil && *user.LastActiveDate == key:
		// already active today
		user.CurrentStreak = max(user.CurrentStreak, 1)
	case user.LastActiveDate != nil && consecutivePeriod(entity.FrequencyDaily, *user.LastActiveDate, today):
		user.CurrentStreak++
	default:
		user.CurrentStreak = 1
	}
	user.LongestStreak = max(user.LongestStreak, user.CurrentStreak)
	user.LastActiveDate = &key
}
