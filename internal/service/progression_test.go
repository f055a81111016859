package service_test

import (
	"testing"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/service"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// 2024-03-13 is a Wednesday
var wednesday = time.Date(2024, time.March, 13, 18, 30, 0, 0, time.UTC)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, 1, service.LevelFor(0))
	assert.Equal(t, 1, service.LevelFor(99))
	assert.Equal(t, 2, service.LevelFor(100))
	assert.Equal(t, 4, service.LevelFor(375))
	assert.Equal(t, 1, service.LevelFor(-10))
}

func TestCompletedInPeriod(t *testing.T) {
	testCases := []struct {
		Desc     string
		Freq     entity.Frequency
		Last     *string
		Expected bool
	}{
		{Desc: "never completed", Freq: entity.FrequencyDaily, Last: nil},
		{Desc: "empty key", Freq: entity.FrequencyDaily, Last: strPtr("")},
		{Desc: "daily today", Freq: entity.FrequencyDaily, Last: strPtr("2024-03-13"), Expected: true},
		{Desc: "daily yesterday", Freq: entity.FrequencyDaily, Last: strPtr("2024-03-12")},
		{Desc: "weekly on monday", Freq: entity.FrequencyWeekly, Last: strPtr("2024-03-11"), Expected: true},
		{Desc: "weekly previous sunday", Freq: entity.FrequencyWeekly, Last: strPtr("2024-03-10")},
		{Desc: "unknown frequency", Freq: entity.Frequency("MONTHLY"), Last: strPtr("2024-03-13")},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, service.CompletedInPeriod(tc.Freq, tc.Last, wednesday))
		})
	}
}

func TestApplyCompletionHabitStreak(t *testing.T) {
	testCases := []struct {
		Desc           string
		Freq           entity.Frequency
		Today          time.Time
		Last           *string
		Streak         int
		Longest        int
		ExpectedStreak int
		ExpectedLong   int
	}{
		{Desc: "first daily", Freq: entity.FrequencyDaily, Today: wednesday, ExpectedStreak: 1, ExpectedLong: 1},
		{Desc: "daily continued", Freq: entity.FrequencyDaily, Today: wednesday, Last: strPtr("2024-03-12"), Streak: 4, Longest: 4, ExpectedStreak: 5, ExpectedLong: 5},
		{Desc: "daily broken", Freq: entity.FrequencyDaily, Today: wednesday, Last: strPtr("2024-03-10"), Streak: 4, Longest: 7, ExpectedStreak: 1, ExpectedLong: 7},
		{
			Desc:  "daily across new year",
			Freq:  entity.FrequencyDaily,
			Today: time.Date(2025, time.January, 1, 9, 0, 0, 0, time.UTC),
			Last:  strPtr("2024-12-31"), Streak: 2, Longest: 2, ExpectedStreak: 3, ExpectedLong: 3,
		},
		{Desc: "weekly from previous week", Freq: entity.FrequencyWeekly, Today: wednesday, Last: strPtr("2024-03-04"), Streak: 1, Longest: 1, ExpectedStreak: 2, ExpectedLong: 2},
		{Desc: "weekly previous sunday", Freq: entity.FrequencyWeekly, Today: wednesday, Last: strPtr("2024-03-10"), Streak: 3, Longest: 3, ExpectedStreak: 4, ExpectedLong: 4},
		{Desc: "weekly skipped a week", Freq: entity.FrequencyWeekly, Today: wednesday, Last: strPtr("2024-03-01"), Streak: 3, Longest: 3, ExpectedStreak: 1, ExpectedLong: 3},
		{
			Desc:  "weekly across new year",
			Freq:  entity.FrequencyWeekly,
			Today: time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC),
			Last:  strPtr("2024-12-25"), Streak: 1, Longest: 1, ExpectedStreak: 2, ExpectedLong: 2,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			uh := &entity.UserHabit{
				ID:                "uh1",
				HabitID:           habitID.String(),
				HabitName:         "Plan the week",
				Difficulty:        entity.DifficultyHard,
				Frequency:         tc.Freq,
				CurrentStreak:     tc.Streak,
				LongestStreak:     tc.Longest,
				LastCompletedDate: tc.Last,
				TotalCompletions:  tc.Streak,
				TotalXPEarned:     tc.Streak * 100,
			}
			user := &entity.User{ID: userID.String(), Level: 1}
			completion, err := service.ApplyCompletion(uh, user, tc.Today)
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedStreak, uh.CurrentStreak)
			assert.Equal(t, tc.ExpectedLong, uh.LongestStreak)
			assert.Equal(t, tc.Streak+1, uh.TotalCompletions)
			assert.Equal(t, (tc.Streak+1)*100, uh.TotalXPEarned)
			assert.Equal(t, tc.Today.Format("2006-01-02"), *uh.LastCompletedDate)
			assert.Equal(t, entity.HabitCompletion{
				UserID:         userID.String(),
				UserHabitID:    "uh1",
				HabitID:        habitID.String(),
				HabitName:      "Plan the week",
				Difficulty:     entity.DifficultyHard,
				Frequency:      tc.Freq,
				CompletionDate: tc.Today.Format("2006-01-02"),
				XPEarned:       100,
			}, *completion)
		})
	}
}

func TestApplyCompletionAlreadyDone(t *testing.T) {
	uh := &entity.UserHabit{Difficulty: entity.DifficultyEasy, Frequency: entity.FrequencyWeekly, CurrentStreak: 2, LastCompletedDate: strPtr("2024-03-11")}
	user := &entity.User{TotalXP: 40, Level: 1}
	_, err := service.ApplyCompletion(uh, user, wednesday)
	assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
	// nothing touched
	assert.Equal(t, 2, uh.CurrentStreak)
	assert.Equal(t, 40, user.TotalXP)
}

func TestApplyCompletionUserProgress(t *testing.T) {
	testCases := []struct {
		Desc           string
		LastActive     *string
		Streak         int
		Longest        int
		TotalXP        int
		ExpectedStreak int
		ExpectedLong   int
		ExpectedLevel  int
	}{
		{Desc: "first activity", TotalXP: 0, ExpectedStreak: 1, ExpectedLong: 1, ExpectedLevel: 1},
		{Desc: "active yesterday", LastActive: strPtr("2024-03-12"), Streak: 3, Longest: 3, TotalXP: 60, ExpectedStreak: 4, ExpectedLong: 4, ExpectedLevel: 2},
		{Desc: "already active today", LastActive: strPtr("2024-03-13"), Streak: 3, Longest: 5, TotalXP: 210, ExpectedStreak: 3, ExpectedLong: 5, ExpectedLevel: 3},
		{Desc: "gap resets", LastActive: strPtr("2024-03-01"), Streak: 9, Longest: 9, TotalXP: 0, ExpectedStreak: 1, ExpectedLong: 9, ExpectedLevel: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			uh := &entity.UserHabit{Difficulty: entity.DifficultyMedium, Frequency: entity.FrequencyDaily}
			user := &entity.User{TotalXP: tc.TotalXP, Level: service.LevelFor(tc.TotalXP), CurrentStreak: tc.Streak, LongestStreak: tc.Longest, LastActiveDate: tc.LastActive}
			_, err := service.ApplyCompletion(uh, user, wednesday)
			require.NoError(t, err)
			assert.Equal(t, tc.TotalXP+50, user.TotalXP)
			assert.Equal(t, tc.ExpectedLevel, user.Level)
			assert.Equal(t, tc.ExpectedStreak, user.CurrentStreak)
			assert.Equal(t, tc.ExpectedLong, user.LongestStreak)
			assert.Equal(t, "2024-03-13", *user.LastActiveDate)
		})
	}
}
