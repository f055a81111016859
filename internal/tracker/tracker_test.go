package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/feedback"
	"github.com/limbo/habitquest/internal/tracker"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday
var now = time.Date(2024, time.January, 10, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return now }

func strPtr(s string) *string { return &s }

type apiMock struct {
	mu          sync.Mutex
	habits      []entity.UserHabit
	listErr     error
	completeErr error
	removeErr   error
	listCalls   int
	completed   []string
	removed     []string
}

func (m *apiMock) MyHabits(ctx context.Context) ([]entity.UserHabit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]entity.UserHabit(nil), m.habits...), nil
}

func (m *apiMock) CompleteHabit(ctx context.Context, habitID string) (*entity.UserHabit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.completeErr != nil {
		return nil, m.completeErr
	}
	m.completed = append(m.completed, habitID)
	for i := range m.habits {
		if m.habits[i].HabitID == habitID {
			m.habits[i].LastCompletedDate = strPtr("2024-01-10")
			m.habits[i].CurrentStreak++
			h := m.habits[i]
			return &h, nil
		}
	}
	return nil, errorvalues.ErrNotFound
}

func (m *apiMock) RemoveHabit(ctx context.Context, habitID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, habitID)
	kept := m.habits[:0]
	for _, h := range m.habits {
		if h.HabitID != habitID {
			kept = append(kept, h)
		}
	}
	m.habits = kept
	return nil
}

func testHabits() []entity.UserHabit {
	return []entity.UserHabit{
		{ID: "uh1", HabitID: "h1", HabitName: "Drink Water", Frequency: entity.FrequencyDaily, Difficulty: entity.DifficultyEasy, Active: true},
		{ID: "uh2", HabitID: "h2", HabitName: "Long Run", Frequency: entity.FrequencyWeekly, Difficulty: entity.DifficultyHard, Active: true},
	}
}

func TestIsCompletedForCurrentPeriod(t *testing.T) {
	testCases := []struct {
		Name      string
		Frequency entity.Frequency
		Last      *string
		Expected  bool
	}{
		{Name: "daily never completed", Frequency: entity.FrequencyDaily, Last: nil, Expected: false},
		{Name: "daily completed today", Frequency: entity.FrequencyDaily, Last: strPtr("2024-01-10"), Expected: true},
		{Name: "daily completed yesterday", Frequency: entity.FrequencyDaily, Last: strPtr("2024-01-09"), Expected: false},
		{Name: "weekly completed last monday", Frequency: entity.FrequencyWeekly, Last: strPtr("2024-01-08"), Expected: true},
		{Name: "weekly completed today", Frequency: entity.FrequencyWeekly, Last: strPtr("2024-01-10"), Expected: true},
		{Name: "weekly completed previous sunday", Frequency: entity.FrequencyWeekly, Last: strPtr("2024-01-07"), Expected: false},
		{Name: "weekly empty date", Frequency: entity.FrequencyWeekly, Last: strPtr(""), Expected: false},
		{Name: "unknown frequency", Frequency: entity.Frequency("MONTHLY"), Last: strPtr("2024-01-10"), Expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			uh := entity.UserHabit{Frequency: tc.Frequency, LastCompletedDate: tc.Last}
			assert.Equal(t, tc.Expected, tracker.IsCompletedForCurrentPeriod(uh, now))
		})
	}
}

func TestSummarize(t *testing.T) {
	habits := testHabits()
	habits = append(habits, entity.UserHabit{HabitID: "h3", Frequency: entity.FrequencyDaily, LastCompletedDate: strPtr("2024-01-10")})
	s := tracker.Summarize(habits, now)
	assert.Equal(t, tracker.Summary{DailyDone: 1, DailyTotal: 2, WeeklyDone: 0, WeeklyTotal: 1}, s)
	assert.InDelta(t, 50.0, s.DailyPercent(), 0.001)
	assert.InDelta(t, 0.0, s.WeeklyPercent(), 0.001)
	assert.InDelta(t, 0.0, tracker.Summary{}.DailyPercent(), 0.001)
	assert.Len(t, tracker.ByFrequency(habits, entity.FrequencyDaily), 2)
}

func TestList(t *testing.T) {
	api := &apiMock{habits: testHabits()}
	rec := &feedback.Recorder{}
	flow := tracker.New(api, rec, nil).WithClock(clock)

	require.NoError(t, flow.List(context.Background()))
	assert.Len(t, flow.Habits(), 2)
	assert.False(t, flow.Loading())

	t.Run("replaces list wholly", func(t *testing.T) {
		api.habits = api.habits[:1]
		require.NoError(t, flow.List(context.Background()))
		assert.Len(t, flow.Habits(), 1)
	})
	t.Run("failure keeps previous list", func(t *testing.T) {
		api.listErr = errors.New("boom")
		err := flow.List(context.Background())
		assert.Error(t, err)
		assert.Len(t, flow.Habits(), 1)
		last, ok := rec.Last()
		require.True(t, ok)
		assert.Equal(t, feedback.SeverityError, last.Severity)
	})
}

func TestComplete(t *testing.T) {
	t.Run("success refreshes list", func(t *testing.T) {
		api := &apiMock{habits: testHabits()}
		rec := &feedback.Recorder{}
		flow := tracker.New(api, rec, nil).WithClock(clock)
		require.NoError(t, flow.List(context.Background()))
		assert.True(t, flow.CanComplete("h1"))

		require.NoError(t, flow.Complete(context.Background(), "h1"))
		assert.Equal(t, []string{"h1"}, api.completed)
		assert.Equal(t, 2, api.listCalls)
		assert.False(t, flow.CanComplete("h1"))
		last, _ := rec.Last()
		assert.Equal(t, feedback.Success("Habit completed! XP earned"), last)
	})
	t.Run("already completed is refused locally", func(t *testing.T) {
		habits := testHabits()
		habits[0].LastCompletedDate = strPtr("2024-01-10")
		api := &apiMock{habits: habits}
		flow := tracker.New(api, nil, nil).WithClock(clock)
		require.NoError(t, flow.List(context.Background()))
		err := flow.Complete(context.Background(), "h1")
		assert.ErrorIs(t, err, errorvalues.ErrPeriodCompleted)
		assert.Empty(t, api.completed)
		assert.False(t, flow.CanComplete("h1"))
	})
	t.Run("weekly completed this week is refused", func(t *testing.T) {
		habits := testHabits()
		habits[1].LastCompletedDate = strPtr("2024-01-08")
		api := &apiMock{habits: habits}
		flow := tracker.New(api, nil, nil).WithClock(clock)
		require.NoError(t, flow.List(context.Background()))
		assert.ErrorIs(t, flow.Complete(context.Background(), "h2"), errorvalues.ErrPeriodCompleted)
	})
	t.Run("backend rejection is generic failure", func(t *testing.T) {
		api := &apiMock{habits: testHabits()}
		rec := &feedback.Recorder{}
		flow := tracker.New(api, rec, nil).WithClock(clock)
		require.NoError(t, flow.List(context.Background()))
		api.completeErr = errorvalues.ErrConflict
		err := flow.Complete(context.Background(), "h1")
		assert.Error(t, err)
		assert.Equal(t, 1, api.listCalls)
		assert.Len(t, flow.Habits(), 2)
		last, _ := rec.Last()
		assert.Equal(t, feedback.Failure("Failed to complete this habit"), last)
	})
}

func TestRemove(t *testing.T) {
	api := &apiMock{habits: testHabits()}
	rec := &feedback.Recorder{}
	flow := tracker.New(api, rec, nil).WithClock(clock)
	require.NoError(t, flow.List(context.Background()))

	require.NoError(t, flow.Remove(context.Background(), "h2"))
	assert.Len(t, flow.Habits(), 1)
	last, _ := rec.Last()
	assert.Equal(t, feedback.Success("Habit deleted"), last)

	api.removeErr = errors.New("boom")
	assert.Error(t, flow.Remove(context.Background(), "h1"))
	assert.Len(t, flow.Habits(), 1)
	last, _ = rec.Last()
	assert.Equal(t, feedback.Failure("Failed to delete habit"), last)
}

type blockingAPI struct {
	apiMock
	release chan struct{}
	entered chan struct{}
}

func (b *blockingAPI) MyHabits(ctx context.Context) ([]entity.UserHabit, error) {
	b.entered <- struct{}{}
	<-b.release
	return b.apiMock.MyHabits(ctx)
}

func TestClosedFlowDropsLateResponse(t *testing.T) {
	api := &blockingAPI{
		apiMock: apiMock{habits: testHabits()},
		release: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	flow := tracker.New(api, nil, nil).WithClock(clock)
	done := make(chan error, 1)
	go func() {
		done <- flow.List(context.Background())
	}()
	<-api.entered
	assert.True(t, flow.Loading())
	flow.Close()
	close(api.release)
	assert.ErrorIs(t, <-done, errorvalues.ErrViewClosed)
	assert.Empty(t, flow.Habits())
	assert.ErrorIs(t, flow.Complete(context.Background(), "h1"), errorvalues.ErrViewClosed)
}

type sequencedAPI struct {
	apiMock
	calls   int
	release chan struct{}
	entered chan struct{}
}

// MyHabits blocks the first call until released and fails the second one
func (s *sequencedAPI) MyHabits(ctx context.Context) ([]entity.UserHabit, error) {
	s.mu.Lock()
	s.calls++
	call := s.calls
	s.mu.Unlock()
	if call == 2 {
		return nil, errors.New("boom")
	}
	s.entered <- struct{}{}
	<-s.release
	return s.apiMock.MyHabits(ctx)
}

func TestListOlderResponseAfterNewerFailure(t *testing.T) {
	api := &sequencedAPI{
		apiMock: apiMock{habits: testHabits()},
		release: make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	flow := tracker.New(api, nil, nil).WithClock(clock)
	done := make(chan error, 1)
	go func() {
		done <- flow.List(context.Background())
	}()
	<-api.entered

	assert.Error(t, flow.List(context.Background()))
	close(api.release)
	require.NoError(t, <-done)
	assert.Empty(t, flow.Habits())
	assert.False(t, flow.Loading())
}
