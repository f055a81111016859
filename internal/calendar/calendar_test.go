package calendar_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/limbo/habitquest/internal/calendar"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	// Wednesday of the same week
	now = time.Date(2024, time.January, 3, 12, 0, 0, 0, time.UTC)
)

func clock() time.Time { return now }

func completion(id, date string, xp int) entity.HabitCompletion {
	return entity.HabitCompletion{ID: id, HabitName: "habit " + id, CompletionDate: date, XPEarned: xp}
}

func TestForDayAndTotals(t *testing.T) {
	cs := []entity.HabitCompletion{
		completion("1", "2024-01-01", 25),
		completion("2", "2024-01-01", 50),
		completion("3", "2024-01-03", 100),
		completion("4", "2024-01-07", 25),
	}
	assert.Len(t, calendar.ForDay(cs, monday), 2)
	assert.Empty(t, calendar.ForDay(cs, monday.AddDate(0, 0, 1)))
	// time of day is irrelevant
	assert.Len(t, calendar.ForDay(cs, monday.Add(23*time.Hour)), 2)
	assert.Equal(t, 200, calendar.TotalXP(cs))
	assert.Equal(t, 0, calendar.TotalXP(nil))

	w := calendar.NewWeek(now, cs)
	assert.Equal(t, monday, w.Start)
	sum := 0
	for _, d := range w.Days() {
		sum += d.XP
	}
	assert.Equal(t, w.TotalXP(), sum)
	days := w.Days()
	assert.Equal(t, "MON", days[0].Label)
	assert.Equal(t, 75, days[0].XP)
	assert.Equal(t, "2024-01-07", days[6].Key)
	assert.Equal(t, "Jan 1 - Jan 7", w.Range())
	assert.Equal(t, 4, w.Count())
}

func TestOutOfRangeEntriesLandInNoBucket(t *testing.T) {
	cs := []entity.HabitCompletion{
		completion("in", "2024-01-05", 25),
		completion("before", "2023-12-31", 50),
		completion("after", "2024-01-08", 100),
	}
	w := calendar.NewWeek(monday, cs)
	bucketed := 0
	for _, d := range w.Days() {
		for _, c := range d.Completions {
			assert.True(t, week.Contains(monday, c.CompletionDate))
			bucketed++
		}
	}
	assert.Equal(t, 1, bucketed)
}

type apiMock struct {
	mu       sync.Mutex
	data     map[string][]entity.HabitCompletion
	err      error
	requests []string
}

func (m *apiMock) WeekCompletions(ctx context.Context, weekStart time.Time) ([]entity.HabitCompletion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := week.FormatKey(weekStart)
	m.requests = append(m.requests, key)
	if m.err != nil {
		return nil, m.err
	}
	return m.data[key], nil
}

func TestViewNavigation(t *testing.T) {
	api := &apiMock{data: map[string][]entity.HabitCompletion{
		"2024-01-01": {completion("a", "2024-01-02", 25)},
		"2023-12-25": {completion("b", "2023-12-25", 50), completion("c", "2023-12-31", 100)},
	}}
	view := calendar.NewView(api, nil, clock)
	ctx := context.Background()

	require.NoError(t, view.Load(ctx))
	assert.True(t, view.IsCurrentWeek())
	assert.False(t, view.CanGoNext())
	assert.Equal(t, 25, view.Week().TotalXP())

	moved, err := view.Next(ctx)
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Equal(t, monday, view.WeekStart())
	assert.Equal(t, []string{"2024-01-01"}, api.requests)

	require.NoError(t, view.Previous(ctx))
	assert.False(t, view.IsCurrentWeek())
	assert.True(t, view.CanGoNext())
	w := view.Week()
	assert.Equal(t, 150, w.TotalXP())
	// nothing from the week before leaks in
	for _, c := range w.Completions {
		assert.NotEqual(t, "a", c.ID)
	}

	moved, err = view.Next(ctx)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, 25, view.Week().TotalXP())
	assert.Equal(t, []string{"2024-01-01", "2023-12-25", "2024-01-01"}, api.requests)
}

func TestViewGoTo(t *testing.T) {
	api := &apiMock{data: map[string][]entity.HabitCompletion{}}
	view := calendar.NewView(api, nil, clock)
	ctx := context.Background()

	require.NoError(t, view.GoTo(ctx, time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2023-11-13", week.FormatKey(view.WeekStart()))

	require.NoError(t, view.GoTo(ctx, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, monday, view.WeekStart())
}

func TestViewFailureClearsWeek(t *testing.T) {
	api := &apiMock{data: map[string][]entity.HabitCompletion{
		"2024-01-01": {completion("a", "2024-01-02", 25)},
	}}
	view := calendar.NewView(api, nil, clock)
	ctx := context.Background()
	require.NoError(t, view.Load(ctx))
	require.Equal(t, 1, view.Week().Count())

	api.err = errors.New("unavailable")
	assert.Error(t, view.Load(ctx))
	assert.Equal(t, 0, view.Week().Count())
	assert.False(t, view.Loading())
}

type gatedAPI struct {
	apiMock
	gates   map[string]chan struct{}
	entered chan string
}

func (g *gatedAPI) WeekCompletions(ctx context.Context, weekStart time.Time) ([]entity.HabitCompletion, error) {
	key := week.FormatKey(weekStart)
	if gate, ok := g.gates[key]; ok {
		g.entered <- key
		<-gate
	}
	return g.apiMock.WeekCompletions(ctx, weekStart)
}

func TestStaleResponseIsDropped(t *testing.T) {
	api := &gatedAPI{
		apiMock: apiMock{data: map[string][]entity.HabitCompletion{
			"2024-01-01": {completion("current", "2024-01-02", 25)},
			"2023-12-25": {completion("old", "2023-12-26", 50)},
		}},
		gates:   map[string]chan struct{}{"2024-01-01": make(chan struct{})},
		entered: make(chan string, 1),
	}
	view := calendar.NewView(api, nil, clock)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- view.Load(ctx)
	}()
	<-api.entered
	require.NoError(t, view.Previous(ctx))
	close(api.gates["2024-01-01"])
	require.NoError(t, <-done)

	w := view.Week()
	require.Equal(t, 1, w.Count())
	assert.Equal(t, "old", w.Completions[0].ID)
}

func TestClosedViewIgnoresLoads(t *testing.T) {
	view := calendar.NewView(&apiMock{}, nil, clock)
	view.Close()
	assert.ErrorIs(t, view.Load(context.Background()), errorvalues.ErrViewClosed)
}
