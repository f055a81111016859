package calendar

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
	"github.com/limbo/habitquest/pkg/week"
)

type API interface {
	// WeekCompletions lists completions of the week starting at weekStart
	WeekCompletions(ctx context.Context, weekStart time.Time) ([]entity.HabitCompletion, error)
}

// View is the week calendar state. Every navigation fetches the week from
// scratch and replaces the held data.
type View struct {
	api    API
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	start   time.Time
	current Week
	seq     uint64
	loading bool
	closed  bool
}

func NewView(api API, logger *slog.Logger, now func() time.Time) *View {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	start := week.Start(now())
	return &View{
		api:     api,
		logger:  logger.With(slog.String("flow", "calendar")),
		now:     now,
		start:   start,
		current: NewWeek(start, nil),
	}
}

// Load fetches the week currently selected
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return errorvalues.ErrViewClosed
	}
	v.seq++
	seq := v.seq
	start := v.start
	v.loading = true
	// previous week's data must not be shown while the new one loads
	v.current = NewWeek(start, nil)
	v.mu.Unlock()

	v.logger.Debug("fetching completions", slog.String("week", week.FormatKey(start)))
	completions, err := v.api.WeekCompletions(ctx, start)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return errorvalues.ErrViewClosed
	}
	if seq != v.seq {
		// navigated elsewhere meanwhile
		return nil
	}
	v.loading = false
	if err != nil {
		v.logger.Error("fetching completions error", slog.String("week", week.FormatKey(start)), slog.String("error", err.Error()))
		v.current = NewWeek(start, nil)
		return err
	}
	v.current = NewWeek(start, completions)
	return nil
}

// Previous moves one week back. Going back is unrestricted.
func (v *View) Previous(ctx context.Context) error {
	v.mu.Lock()
	v.start = week.Shift(v.start, -1)
	v.mu.Unlock()
	return v.Load(ctx)
}

// Next moves one week forward. It does nothing once the current week is
// reached, moved tells whether navigation happened.
func (v *View) Next(ctx context.Context) (moved bool, err error) {
	v.mu.Lock()
	if !v.canGoNextLocked() {
		v.mu.Unlock()
		return false, nil
	}
	v.start = week.Shift(v.start, 1)
	v.mu.Unlock()
	return true, v.Load(ctx)
}

// GoTo selects the week containing date. Future weeks clamp to the current one.
func (v *View) GoTo(ctx context.Context, date time.Time) error {
	target := week.Start(date)
	current := week.Start(v.now())
	if target.After(current) {
		target = current
	}
	v.mu.Lock()
	v.start = target
	v.mu.Unlock()
	return v.Load(ctx)
}

func (v *View) canGoNextLocked() bool {
	return week.Start(v.now().In(v.start.Location())).After(v.start)
}

func (v *View) CanGoNext() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.canGoNextLocked()
}

func (v *View) IsCurrentWeek() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return week.IsCurrentWeekAt(v.start, v.now())
}

func (v *View) WeekStart() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.start
}

// Week returns the latest data for the selected week
func (v *View) Week() Week {
	v.mu.Lock()
	defer v.mu.Unlock()
	return NewWeek(v.current.Start, v.current.Completions)
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// Close tears the view down. Responses arriving afterwards are discarded.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}
