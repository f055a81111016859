package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/feedback"
	"github.com/limbo/habitquest/pkg/entity"
)

const (
	msgListFailed     = "Failed to load your habits"
	msgCompleted      = "Habit completed! XP earned"
	msgCompleteFailed = "Failed to complete this habit"
	msgDeleted        = "Habit deleted"
	msgDeleteFailed   = "Failed to delete habit"
)

type API interface {
	MyHabits(ctx context.Context) ([]entity.UserHabit, error)
	CompleteHabit(ctx context.Context, habitID string) (*entity.UserHabit, error)
	RemoveHabit(ctx context.Context, habitID string) error
}

// Flow holds the tracked habit list. The list is only ever replaced by a
// fresh snapshot, mutations never patch single items.
type Flow struct {
	api      API
	notifier feedback.Notifier
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	habits   []entity.UserHabit
	started  uint64
	applied  uint64
	inFlight int
	pending  map[string]bool
	closed   bool
}

func New(api API, notifier feedback.Notifier, logger *slog.Logger) *Flow {
	if notifier == nil {
		notifier = feedback.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		api:      api,
		notifier: notifier,
		logger:   logger.With(slog.String("flow", "tracker")),
		now:      time.Now,
		pending:  make(map[string]bool),
	}
}

// WithClock replaces the time source used for completion status
func (f *Flow) WithClock(now func() time.Time) *Flow {
	f.now = now
	return f
}

// List fetches the tracked habits and replaces the held list. When several
// fetches overlap only the most recently started one is applied.
func (f *Flow) List(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return errorvalues.ErrViewClosed
	}
	f.started++
	seq := f.started
	f.inFlight++
	f.mu.Unlock()

	habits, err := f.api.MyHabits(ctx)

	f.mu.Lock()
	f.inFlight--
	if f.closed {
		f.mu.Unlock()
		return errorvalues.ErrViewClosed
	}
	if err != nil {
		// a newer failed fetch still supersedes older ones in flight
		if seq > f.applied {
			f.applied = seq
		}
		f.mu.Unlock()
		f.logger.Error("loading habits list error", slog.String("error", err.Error()))
		f.notifier.Notify(feedback.Failure(msgListFailed))
		return err
	}
	if seq > f.applied {
		f.applied = seq
		f.habits = append(make([]entity.UserHabit, 0, len(habits)), habits...)
	}
	f.mu.Unlock()
	return nil
}

// Refresh is List, used by flows that need the tracked list re-fetched
func (f *Flow) Refresh(ctx context.Context) error {
	return f.List(ctx)
}

// Complete marks a tracked habit done for the current period and re-fetches the list.
// A habit already done for the period is refused without calling the backend.
func (f *Flow) Complete(ctx context.Context, habitID string) error {
	if err := f.begin(habitID, true); err != nil {
		return err
	}
	_, err := f.api.CompleteHabit(ctx, habitID)
	if closed := f.end(habitID); closed {
		return errorvalues.ErrViewClosed
	}
	if err != nil {
		f.logger.Error("completing habit error", slog.String("habit_id", habitID), slog.String("error", err.Error()))
		f.notifier.Notify(feedback.Failure(msgCompleteFailed))
		return err
	}
	f.notifier.Notify(feedback.Success(msgCompleted))
	// completion stands even if the refresh fails, List reports that on its own
	_ = f.List(ctx)
	return nil
}

// Remove deletes a habit from the tracked list and re-fetches the list
func (f *Flow) Remove(ctx context.Context, habitID string) error {
	if err := f.begin(habitID, false); err != nil {
		return err
	}
	err := f.api.RemoveHabit(ctx, habitID)
	if closed := f.end(habitID); closed {
		return errorvalues.ErrViewClosed
	}
	if err != nil {
		f.logger.Error("removing habit error", slog.String("habit_id", habitID), slog.String("error", err.Error()))
		f.notifier.Notify(feedback.Failure(msgDeleteFailed))
		return err
	}
	f.notifier.Notify(feedback.Success(msgDeleted))
	_ = f.List(ctx)
	return nil
}

func (f *Flow) begin(habitID string, completing bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return errorvalues.ErrViewClosed
	}
	if completing {
		for _, h := range f.habits {
			if h.HabitID == habitID && IsCompletedForCurrentPeriod(h, f.now()) {
				return errorvalues.ErrPeriodCompleted
			}
		}
	}
	if f.pending[habitID] {
		return errorvalues.ErrRequestInFlight
	}
	f.pending[habitID] = true
	return nil
}

func (f *Flow) end(habitID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pending, habitID)
	return f.closed
}

// Habits returns a copy of the latest snapshot
func (f *Flow) Habits() []entity.UserHabit {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append(make([]entity.UserHabit, 0, len(f.habits)), f.habits...)
}

func (f *Flow) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inFlight > 0
}

// CanComplete reports whether the complete action is enabled for habitID
func (f *Flow) CanComplete(habitID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pending[habitID] {
		return false
	}
	for _, h := range f.habits {
		if h.HabitID == habitID {
			return !IsCompletedForCurrentPeriod(h, f.now())
		}
	}
	return false
}

func (f *Flow) Summary() Summary {
	return Summarize(f.Habits(), f.now())
}

// Close tears the flow down. Responses arriving afterwards are discarded.
func (f *Flow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}
