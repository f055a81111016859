package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/feedback"
	"github.com/limbo/habitquest/pkg/entity"
)

const msgAcceptFailed = "Failed to add habit"

type API interface {
	RandomHabit(ctx context.Context, freq entity.Frequency) (*entity.Habit, error)
	AcceptHabit(ctx context.Context, habitID string) (*entity.UserHabit, error)
}

// Refresher re-fetches the tracked habit list after an accept
type Refresher interface {
	Refresh(ctx context.Context) error
}

// SlotState is a snapshot of one suggestion slot
type SlotState struct {
	Frequency entity.Frequency
	Habit     *entity.Habit
	Loading   bool
}

type slot struct {
	mu        sync.Mutex
	freq      entity.Frequency
	habit     *entity.Habit
	loading   bool
	accepting bool
	// seq of the latest issued fetch, older responses are dropped
	seq uint64
}

// Flow drives the daily and weekly suggestion slots. Slots share nothing,
// each has its own lock, value and loading flag.
type Flow struct {
	api      API
	tracked  Refresher
	notifier feedback.Notifier
	logger   *slog.Logger

	daily  slot
	weekly slot

	closeMu sync.RWMutex
	closed  bool
}

func New(api API, tracked Refresher, notifier feedback.Notifier, logger *slog.Logger) *Flow {
	if notifier == nil {
		notifier = feedback.Discard{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Flow{
		api:      api,
		tracked:  tracked,
		notifier: notifier,
		logger:   logger.With(slog.String("flow", "suggestion")),
		daily:    slot{freq: entity.FrequencyDaily},
		weekly:   slot{freq: entity.FrequencyWeekly},
	}
}

func (f *Flow) slot(freq entity.Frequency) (*slot, error) {
	switch freq {
	case entity.FrequencyDaily:
		return &f.daily, nil
	case entity.FrequencyWeekly:
		return &f.weekly, nil
	}
	return nil, fmt.Errorf("%w: %q", errorvalues.ErrUnknownFreq, freq)
}

func (f *Flow) isClosed() bool {
	f.closeMu.RLock()
	defer f.closeMu.RUnlock()
	return f.closed
}

// Fetch requests a new random habit for the slot. A failed request keeps
// the previous suggestion and is only logged, so the returned error is
// non-nil only when the request was not issued (slot busy, flow closed,
// unknown frequency).
func (f *Flow) Fetch(ctx context.Context, freq entity.Frequency) error {
	s, err := f.slot(freq)
	if err != nil {
		return err
	}
	if f.isClosed() {
		return errorvalues.ErrViewClosed
	}
	return f.fetch(ctx, s, false)
}

// fetch issues a request for the slot. A forced request does not wait for
// the one in flight. Only the latest issued request may update the slot.
func (f *Flow) fetch(ctx context.Context, s *slot, force bool) error {
	s.mu.Lock()
	if s.loading && !force {
		s.mu.Unlock()
		return errorvalues.ErrRequestInFlight
	}
	s.seq++
	seq := s.seq
	s.loading = true
	s.mu.Unlock()

	habit, err := f.api.RandomHabit(ctx, s.freq)

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return nil
	}
	s.loading = false
	if f.isClosed() {
		return nil
	}
	if err != nil {
		f.logger.Error("loading suggestion error", slog.String("frequency", string(s.freq)), slog.String("error", err.Error()))
		return nil
	}
	s.habit = habit
	return nil
}

// Reroll replaces the slot's suggestion with a new one
func (f *Flow) Reroll(ctx context.Context, freq entity.Frequency) error {
	return f.Fetch(ctx, freq)
}

// Accept turns a suggested habit into a tracked one. On success the tracked list
// is refreshed and the slot of the habit's frequency gets a new suggestion.
func (f *Flow) Accept(ctx context.Context, habit *entity.Habit) error {
	if habit == nil {
		return nil
	}
	if f.isClosed() {
		return errorvalues.ErrViewClosed
	}
	s, err := f.slot(habit.Frequency)
	if err != nil {
		return err
	}
	s.mu.Lock()
	if s.accepting {
		s.mu.Unlock()
		return errorvalues.ErrRequestInFlight
	}
	s.accepting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.accepting = false
		s.mu.Unlock()
	}()

	_, err = f.api.AcceptHabit(ctx, habit.ID)
	if f.isClosed() {
		return errorvalues.ErrViewClosed
	}
	if err != nil {
		if errors.Is(err, errorvalues.ErrConflict) {
			f.logger.Error("accepting habit error: already tracked", slog.String("habit_id", habit.ID))
			f.notifier.Notify(feedback.Failure(fmt.Sprintf("You're already tracking %q", habit.Name)))
			return err
		}
		f.logger.Error("accepting habit error", slog.String("habit_id", habit.ID), slog.String("error", err.Error()))
		f.notifier.Notify(feedback.Failure(msgAcceptFailed))
		return err
	}
	f.notifier.Notify(feedback.Success(fmt.Sprintf("%q added to your list!", habit.Name)))

	s.mu.Lock()
	if s.habit != nil && s.habit.ID == habit.ID {
		s.habit = nil
	}
	s.mu.Unlock()

	var wg sync.WaitGroup
	if f.tracked != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.tracked.Refresh(ctx)
		}()
	}
	// a fetch already in flight was issued before the accept and may still
	// return the accepted habit, so it is superseded
	_ = f.fetch(ctx, s, true)
	wg.Wait()
	return nil
}

// AcceptCurrent accepts whatever the slot currently suggests
func (f *Flow) AcceptCurrent(ctx context.Context, freq entity.Frequency) error {
	state, err := f.State(freq)
	if err != nil {
		return err
	}
	return f.Accept(ctx, state.Habit)
}

func (f *Flow) State(freq entity.Frequency) (SlotState, error) {
	s, err := f.slot(freq)
	if err != nil {
		return SlotState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	state := SlotState{Frequency: s.freq, Loading: s.loading}
	if s.habit != nil {
		h := *s.habit
		state.Habit = &h
	}
	return state, nil
}

// Close tears the flow down. Responses arriving afterwards are discarded.
func (f *Flow) Close() {
	f.closeMu.Lock()
	defer f.closeMu.Unlock()
	f.closed = true
}
