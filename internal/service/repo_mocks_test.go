package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/repository"
	"github.com/limbo/habitquest/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateConflict
)

var errDB = errors.New("db error")

type usersRepoMock struct {
	state mockState
	last  entity.Identity
}

func (m *usersRepoMock) Upsert(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	m.last = identity
	if m.state == stateDBError {
		return nil, errDB
	}
	return &entity.User{ID: userID.String(), ProviderID: identity.ProviderID, Username: identity.Username, Level: 1}, nil
}

func (m *usersRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrUserNotFound
	case stateDBError:
		return nil, errDB
	}
	return &entity.User{ID: id.String(), Level: 1}, nil
}

type habitsRepoMock struct {
	state   mockState
	saved   []entity.Habit
	exclude uuid.UUID
	pool    []entity.Difficulty
}

func (m *habitsRepoMock) List(ctx context.Context) ([]entity.Habit, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return []entity.Habit{testHabit}, nil
}

func (m *habitsRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrHabitNotFound
	case stateDBError:
		return nil, errDB
	}
	h := testHabit
	h.ID = id.String()
	return &h, nil
}

func (m *habitsRepoMock) Random(ctx context.Context, freq entity.Frequency, difficulties []entity.Difficulty, exclude uuid.UUID) (*entity.Habit, error) {
	m.exclude, m.pool = exclude, difficulties
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrNoHabitCandidate
	case stateDBError:
		return nil, errDB
	}
	h := testHabit
	h.Frequency = freq
	return &h, nil
}

func (m *habitsRepoMock) Save(ctx context.Context, habit *entity.Habit) error {
	if m.state == stateDBError {
		return errDB
	}
	habit.ID = uuid.NewString()
	m.saved = append(m.saved, *habit)
	return nil
}

type userHabitsRepoMock struct {
	state mockState
	// rows handed to CompletionFunc
	habit entity.UserHabit
	user  entity.User
	// what CompletionFunc produced
	recorded *entity.HabitCompletion
	deleted  uuid.UUID
}

func (m *userHabitsRepoMock) ListActive(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return []entity.UserHabit{m.habit}, nil
}

func (m *userHabitsRepoMock) Create(ctx context.Context, uid uuid.UUID, habit *entity.Habit) (*entity.UserHabit, error) {
	switch m.state {
	case stateConflict:
		return nil, errorvalues.ErrHabitAlreadyTracked
	case stateDBError:
		return nil, errDB
	}
	return &entity.UserHabit{
		ID:         uuid.NewString(),
		UserID:     uid.String(),
		HabitID:    habit.ID,
		HabitName:  habit.Name,
		Difficulty: habit.Difficulty,
		Frequency:  habit.Frequency,
		Active:     true,
	}, nil
}

func (m *userHabitsRepoMock) Delete(ctx context.Context, uid, habitID uuid.UUID) error {
	switch m.state {
	case stateNotFound:
		return errorvalues.ErrHabitNotTracked
	case stateDBError:
		return errDB
	}
	m.deleted = habitID
	return nil
}

func (m *userHabitsRepoMock) Complete(ctx context.Context, uid, habitID uuid.UUID, apply repository.CompletionFunc) (*entity.UserHabit, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrHabitNotTracked
	case stateDBError:
		return nil, errDB
	}
	uh, user := m.habit, m.user
	completion, err := apply(&uh, &user)
	if err != nil {
		return nil, err
	}
	m.habit, m.user, m.recorded = uh, user, completion
	return &uh, nil
}

type completionsRepoMock struct {
	state    mockState
	from, to string
}

func (m *completionsRepoMock) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.HabitCompletion, error) {
	m.from, m.to = from, to
	if m.state == stateDBError {
		return nil, errDB
	}
	return []entity.HabitCompletion{{UserID: uid.String(), CompletionDate: from, XPEarned: 25}}, nil
}

var (
	userID    = uuid.New()
	habitID   = uuid.New()
	testHabit = entity.Habit{
		ID:         habitID.String(),
		Name:       "Read 20 pages",
		Category:   "Learning",
		Difficulty: entity.DifficultyMedium,
		Frequency:  entity.FrequencyDaily,
		XP:         50,
	}
)

func strPtr(s string) *string {
	return &s
}
