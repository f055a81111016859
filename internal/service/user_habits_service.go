package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/repository"
	"github.com/limbo/habitquest/pkg/entity"
)

type UserHabitsService struct {
	habitsRepo     repository.HabitsRepositoryI
	userHabitsRepo repository.UserHabitsRepositoryI
	now            func() time.Time
}

func NewUserHabitsService(habitsRepo repository.HabitsRepositoryI, userHabitsRepo repository.UserHabitsRepositoryI) *UserHabitsService {
	if habitsRepo == nil || userHabitsRepo == nil {
		log.Fatal("provided nil repository for userHabitsService")
	}
	return &UserHabitsService{
		habitsRepo:     habitsRepo,
		userHabitsRepo: userHabitsRepo,
		now:            time.Now,
	}
}

// WithClock replaces the source of "today"
func (s *UserHabitsService) WithClock(now func() time.Time) *UserHabitsService {
	s.now = now
	return s
}

func (s *UserHabitsService) List(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	habits, err := s.userHabitsRepo.ListActive(ctx, uid)
	if err != nil {
		return nil, errors.New("user habits repository error: " + err.Error())
	}
	return habits, nil
}

func (s *UserHabitsService) Accept(ctx context.Context, uid uuid.UUID, habitID string) (*entity.UserHabit, error) {
	hid, err := uuid.Parse(habitID)
	if err != nil {
		return nil, errorvalues.ErrHabitNotFound
	}
	habit, err := s.habitsRepo.GetByID(ctx, hid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	uh, err := s.userHabitsRepo.Create(ctx, uid, habit)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitAlreadyTracked), errors.Is(err, errorvalues.ErrHabitNotFound):
			return nil, err
		}
		return nil, errors.New("user habits repository error: " + err.Error())
	}
	return uh, nil
}

func (s *UserHabitsService) Remove(ctx context.Context, uid uuid.UUID, habitID string) error {
	hid, err := uuid.Parse(habitID)
	if err != nil {
		return errorvalues.ErrHabitNotTracked
	}
	err = s.userHabitsRepo.Delete(ctx, uid, hid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotTracked) {
			return err
		}
		return errors.New("user habits repository error: " + err.Error())
	}
	return nil
}

func (s *UserHabitsService) Complete(ctx context.Context, uid uuid.UUID, habitID string) (*entity.UserHabit, error) {
	hid, err := uuid.Parse(habitID)
	if err != nil {
		return nil, errorvalues.ErrHabitNotTracked
	}
	today := s.now()
	uh, err := s.userHabitsRepo.Complete(ctx, uid, hid, func(uh *entity.UserHabit, user *entity.User) (*entity.HabitCompletion, error) {
		return ApplyCompletion(uh, user, today)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotTracked),
			errors.Is(err, errorvalues.ErrAlreadyCompleted),
			errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("user habits repository error: " + err.Error())
	}
	return uh, nil
}
