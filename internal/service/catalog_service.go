package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/internal/repository"
	"github.com/limbo/habitquest/pkg/entity"
)

// suggestion pools per frequency, daily suggestions stay light
var suggestionDifficulties = map[entity.Frequency][]entity.Difficulty{
	entity.FrequencyDaily:  {entity.DifficultyEasy, entity.DifficultyMedium},
	entity.FrequencyWeekly: {entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard},
}

type CatalogService struct {
	repo repository.HabitsRepositoryI
}

func NewCatalogService(habitsRepo repository.HabitsRepositoryI) *CatalogService {
	if habitsRepo == nil {
		log.Fatal("provided nil habitsRepo")
	}
	InitValidator()
	return &CatalogService{
		repo: habitsRepo,
	}
}

func (cs *CatalogService) List(ctx context.Context) ([]entity.Habit, error) {
	habits, err := cs.repo.List(ctx)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (cs *CatalogService) Random(ctx context.Context, freq entity.Frequency, uid *uuid.UUID) (*entity.Habit, error) {
	difficulties, ok := suggestionDifficulties[freq]
	if !ok {
		return nil, fmt.Errorf("unknown frequency %q", freq)
	}
	exclude := uuid.Nil
	if uid != nil {
		exclude = *uid
	}
	habit, err := cs.repo.Random(ctx, freq, difficulties, exclude)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoHabitCandidate) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

// Import checks every entry before saving any of them
func (cs *CatalogService) Import(ctx context.Context, seeds []SeedHabit) (int, error) {
	names := make(map[string]struct{}, len(seeds))
	for i, s := range seeds {
		if err := validateStruct(s); err != nil {
			return 0, fmt.Errorf("%w: entry %d: %s", errorvalues.ErrInvalidSeed, i, err.Error())
		}
		if _, dup := names[s.Name]; dup {
			return 0, fmt.Errorf("%w: entry %d: duplicated name %q", errorvalues.ErrInvalidSeed, i, s.Name)
		}
		names[s.Name] = struct{}{}
	}
	for i, s := range seeds {
		h := s.Habit()
		if err := cs.repo.Save(ctx, &h); err != nil {
			return i, errors.New("habits repository error: " + err.Error())
		}
	}
	return len(seeds), nil
}
