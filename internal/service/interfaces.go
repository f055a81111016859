package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitquest/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

type UserServiceI interface {
	// Gets or creates user behind identity, refreshing profile fields
	Identify(ctx context.Context, identity entity.Identity) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type CatalogServiceI interface {
	// Lists all catalog habits
	List(ctx context.Context) ([]entity.Habit, error)
	// Picks random habit of freq. With non-nil uid habits tracked by this user are skipped
	Random(ctx context.Context, freq entity.Frequency, uid *uuid.UUID) (*entity.Habit, error)
	// Validates and saves seed entries, returns count of saved habits
	Import(ctx context.Context, seeds []SeedHabit) (int, error)
}

type UserHabitsServiceI interface {
	// Lists active tracked habits
	List(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error)
	// Starts tracking catalog habit habitID
	Accept(ctx context.Context, uid uuid.UUID, habitID string) (*entity.UserHabit, error)
	// Stops tracking catalog habit habitID
	Remove(ctx context.Context, uid uuid.UUID, habitID string) error
	// Marks tracked habit done for current period, granting XP and advancing streaks
	Complete(ctx context.Context, uid uuid.UUID, habitID string) (*entity.UserHabit, error)
}

type CompletionsServiceI interface {
	// Lists completions of the Monday-first week containing date
	Week(ctx context.Context, uid uuid.UUID, date time.Time) ([]entity.HabitCompletion, error)
}
