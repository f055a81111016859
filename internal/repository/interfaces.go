package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitquest/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates user for identity or refreshes its profile fields. Returns stored user
	Upsert(ctx context.Context, identity entity.Identity) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type HabitsRepositoryI interface {
	// Lists whole catalog ordered by name
	List(ctx context.Context) ([]entity.Habit, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Picks random habit of freq with one of difficulties, skipping habits tracked by exclude user.
	// uuid.Nil excludes nothing
	Random(ctx context.Context, freq entity.Frequency, difficulties []entity.Difficulty, exclude uuid.UUID) (*entity.Habit, error)
	// Inserts habit or updates existing one with the same name
	Save(ctx context.Context, habit *entity.Habit) error
}

type UserHabitsRepositoryI interface {
	// Lists active habits of user
	ListActive(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error)
	// Starts tracking habit for user
	Create(ctx context.Context, uid uuid.UUID, habit *entity.Habit) (*entity.UserHabit, error)
	// Stops tracking habit with catalog id habitID
	Delete(ctx context.Context, uid, habitID uuid.UUID) error
	// Runs apply on locked user habit and user rows and persists the outcome in one transaction
	Complete(ctx context.Context, uid, habitID uuid.UUID, apply CompletionFunc) (*entity.UserHabit, error)
}

type CompletionsRepositoryI interface {
	// Lists user's completions with completion date in [from, to], keys are YYYY-MM-DD
	ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.HabitCompletion, error)
}

// CompletionFunc mutates uh and user in place and returns completion to record.
// A returned error aborts the transaction.
type CompletionFunc func(uh *entity.UserHabit, user *entity.User) (*entity.HabitCompletion, error)

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
