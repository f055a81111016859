package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
)

const userHabitColumns = `id, user_id, habit_id, habit_name, difficulty, frequency, active, current_streak, longest_streak,
	to_char(last_completed_date, 'YYYY-MM-DD'), total_completions, total_xp_earned`

type UserHabitsRepository struct {
	conn PgConnection
}

func NewUserHabitsRepoWithConn(conn PgConnection) *UserHabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for userHabitsRepo: " + err.Error())
	}
	return &UserHabitsRepository{
		conn: conn,
	}
}

func scanUserHabit(row pgx.Row, uh *entity.UserHabit) error {
	var difficulty, frequency string
	err := row.Scan(
		&uh.ID,
		&uh.UserID,
		&uh.HabitID,
		&uh.HabitName,
		&difficulty,
		&frequency,
		&uh.Active,
		&uh.CurrentStreak,
		&uh.LongestStreak,
		&uh.LastCompletedDate,
		&uh.TotalCompletions,
		&uh.TotalXPEarned,
	)
	if err != nil {
		return err
	}
	uh.Difficulty = entity.Difficulty(difficulty)
	uh.Frequency = entity.Frequency(frequency)
	return nil
}

func (r *UserHabitsRepository) ListActive(ctx context.Context, uid uuid.UUID) ([]entity.UserHabit, error) {
	habits := make([]entity.UserHabit, 0)
	rows, err := r.conn.Query(ctx, `SELECT `+userHabitColumns+` FROM user_habits
		WHERE user_id = $1 AND active ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing user habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var uh entity.UserHabit
		if err = scanUserHabit(rows, &uh); err != nil {
			return nil, errors.New("unmarshalling user habit error: " + err.Error())
		}
		habits = append(habits, uh)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (r *UserHabitsRepository) Create(ctx context.Context, uid uuid.UUID, habit *entity.Habit) (*entity.UserHabit, error) {
	if habit == nil {
		return nil, errors.New("habit is nil")
	}
	var uh entity.UserHabit
	row := r.conn.QueryRow(ctx, `INSERT INTO user_habits (user_id, habit_id, habit_name, difficulty, frequency)
		VALUES ($1, $2, $3, $4, $5) RETURNING `+userHabitColumns+`;`,
		uid,
		habit.ID,
		habit.Name,
		string(habit.Difficulty),
		string(habit.Frequency),
	)
	if err := scanUserHabit(row, &uh); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, errorvalues.ErrHabitAlreadyTracked
			// Foreign key violation
			case "23503":
				return nil, errorvalues.ErrHabitNotFound
			}
		}
		return nil, errors.New("creating user habit error: " + err.Error())
	}
	return &uh, nil
}

func (r *UserHabitsRepository) Delete(ctx context.Context, uid, habitID uuid.UUID) error {
	ct, err := r.conn.Exec(ctx, `DELETE FROM user_habits WHERE user_id = $1 AND habit_id = $2;`, uid, habitID)
	if err != nil {
		return errors.New("deleting user habit error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotTracked
	}
	return nil
}

func (r *UserHabitsRepository) Complete(ctx context.Context, uid, habitID uuid.UUID, apply CompletionFunc) (*entity.UserHabit, error) {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning completion tx error: " + err.Error())
	}
	// no-op after commit
	defer tx.Rollback(ctx)

	var uh entity.UserHabit
	row := tx.QueryRow(ctx, `SELECT `+userHabitColumns+` FROM user_habits
		WHERE user_id = $1 AND habit_id = $2 AND active FOR UPDATE;`, uid, habitID)
	if err = scanUserHabit(row, &uh); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotTracked
		}
		return nil, errors.New("locking user habit error: " + err.Error())
	}
	var user entity.User
	row = tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE;`, uid)
	if err = scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("locking user error: " + err.Error())
	}

	completion, err := apply(&uh, &user)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `UPDATE user_habits SET current_streak = $1, longest_streak = $2, last_completed_date = $3::date,
		total_completions = $4, total_xp_earned = $5 WHERE id = $6;`,
		uh.CurrentStreak,
		uh.LongestStreak,
		uh.LastCompletedDate,
		uh.TotalCompletions,
		uh.TotalXPEarned,
		uh.ID,
	)
	if err != nil {
		return nil, errors.New("updating user habit error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `INSERT INTO habit_completions (user_id, user_habit_id, habit_id, habit_name, difficulty, frequency, completion_date, xp_earned)
		VALUES ($1, $2, $3, $4, $5, $6, $7::date, $8);`,
		uid,
		uh.ID,
		habitID,
		completion.HabitName,
		string(completion.Difficulty),
		string(completion.Frequency),
		completion.CompletionDate,
		completion.XPEarned,
	)
	if err != nil {
		return nil, errors.New("recording completion error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `UPDATE users SET total_xp = $1, level = $2, current_streak = $3, longest_streak = $4,
		last_active_date = $5::date WHERE id = $6;`,
		user.TotalXP,
		user.Level,
		user.CurrentStreak,
		user.LongestStreak,
		user.LastActiveDate,
		uid,
	)
	if err != nil {
		return nil, errors.New("updating user progress error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing completion error: " + err.Error())
	}
	return &uh, nil
}
