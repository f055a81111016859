package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/habitquest/internal/error_values"
	"github.com/limbo/habitquest/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func scanHabit(row pgx.Row, h *entity.Habit) error {
	var difficulty, frequency string
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Category, &difficulty, &frequency); err != nil {
		return err
	}
	h.Difficulty = entity.Difficulty(difficulty)
	h.Frequency = entity.Frequency(frequency)
	h.XP = h.Difficulty.XP()
	return nil
}

func (hr *HabitsRepository) List(ctx context.Context) ([]entity.Habit, error) {
	habits := make([]entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT id, name, description, category, difficulty, frequency FROM habits ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing habits error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var h entity.Habit
		if err = scanHabit(rows, &h); err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	row := hr.conn.QueryRow(ctx, `SELECT id, name, description, category, difficulty, frequency FROM habits WHERE id = $1;`, id)
	if err := scanHabit(row, &habit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) Random(ctx context.Context, freq entity.Frequency, difficulties []entity.Difficulty, exclude uuid.UUID) (*entity.Habit, error) {
	diffs := make([]string, 0, len(difficulties))
	for _, d := range difficulties {
		diffs = append(diffs, string(d))
	}
	var habit entity.Habit
	row := hr.conn.QueryRow(ctx, `SELECT h.id, h.name, h.description, h.category, h.difficulty, h.frequency FROM habits h
		WHERE h.frequency = $1 AND h.difficulty = ANY($2)
		AND NOT EXISTS (SELECT 1 FROM user_habits uh WHERE uh.habit_id = h.id AND uh.user_id = $3)
		ORDER BY random() LIMIT 1;`, string(freq), diffs, exclude)
	if err := scanHabit(row, &habit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrNoHabitCandidate
		}
		return nil, errors.New("picking random habit error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) Save(ctx context.Context, habit *entity.Habit) error {
	if habit == nil {
		return errors.New("habit is nil")
	}
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (name, description, category, difficulty, frequency) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description, category = EXCLUDED.category,
		difficulty = EXCLUDED.difficulty, frequency = EXCLUDED.frequency
		RETURNING id;`,
		habit.Name,
		habit.Description,
		habit.Category,
		string(habit.Difficulty),
		string(habit.Frequency),
	)
	if err := row.Scan(&habit.ID); err != nil {
		return errors.New("saving habit error: " + err.Error())
	}
	habit.XP = habit.Difficulty.XP()
	return nil
}
