package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/habitquest/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for completionsRepo: " + err.Error())
	}
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) ListByDateRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.HabitCompletion, error) {
	completions := make([]entity.HabitCompletion, 0)
	rows, err := cr.conn.Query(ctx, `SELECT id, user_id, COALESCE(user_habit_id::text, ''), habit_id, habit_name, difficulty, frequency,
		to_char(completion_date, 'YYYY-MM-DD'), xp_earned FROM habit_completions
		WHERE user_id = $1 AND completion_date BETWEEN $2::date AND $3::date
		ORDER BY completion_date, created_at;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing completions error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var (
			c                     entity.HabitCompletion
			difficulty, frequency string
		)
		err = rows.Scan(&c.ID, &c.UserID, &c.UserHabitID, &c.HabitID, &c.HabitName, &difficulty, &frequency, &c.CompletionDate, &c.XPEarned)
		if err != nil {
			return nil, errors.New("unmarshalling completion error: " + err.Error())
		}
		c.Difficulty = entity.Difficulty(difficulty)
		c.Frequency = entity.Frequency(frequency)
		completions = append(completions, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return completions, nil
}
