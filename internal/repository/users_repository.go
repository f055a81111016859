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

const userColumns = `id, provider_id, username, email, avatar_url, total_xp, level,
	current_streak, longest_streak, to_char(last_active_date, 'YYYY-MM-DD')`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func scanUser(row pgx.Row, user *entity.User) error {
	return row.Scan(
		&user.ID,
		&user.ProviderID,
		&user.Username,
		&user.Email,
		&user.AvatarURL,
		&user.TotalXP,
		&user.Level,
		&user.CurrentStreak,
		&user.LongestStreak,
		&user.LastActiveDate,
	)
}

func (ur *UsersRepository) Upsert(ctx context.Context, identity entity.Identity) (*entity.User, error) {
	if identity.ProviderID == "" {
		return nil, errors.New("identity without provider id")
	}
	var user entity.User
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (provider_id, username, email, avatar_url) VALUES ($1, $2, $3, $4)
		ON CONFLICT (provider_id) DO UPDATE SET username = EXCLUDED.username, email = EXCLUDED.email, avatar_url = EXCLUDED.avatar_url
		RETURNING `+userColumns+`;`,
		identity.ProviderID,
		identity.Username,
		identity.Email,
		identity.AvatarURL,
	)
	if err := scanUser(row, &user); err != nil {
		return nil, errors.New("upserting user error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	if err := scanUser(row, &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}
