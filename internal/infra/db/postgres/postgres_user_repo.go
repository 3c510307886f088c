package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"birthday-botique/internal/domain"
	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/repository"
	"birthday-botique/internal/infra/metrics"
)

var _ repository.UserRepository = (*PostgresUserRepo)(nil)

type PostgresUserRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepo(pool *pgxpool.Pool) *PostgresUserRepo {
	return &PostgresUserRepo{pool: pool}
}

func (r *PostgresUserRepo) Save(ctx context.Context, tx repository.Tx, u *model.User) error {
	const q = `
INSERT INTO users (chat_id, date_of_birth, custom_message, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (chat_id) DO UPDATE SET
  date_of_birth=$2, custom_message=$3, updated_at=$4;
`
	_, err := execSQL(ctx, r.pool, tx, q, u.ChatID, u.DateOfBirth, u.CustomMessage, u.UpdatedAt)
	metrics.IncDBQuery("save_user", err)
	if err != nil {
		return fmt.Errorf("save user %d: %w", u.ChatID, err)
	}
	return nil
}

func (r *PostgresUserRepo) FindByChatID(ctx context.Context, tx repository.Tx, chatID int64) (*model.User, error) {
	const q = `
SELECT chat_id, date_of_birth, custom_message, updated_at
  FROM users WHERE chat_id=$1;
`
	row, err := pickRow(ctx, r.pool, tx, q, chatID)
	if err != nil {
		return nil, err
	}
	var u model.User
	if err := row.Scan(&u.ChatID, &u.DateOfBirth, &u.CustomMessage, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			metrics.IncDBQuery("find_user", nil)
			return nil, domain.ErrNotFound
		}
		metrics.IncDBQuery("find_user", err)
		return nil, fmt.Errorf("find user %d: %w", chatID, err)
	}
	metrics.IncDBQuery("find_user", nil)
	return &u, nil
}

func (r *PostgresUserRepo) Delete(ctx context.Context, tx repository.Tx, chatID int64) error {
	// Deleting an unknown chat is deliberately a no-op.
	_, err := execSQL(ctx, r.pool, tx, `DELETE FROM users WHERE chat_id=$1;`, chatID)
	metrics.IncDBQuery("delete_user", err)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", chatID, err)
	}
	return nil
}

func (r *PostgresUserRepo) ListAll(ctx context.Context, tx repository.Tx) ([]*model.User, error) {
	const q = `
SELECT chat_id, date_of_birth, custom_message, updated_at
  FROM users ORDER BY chat_id;
`
	rows, err := queryRows(ctx, r.pool, tx, q)
	metrics.IncDBQuery("list_users", err)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *PostgresUserRepo) FindByMonthDay(ctx context.Context, tx repository.Tx, month time.Month, day int) ([]*model.User, error) {
	const q = `
SELECT chat_id, date_of_birth, custom_message, updated_at
  FROM users
 WHERE EXTRACT(MONTH FROM date_of_birth) = $1
   AND EXTRACT(DAY FROM date_of_birth) = $2
 ORDER BY chat_id;
`
	rows, err := queryRows(ctx, r.pool, tx, q, int(month), day)
	metrics.IncDBQuery("find_users_by_month_day", err)
	if err != nil {
		return nil, fmt.Errorf("find users by month/day: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]*model.User, error) {
	var users []*model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ChatID, &u.DateOfBirth, &u.CustomMessage, &u.UpdatedAt); err != nil {
			return nil, domain.ErrReadDatabaseRow
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
