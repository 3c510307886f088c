package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/repository"
	"birthday-botique/internal/infra/metrics"
)

var _ repository.ActivityLogRepository = (*activityLogRepo)(nil)

type activityLogRepo struct {
	pool *pgxpool.Pool
}

func NewActivityLogRepo(pool *pgxpool.Pool) repository.ActivityLogRepository {
	return &activityLogRepo{pool: pool}
}

func (r *activityLogRepo) Append(ctx context.Context, tx repository.Tx, entry *model.ActivityLog) error {
	const q = `
INSERT INTO activity_logs (id, chat_id, action, created_at)
VALUES ($1, $2, $3, $4);
`
	_, err := execSQL(ctx, r.pool, tx, q, entry.ID, entry.ChatID, entry.Action, entry.CreatedAt)
	metrics.IncDBQuery("append_log", err)
	if err != nil {
		return fmt.Errorf("append activity log: %w", err)
	}
	return nil
}
