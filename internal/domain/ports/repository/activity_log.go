package repository

import (
	"context"

	"birthday-botique/internal/domain/model"
)

// ActivityLogRepository appends audit records. The workflow never reads them
// back, so there is no query surface.
type ActivityLogRepository interface {
	Append(ctx context.Context, tx Tx, entry *model.ActivityLog) error
}
