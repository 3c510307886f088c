package repository

import (
	"context"
	"time"

	"birthday-botique/internal/domain/model"
)

// UserRepository is the persistence gateway for registered chats.
// Find methods return domain.ErrNotFound when no row matches.
type UserRepository interface {
	// Save upserts the row keyed by chat id and refreshes updated_at.
	Save(ctx context.Context, tx Tx, u *model.User) error
	FindByChatID(ctx context.Context, tx Tx, chatID int64) (*model.User, error)
	// Delete removes the registration. Deleting an unknown chat is a no-op.
	Delete(ctx context.Context, tx Tx, chatID int64) error
	// ListAll returns every registered user ordered by chat id.
	ListAll(ctx context.Context, tx Tx) ([]*model.User, error)
	// FindByMonthDay returns users whose stored birth month and day equal the
	// given pair, regardless of birth year.
	FindByMonthDay(ctx context.Context, tx Tx, month time.Month, day int) ([]*model.User, error)
}
