package usecase

import (
	"context"
	"errors"
	"time"

	"birthday-botique/internal/domain"
	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/repository"
	"birthday-botique/internal/infra/logging"

	"github.com/jackc/pgx/v4"
	"github.com/rs/zerolog"
)

// Compile-time check
var _ RegistrationUseCase = (*registrationUC)(nil)

// RegistrationUseCase drives the per-chat registration state machine.
// A chat is REGISTERED exactly when a user row exists; the pending
// custom-message marker on that row is the only extra session state.
type RegistrationUseCase interface {
	// Get returns the registration for a chat, or domain.ErrNotFound.
	Get(ctx context.Context, chatID int64) (*model.User, error)
	// RegisterDOB creates or overwrites the registration for a chat. An
	// existing custom message survives re-registration.
	RegisterDOB(ctx context.Context, chatID int64, dob time.Time) (*model.User, error)
	// Delete removes a registration; unknown chats are a no-op.
	Delete(ctx context.Context, chatID int64) error
	// RequestCustomMessage marks the chat as awaiting its custom birthday
	// message. Idempotent; domain.ErrNotFound for unregistered chats.
	RequestCustomMessage(ctx context.Context, chatID int64) error
	// SetCustomMessage stores text as the custom message for a chat that was
	// awaiting one; domain.ErrNotAwaitingMessage otherwise.
	SetCustomMessage(ctx context.Context, chatID int64, text string) error
	// ListAll returns every registration, ordered by chat id.
	ListAll(ctx context.Context) ([]*model.User, error)
}

type registrationUC struct {
	users repository.UserRepository
	logs  repository.ActivityLogRepository
	tm    repository.TransactionManager
	log   *zerolog.Logger
}

func NewRegistrationUseCase(users repository.UserRepository, logs repository.ActivityLogRepository, tm repository.TransactionManager, logger *zerolog.Logger) *registrationUC {
	return &registrationUC{users: users, logs: logs, tm: tm, log: logger}
}

func (r *registrationUC) Get(ctx context.Context, chatID int64) (*model.User, error) {
	defer logging.TraceDuration(r.log, "RegistrationUC.Get")()
	return r.users.FindByChatID(ctx, repository.NoTX, chatID)
}

func (r *registrationUC) RegisterDOB(ctx context.Context, chatID int64, dob time.Time) (*model.User, error) {
	defer logging.TraceDuration(r.log, "RegistrationUC.RegisterDOB")()

	var user *model.User
	// Read-then-save as one atomic step so a concurrent re-registration
	// cannot drop the chat's stored custom message.
	err := r.tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		existing, err := r.users.FindByChatID(ctx, tx, chatID)
		switch {
		case err == nil:
			existing.DateOfBirth = dob
			existing.Touch()
			user = existing
		case errors.Is(err, domain.ErrNotFound):
			user, err = model.NewUser(chatID, dob)
			if err != nil {
				return err
			}
		default:
			return err
		}
		return r.users.Save(ctx, tx, user)
	})
	if err != nil {
		return nil, err
	}

	r.audit(ctx, chatID, "DOB Registered")
	return user, nil
}

func (r *registrationUC) Delete(ctx context.Context, chatID int64) error {
	defer logging.TraceDuration(r.log, "RegistrationUC.Delete")()
	if err := r.users.Delete(ctx, repository.NoTX, chatID); err != nil {
		return err
	}
	r.audit(ctx, chatID, "DOB Deleted")
	return nil
}

func (r *registrationUC) RequestCustomMessage(ctx context.Context, chatID int64) error {
	defer logging.TraceDuration(r.log, "RegistrationUC.RequestCustomMessage")()
	return r.tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		user, err := r.users.FindByChatID(ctx, tx, chatID)
		if err != nil {
			return err
		}
		user.MarkAwaitingCustomMessage()
		return r.users.Save(ctx, tx, user)
	})
}

func (r *registrationUC) SetCustomMessage(ctx context.Context, chatID int64, text string) error {
	defer logging.TraceDuration(r.log, "RegistrationUC.SetCustomMessage")()
	err := r.tm.WithTx(ctx, pgx.TxOptions{}, func(ctx context.Context, tx repository.Tx) error {
		user, err := r.users.FindByChatID(ctx, tx, chatID)
		if err != nil {
			return err
		}
		if !user.AwaitingCustomMessage() {
			return domain.ErrNotAwaitingMessage
		}
		if err := user.SetCustomMessage(text); err != nil {
			return err
		}
		return r.users.Save(ctx, tx, user)
	})
	if err != nil {
		return err
	}
	r.audit(ctx, chatID, "Custom Message Set")
	return nil
}

func (r *registrationUC) ListAll(ctx context.Context) ([]*model.User, error) {
	defer logging.TraceDuration(r.log, "RegistrationUC.ListAll")()
	return r.users.ListAll(ctx, repository.NoTX)
}

// audit appends an activity log entry. Audit failures must never fail the
// user-facing operation, so they are only logged.
func (r *registrationUC) audit(ctx context.Context, chatID int64, action string) {
	if err := r.logs.Append(ctx, repository.NoTX, model.NewActivityLog(chatID, action)); err != nil {
		r.log.Error().Err(err).Int64("chat_id", chatID).Str("action", action).Msg("failed to append activity log")
	}
}
