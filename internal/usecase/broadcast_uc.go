package usecase

import (
	"context"
	"fmt"
	"time"

	"birthday-botique/internal/domain/birthday"
	"birthday-botique/internal/domain/model"
	"birthday-botique/internal/domain/ports/adapter"
	"birthday-botique/internal/domain/ports/repository"
	"birthday-botique/internal/infra/logging"
	"birthday-botique/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ BroadcastUseCase = (*broadcastUC)(nil)

// BroadcastUseCase sends the daily batch of birthday messages.
type BroadcastUseCase interface {
	// SendBirthdayWishes messages every user whose stored month and day match
	// today, and returns how many messages were sent. Zero matches is a
	// normal outcome. A failed send to one user never stops the rest.
	SendBirthdayWishes(ctx context.Context, today time.Time) (int, error)
}

type broadcastUC struct {
	users     repository.UserRepository
	logs      repository.ActivityLogRepository
	messenger adapter.Messenger
	funFact   func() string
	log       *zerolog.Logger
}

func NewBroadcastUseCase(users repository.UserRepository, logs repository.ActivityLogRepository, messenger adapter.Messenger, logger *zerolog.Logger) *broadcastUC {
	return &broadcastUC{
		users:     users,
		logs:      logs,
		messenger: messenger,
		funFact:   birthday.RandomFunFact,
		log:       logger,
	}
}

func (b *broadcastUC) SendBirthdayWishes(ctx context.Context, today time.Time) (int, error) {
	defer logging.TraceDuration(b.log, "BroadcastUC.SendBirthdayWishes")()

	celebrants, err := b.users.FindByMonthDay(ctx, repository.NoTX, today.Month(), today.Day())
	if err != nil {
		return 0, fmt.Errorf("find today's birthdays: %w", err)
	}
	if len(celebrants) == 0 {
		b.log.Debug().Msg("no birthdays today")
		return 0, nil
	}

	sent := 0
	for _, u := range celebrants {
		text := b.composeMessage(u, today)
		if err := b.messenger.SendMessage(ctx, u.ChatID, text); err != nil {
			metrics.IncBroadcastMessage("failed")
			b.log.Error().Err(err).Int64("chat_id", u.ChatID).Msg("failed to send birthday message")
			continue
		}
		metrics.IncBroadcastMessage("sent")
		sent++
		b.audit(ctx, u.ChatID, "Birthday Message: "+text)
	}
	b.log.Info().Int("matched", len(celebrants)).Int("sent", sent).Msg("birthday broadcast finished")
	return sent, nil
}

// composeMessage prefers the user's own custom message; the pending marker
// does not count as one.
func (b *broadcastUC) composeMessage(u *model.User, today time.Time) string {
	if u.HasCustomMessage() {
		return *u.CustomMessage
	}
	age := birthday.Age(u.DateOfBirth, today)
	sign := birthday.ZodiacSign(u.DateOfBirth.Month(), u.DateOfBirth.Day())
	return birthday.DefaultMessage(age, sign, birthday.GiftSuggestion(sign), b.funFact())
}

func (b *broadcastUC) audit(ctx context.Context, chatID int64, action string) {
	if err := b.logs.Append(ctx, repository.NoTX, model.NewActivityLog(chatID, action)); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to append activity log")
	}
}
