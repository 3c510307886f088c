package telegram

import (
	"context"

	"github.com/rs/zerolog"

	"birthday-botique/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.Messenger = (*NoopBot)(nil)

// NoopBot is a Messenger that only logs. Used in dry-run mode so the
// broadcast pipeline can be exercised without a bot token doing real sends.
type NoopBot struct {
	log *zerolog.Logger
}

func NewNoopBot(logger *zerolog.Logger) *NoopBot {
	return &NoopBot{log: logger}
}

func (n *NoopBot) SendMessage(_ context.Context, chatID int64, text string) error {
	n.log.Info().Int64("chat_id", chatID).Str("text", text).Msg("noop send")
	return nil
}
