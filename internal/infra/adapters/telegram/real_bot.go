// Package telegram adapts the Telegram Bot API to the application's ports:
// it polls updates, fans them out to a worker pool, and answers through the
// facade. It also implements the outbound Messenger port used by the
// broadcast use case.
package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"birthday-botique/internal/application"
	"birthday-botique/internal/config"
	"birthday-botique/internal/domain/ports/adapter"
	"birthday-botique/internal/infra/metrics"
	red "birthday-botique/internal/infra/redis"
)

// Per-user, per-command budget for inbound messages.
const (
	rateLimitPerWindow = 20
	rateLimitWindow    = time.Minute
)

const msgRateLimited = "Rate limit exceeded. Please try again later."

// Compile-time check
var _ adapter.Messenger = (*RealBotAdapter)(nil)

// RealBotAdapter polls Telegram via tgbotapi and delegates every message to
// the BotFacade.
type RealBotAdapter struct {
	bot         *tgbotapi.BotAPI
	facade      *application.BotFacade
	rateLimiter *red.RateLimiter
	log         *zerolog.Logger

	updateWorkers int
	cancelPolling context.CancelFunc
}

func NewRealBotAdapter(cfg *config.BotConfig, facade *application.BotFacade, rateLimiter *red.RateLimiter, logger *zerolog.Logger) (*RealBotAdapter, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	if facade == nil {
		return nil, errors.New("bot facade is nil")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 8
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("authorized on telegram")

	return &RealBotAdapter{
		bot:           bot,
		facade:        facade,
		rateLimiter:   rateLimiter,
		log:           logger,
		updateWorkers: workers,
	}, nil
}

// StartPolling blocks until ctx is cancelled, feeding updates from long
// polling into a bounded channel drained by the worker pool.
func (r *RealBotAdapter) StartPolling(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := r.bot.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	r.cancelPolling = cancel

	var wg sync.WaitGroup
	updateChan := make(chan tgbotapi.Update, 100)

	for i := 0; i < r.updateWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case up := <-updateChan:
					if err := r.handleUpdate(ctx, up); err != nil {
						r.log.Error().Err(err).Int("worker", id).Msg("update handling failed")
					}
				}
			}
		}(i)
	}

	for {
		select {
		case <-ctx.Done():
			r.bot.StopReceivingUpdates()
			close(updateChan)
			wg.Wait()
			return ctx.Err()
		case up := <-updates:
			updateChan <- up
		}
	}
}

func (r *RealBotAdapter) StopPolling() {
	if r.cancelPolling != nil {
		r.cancelPolling()
	}
}

// SendMessage implements the Messenger port.
func (r *RealBotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := r.bot.Send(msg)
	return err
}

func (r *RealBotAdapter) handleUpdate(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}
	chatID := update.Message.Chat.ID

	if r.rateLimiter != nil {
		key := red.UserCommandKey(chatID, commandOf(update.Message.Text))
		allowed, err := r.rateLimiter.Allow(ctx, key, rateLimitPerWindow, rateLimitWindow)
		if err != nil {
			// Redis being down must not silence the bot.
			r.log.Error().Err(err).Msg("rate limiter unavailable")
		} else if !allowed {
			metrics.IncReply("rate_limited")
			return r.SendMessage(ctx, chatID, msgRateLimited)
		}
	}

	reply, err := r.facade.HandleMessage(ctx, chatID, update.Message.Text)
	if err != nil {
		metrics.IncReply("error")
		return err
	}
	if reply == "" {
		return nil
	}
	if err := r.SendMessage(ctx, chatID, reply); err != nil {
		metrics.IncReply("send_failed")
		return err
	}
	metrics.IncReply("ok")
	return nil
}

// commandOf reduces a message to its rate-limit bucket: the command token for
// commands, a single shared bucket for everything else.
func commandOf(text string) string {
	fields := strings.Fields(text)
	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		return fields[0]
	}
	return "message"
}
