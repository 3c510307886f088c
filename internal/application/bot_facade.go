package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"birthday-botique/internal/domain"
	"birthday-botique/internal/domain/birthday"
	"birthday-botique/internal/infra/metrics"
	"birthday-botique/internal/usecase"

	"github.com/rs/zerolog"
)

// Reply wording. The broadcast text lives in the birthday package; everything
// the bot says in direct conversation is here.
const (
	msgWelcome       = "Welcome to the Birthday Bot! Please enter your date of birth in the format MM-DD-YYYY."
	msgAlreadyHere   = "You're already registered! We'll send you a birthday wish on your special day!"
	msgRecorded      = "Thank you! We've recorded your date of birth as %s."
	msgBadDate       = "The date format is incorrect. Please enter your date of birth in the format MM-DD-YYYY."
	msgUpdatePrompt  = "Please enter your new date of birth in the format MM-DD-YYYY."
	msgNotRegistered = "You haven't registered your date of birth yet. Use /start to register."
	msgDeleted       = "Your date of birth has been deleted."
	msgViewDOB       = "Your registered date of birth is %s."
	msgNoBirthdays   = "No birthdays registered yet."
	msgNoPermission  = "You don't have permission to use this command."
	msgCustomPrompt  = "Please enter your custom birthday message."
	msgCustomSet     = "Your custom birthday message has been set!"
	msgRegisterFirst = "Please register your date of birth first using /start."
	msgListHeader    = "Registered Birthdays:\n"
)

const msgHelp = "Here's what I can do:\n" +
	"/start - register your date of birth\n" +
	"/update_dob - change your date of birth\n" +
	"/view_dob - show your registered date of birth\n" +
	"/delete_dob - remove your date of birth\n" +
	"/set_message - set a custom birthday message\n" +
	"/help - show this message"

// BotFacade turns one inbound chat message into one reply string. It owns
// dispatch and wording; all state lives behind the registration use case.
type BotFacade struct {
	reg         usecase.RegistrationUseCase
	adminChatID int64
	log         *zerolog.Logger
}

func NewBotFacade(reg usecase.RegistrationUseCase, adminChatID int64, logger *zerolog.Logger) *BotFacade {
	return &BotFacade{reg: reg, adminChatID: adminChatID, log: logger}
}

// HandleMessage dispatches text from chatID and returns the reply to send.
// A non-nil error means an infrastructure failure; the reply is then empty
// and the caller decides whether to answer at all.
func (f *BotFacade) HandleMessage(ctx context.Context, chatID int64, text string) (string, error) {
	m := Classify(text)
	metrics.IncUpdate(m.Kind.String())

	switch m.Kind {
	case KindCommand:
		return f.handleCommand(ctx, chatID, m.Command)
	case KindDateCandidate:
		return f.handleDate(ctx, chatID, m.Text)
	default:
		return f.handleFreeText(ctx, chatID, m.Text)
	}
}

func (f *BotFacade) handleCommand(ctx context.Context, chatID int64, command string) (string, error) {
	switch command {
	case "start":
		_, err := f.reg.Get(ctx, chatID)
		switch {
		case err == nil:
			return msgAlreadyHere, nil
		case errors.Is(err, domain.ErrNotFound):
			return msgWelcome, nil
		default:
			return "", fmt.Errorf("start for chat %d: %w", chatID, err)
		}

	case "update_dob":
		_, err := f.reg.Get(ctx, chatID)
		switch {
		case err == nil:
			return msgUpdatePrompt, nil
		case errors.Is(err, domain.ErrNotFound):
			return msgNotRegistered, nil
		default:
			return "", fmt.Errorf("update_dob for chat %d: %w", chatID, err)
		}

	case "view_dob":
		user, err := f.reg.Get(ctx, chatID)
		switch {
		case err == nil:
			return fmt.Sprintf(msgViewDOB, birthday.FormatDOB(user.DateOfBirth)), nil
		case errors.Is(err, domain.ErrNotFound):
			return msgNotRegistered, nil
		default:
			return "", fmt.Errorf("view_dob for chat %d: %w", chatID, err)
		}

	case "delete_dob":
		if err := f.reg.Delete(ctx, chatID); err != nil {
			return "", fmt.Errorf("delete_dob for chat %d: %w", chatID, err)
		}
		return msgDeleted, nil

	case "list_birthdays":
		// The admin gate comes before any storage access.
		if chatID != f.adminChatID {
			f.log.Warn().Int64("chat_id", chatID).Msg("list_birthdays denied")
			return msgNoPermission, nil
		}
		users, err := f.reg.ListAll(ctx)
		if err != nil {
			return "", fmt.Errorf("list_birthdays: %w", err)
		}
		if len(users) == 0 {
			return msgNoBirthdays, nil
		}
		var sb strings.Builder
		sb.WriteString(msgListHeader)
		for _, u := range users {
			fmt.Fprintf(&sb, "User ID %d: %s\n", u.ChatID, birthday.FormatDOB(u.DateOfBirth))
		}
		return sb.String(), nil

	case "set_message":
		err := f.reg.RequestCustomMessage(ctx, chatID)
		switch {
		case err == nil:
			return msgCustomPrompt, nil
		case errors.Is(err, domain.ErrNotFound):
			return msgNotRegistered, nil
		default:
			return "", fmt.Errorf("set_message for chat %d: %w", chatID, err)
		}

	default:
		// /help and anything unknown.
		return msgHelp, nil
	}
}

// handleDate treats text shaped like a date as a registration attempt,
// whether prompted by /start or /update_dob.
func (f *BotFacade) handleDate(ctx context.Context, chatID int64, text string) (string, error) {
	dob, err := birthday.ParseDOB(text)
	if err != nil {
		return msgBadDate, nil
	}
	user, err := f.reg.RegisterDOB(ctx, chatID, dob)
	if err != nil {
		return "", fmt.Errorf("register dob for chat %d: %w", chatID, err)
	}
	return fmt.Sprintf(msgRecorded, birthday.FormatDOB(user.DateOfBirth)), nil
}

// handleFreeText only has an effect for chats awaiting their custom birthday
// message; a registered chat with nothing pending gets pointed at /help.
func (f *BotFacade) handleFreeText(ctx context.Context, chatID int64, text string) (string, error) {
	err := f.reg.SetCustomMessage(ctx, chatID, text)
	switch {
	case err == nil:
		return msgCustomSet, nil
	case errors.Is(err, domain.ErrNotFound):
		return msgRegisterFirst, nil
	case errors.Is(err, domain.ErrNotAwaitingMessage), errors.Is(err, domain.ErrInvalidArgument):
		return msgHelp, nil
	default:
		return "", fmt.Errorf("custom message for chat %d: %w", chatID, err)
	}
}
