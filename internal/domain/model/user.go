package model

import (
	"time"

	"birthday-botique/internal/domain"
)

// CustomMessagePending is the sentinel stored in custom_message while the bot
// is waiting for the user's next text message to become the actual message.
// It is distinct from both "unset" (NULL in the store, nil here) and any real
// message text, which must be non-empty.
const CustomMessagePending = ""

// User is a domain entity representing one registered chat.
// A User exists if and only if the chat has submitted a valid date of birth.
type User struct {
	ChatID        int64
	DateOfBirth   time.Time
	CustomMessage *string
	UpdatedAt     time.Time
}

func NewUser(chatID int64, dob time.Time) (*User, error) {
	if chatID == 0 {
		return nil, domain.ErrInvalidArgument
	}
	if dob.IsZero() {
		return nil, domain.ErrInvalidArgument
	}
	return &User{
		ChatID:      chatID,
		DateOfBirth: dob,
		UpdatedAt:   time.Now(),
	}, nil
}

func (u *User) IsZero() bool { return u == nil || u.ChatID == 0 }
func (u *User) Touch()       { u.UpdatedAt = time.Now() }

// AwaitingCustomMessage reports whether the pending marker is set, i.e. the
// next free-text message from this chat becomes the custom birthday message.
func (u *User) AwaitingCustomMessage() bool {
	return u.CustomMessage != nil && *u.CustomMessage == CustomMessagePending
}

// HasCustomMessage reports whether a real (non-pending, non-empty) custom
// birthday message is stored.
func (u *User) HasCustomMessage() bool {
	return u.CustomMessage != nil && *u.CustomMessage != CustomMessagePending
}

// MarkAwaitingCustomMessage sets the pending marker. Idempotent.
func (u *User) MarkAwaitingCustomMessage() {
	s := CustomMessagePending
	u.CustomMessage = &s
	u.Touch()
}

// SetCustomMessage stores text as the custom birthday message, leaving the
// pending state. Empty text is rejected so it can never alias the marker.
func (u *User) SetCustomMessage(text string) error {
	if text == "" {
		return domain.ErrInvalidArgument
	}
	u.CustomMessage = &text
	u.Touch()
	return nil
}
