package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit record. The workflow writes these for
// every state change and broadcast send; nothing ever reads them back.
type ActivityLog struct {
	ID        string
	ChatID    int64
	Action    string
	CreatedAt time.Time
}

func NewActivityLog(chatID int64, action string) *ActivityLog {
	return &ActivityLog{
		ID:        uuid.NewString(),
		ChatID:    chatID,
		Action:    action,
		CreatedAt: time.Now(),
	}
}
