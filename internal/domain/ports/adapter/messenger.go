package adapter

import "context"

// Messenger is the outbound side of the chat transport: everything the
// workflow needs is "send this text to that chat".
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}
