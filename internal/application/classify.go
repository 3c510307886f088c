package application

import "strings"

// MessageKind tags an inbound text with the handler family it belongs to.
// Classification is pure so the dispatch precedence can be tested without
// any transport or storage.
type MessageKind int

const (
	// KindCommand is a leading-slash bot command, e.g. "/view_dob".
	KindCommand MessageKind = iota
	// KindDateCandidate is free text shaped like a date-of-birth submission:
	// exactly two '-' characters. It may still fail strict parsing.
	KindDateCandidate
	// KindFreeText is anything else; it only has meaning for chats awaiting
	// a custom birthday message.
	KindFreeText
)

func (k MessageKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindDateCandidate:
		return "date"
	default:
		return "text"
	}
}

// ClassifiedMessage is the result of classifying one inbound text.
type ClassifiedMessage struct {
	Kind    MessageKind
	Command string // without the slash, lowercased; only for KindCommand
	Text    string
}

// Classify applies the dispatch precedence: a command wins, then a text with
// exactly two dashes is treated as a date-of-birth attempt, and everything
// else falls through to the custom-message handler. The dash-count rule lets
// one dispatcher serve both free-text intents without a session flag beyond
// the pending custom-message marker.
func Classify(text string) ClassifiedMessage {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "/") {
		name := strings.Fields(trimmed)[0]
		name = strings.TrimPrefix(name, "/")
		// Commands in group chats arrive as /cmd@BotName.
		if at := strings.Index(name, "@"); at >= 0 {
			name = name[:at]
		}
		return ClassifiedMessage{Kind: KindCommand, Command: strings.ToLower(name), Text: trimmed}
	}
	if strings.Count(trimmed, "-") == 2 {
		return ClassifiedMessage{Kind: KindDateCandidate, Text: trimmed}
	}
	return ClassifiedMessage{Kind: KindFreeText, Text: trimmed}
}
