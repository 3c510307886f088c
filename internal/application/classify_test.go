package application_test

import (
	"testing"

	"birthday-botique/internal/application"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		kind    application.MessageKind
		command string
	}{
		{"start command", "/start", application.KindCommand, "start"},
		{"command with arguments", "/view_dob please", application.KindCommand, "view_dob"},
		{"command with bot mention", "/list_birthdays@BirthdayBot", application.KindCommand, "list_birthdays"},
		{"command is case-insensitive", "/START", application.KindCommand, "start"},
		{"well-formed date", "03-15-1990", application.KindDateCandidate, ""},
		{"malformed date still classifies as date", "99-99-9999", application.KindDateCandidate, ""},
		{"two dashes anywhere count", "a-b-c", application.KindDateCandidate, ""},
		{"one dash is free text", "03-151990", application.KindFreeText, ""},
		{"three dashes are free text", "1-2-3-4", application.KindFreeText, ""},
		{"plain text", "Happy bday to me!", application.KindFreeText, ""},
		{"empty text", "", application.KindFreeText, ""},
		{"leading whitespace before command", "  /start", application.KindCommand, "start"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := application.Classify(tc.text)
			if got.Kind != tc.kind {
				t.Errorf("Classify(%q).Kind = %v, want %v", tc.text, got.Kind, tc.kind)
			}
			if got.Command != tc.command {
				t.Errorf("Classify(%q).Command = %q, want %q", tc.text, got.Command, tc.command)
			}
		})
	}
}

// A command always wins over its other readings: "/start" contains no dashes,
// but a hypothetical dashed command must still dispatch as a command.
func TestClassify_CommandBeatsDashCount(t *testing.T) {
	got := application.Classify("/some-odd-command")
	if got.Kind != application.KindCommand {
		t.Fatalf("expected command, got %v", got.Kind)
	}
	if got.Command != "some-odd-command" {
		t.Errorf("Command = %q", got.Command)
	}
}
