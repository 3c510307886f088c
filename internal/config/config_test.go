package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `
bot:
  token: "123:abc"
  admin_chat_id: 42
database:
  url: "postgres://localhost/birthdays"
redis:
  url: "localhost:6379"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Bot.Workers != 8 {
		t.Errorf("expected default workers 8, got %d", cfg.Bot.Workers)
	}
	if cfg.Broadcast.Time != "09:00" {
		t.Errorf("expected default broadcast time 09:00, got %q", cfg.Broadcast.Time)
	}
	if cfg.Broadcast.Timezone != "UTC" {
		t.Errorf("expected default timezone UTC, got %q", cfg.Broadcast.Timezone)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Admin.Port != 8080 {
		t.Errorf("expected default admin port 8080, got %d", cfg.Admin.Port)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing token", `
bot:
  admin_chat_id: 42
database:
  url: "postgres://localhost/x"
redis:
  url: "localhost:6379"
`},
		{"missing database url", `
bot:
  token: "123:abc"
  admin_chat_id: 42
redis:
  url: "localhost:6379"
`},
		{"missing admin chat id", `
bot:
  token: "123:abc"
database:
  url: "postgres://localhost/x"
redis:
  url: "localhost:6379"
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tc.body)); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
