package config

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"APP_NAME", "PORT", "LOG_LEVEL", "CORS_ALLOW_ORIGINS", "PASSWORD_HASHER", "SEED_DEMO_DATA", "ENABLE_WEBSOCKET"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected default port 5000, got %s", cfg.Port)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", cfg.LogLevel)
	}
	if !cfg.SeedDemoData || !cfg.EnableWebSocket {
		t.Error("Expected seeding and websocket to default to true")
	}
	if cfg.PasswordHasher != "placeholder" {
		t.Errorf("Expected placeholder hasher, got %s", cfg.PasswordHasher)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("PASSWORD_HASHER", "bcrypt")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Port != "8081" || cfg.LogLevel != logrus.DebugLevel || cfg.SeedDemoData || cfg.PasswordHasher != "bcrypt" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad level":  {"LOG_LEVEL", "loud"},
		"bad port":   {"PORT", "http"},
		"bad bool":   {"SEED_DEMO_DATA", "maybe"},
		"bad hasher": {"PASSWORD_HASHER", "md5"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := FromEnv(); err == nil {
				t.Errorf("Expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
