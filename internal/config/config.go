package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go-pos-ledger/pkg/password"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	AppName          string
	Port             string
	LogLevel         logrus.Level
	CORSAllowOrigins string
	PasswordHasher   string
	SeedDemoData     bool
	EnableWebSocket  bool
}

// Load reads .env (if present) and then the process environment.
// A missing .env file is reported through envLoaded, not as an error.
func Load(files ...string) (cfg *Config, envLoaded bool, err error) {
	envLoaded = godotenv.Load(files...) == nil
	cfg, err = FromEnv()
	return cfg, envLoaded, err
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	seed, err := getBool("SEED_DEMO_DATA", true)
	if err != nil {
		return nil, err
	}
	ws, err := getBool("ENABLE_WEBSOCKET", true)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppName:          getEnv("APP_NAME", "POS Ledger API"),
		Port:             getEnv("PORT", "5000"),
		LogLevel:         level,
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		PasswordHasher:   getEnv("PASSWORD_HASHER", password.SchemePlaceholder),
		SeedDemoData:     seed,
		EnableWebSocket:  ws,
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if _, err := password.New(cfg.PasswordHasher); err != nil {
		return nil, fmt.Errorf("PASSWORD_HASHER: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return v, nil
}
