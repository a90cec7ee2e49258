// Package config reads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// StartupState controls whether the projection is rebuilt on boot.
type StartupState string

const (
	// StartupClean drops and rebuilds the projection tables before the
	// listener starts.
	StartupClean StartupState = "Clean"
	// StartupPersistent trusts the projection left by the previous run.
	StartupPersistent StartupState = "Persistent"
)

const (
	defaultServiceIP   = "0.0.0.0"
	defaultServicePort = 25566
)

// Config is everything the service reads from the environment.
type Config struct {
	DatabaseURL   string
	BackendURL    string
	ServiceIP     string
	ServicePort   int
	StartupState  StartupState
	NamesPath     string
	NicknamesPath string
	LogLevel      string
}

// Load merges an optional .env file into the environment and reads the
// service configuration. DATABASE_URL is the only required variable.
func Load() (Config, error) {
	// Missing .env is the normal production case.
	_ = godotenv.Load()

	cfg := Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		BackendURL:    os.Getenv("BACKEND_URL"),
		ServiceIP:     envOr("SERVICE_IP", defaultServiceIP),
		ServicePort:   defaultServicePort,
		StartupState:  parseStartupState(os.Getenv("SERVICE_STARTUP_STATE")),
		NamesPath:     os.Getenv("NAMES_PATH"),
		NicknamesPath: os.Getenv("NICKNAMES_PATH"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if raw := os.Getenv("SERVICE_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid SERVICE_PORT %q", raw)
		}
		cfg.ServicePort = port
	}
	return cfg, nil
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServiceIP, c.ServicePort)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseStartupState(s string) StartupState {
	if strings.EqualFold(s, string(StartupPersistent)) {
		return StartupPersistent
	}
	return StartupClean
}
