package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort         = 3000
	DefaultModel        = "gemini-2.0-flash"
	DefaultAllowOrigins = "*"
)

var (
	ErrMissingGeminiAPIKey = errors.New("GEMINI_API_KEY is required")
	ErrMissingClientAPIKey = errors.New("CLIENT_API_KEY is required unless AUTH_DISABLED=true")
	ErrInvalidPort         = errors.New("invalid PORT")
)

// Config is loaded once at startup and passed to the components that need it.
type Config struct {
	Port         int
	GeminiAPIKey string
	GeminiModel  string

	// ClientAPIKey is the shared secret checked against the x-api-key header.
	ClientAPIKey string
	AuthDisabled bool

	AllowOrigins string
	LogLevel     slog.Level
	Version      string
	Env          string
}

// Load reads envFile (if present) into the process environment and builds a
// validated Config from it.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("env file not found, using system environment variables", "file", envFile)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		GeminiAPIKey: get("GEMINI_API_KEY", ""),
		GeminiModel:  get("GEMINI_MODEL", DefaultModel),
		ClientAPIKey: get("CLIENT_API_KEY", ""),
		AllowOrigins: get("CORS_ALLOW_ORIGINS", DefaultAllowOrigins),
		Version:      get("APP_VERSION", "dev"),
		Env:          get("ENV", "development"),
	}

	port, err := strconv.Atoi(get("PORT", strconv.Itoa(DefaultPort)))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, get("PORT", ""))
	}
	cfg.Port = port

	cfg.AuthDisabled, err = strconv.ParseBool(get("AUTH_DISABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUTH_DISABLED: %w", err)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports missing credentials. An unset client key is only accepted
// when the gate is explicitly disabled.
func (c *Config) Validate() error {
	if c.GeminiAPIKey == "" {
		return ErrMissingGeminiAPIKey
	}
	if c.ClientAPIKey == "" && !c.AuthDisabled {
		return ErrMissingClientAPIKey
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	return nil
}

// Addr is the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
