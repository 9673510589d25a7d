package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Keys shared by viper, flags and the environment.
const (
	KeyPostgresURL  = "postgres_url"
	KeySSLMode      = "sslmode"
	KeyCloseTimeout = "close_timeout"
	KeyBcryptCost   = "bcrypt_cost"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
)

var ErrMissingPostgresURL = errors.New("POSTGRES_URL environment variable is required")

var envNames = map[string]string{
	KeyPostgresURL:  "POSTGRES_URL",
	KeySSLMode:      "POSTGRES_SSLMODE",
	KeyCloseTimeout: "SEED_CLOSE_TIMEOUT",
	KeyBcryptCost:   "SEED_BCRYPT_COST",
	KeyLogLevel:     "LOG_LEVEL",
	KeyLogFormat:    "LOG_FORMAT",
}

var sslModes = map[string]bool{
	"disable":     true,
	"allow":       true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

type Config struct {
	PostgresURL  string
	SSLMode      string
	CloseTimeout time.Duration
	BcryptCost   int
	LogLevel     string
	LogFormat    string
}

// NewViper returns a viper instance with defaults and environment bindings.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySSLMode, "require")
	v.SetDefault(KeyCloseTimeout, 5*time.Second)
	v.SetDefault(KeyBcryptCost, 10)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	for key, env := range envNames {
		// BindEnv only errors when called without a key.
		_ = v.BindEnv(key, env)
	}
	return v
}

// LoadEnvFile loads variables from path without overriding ones already set.
// An empty path means ".env", which may be absent.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		PostgresURL:  strings.TrimSpace(v.GetString(KeyPostgresURL)),
		SSLMode:      strings.ToLower(strings.TrimSpace(v.GetString(KeySSLMode))),
		CloseTimeout: v.GetDuration(KeyCloseTimeout),
		BcryptCost:   v.GetInt(KeyBcryptCost),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat))),
	}

	if cfg.PostgresURL == "" {
		return nil, ErrMissingPostgresURL
	}
	if cfg.SSLMode != "" && !sslModes[cfg.SSLMode] {
		return nil, fmt.Errorf("%s: unsupported ssl mode %q", envNames[KeySSLMode], cfg.SSLMode)
	}
	if cfg.CloseTimeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", envNames[KeyCloseTimeout], cfg.CloseTimeout)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("%s must be between 4 and 31, got %d", envNames[KeyBcryptCost], cfg.BcryptCost)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("%s: unsupported log level %q", envNames[KeyLogLevel], cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("%s: unsupported log format %q, want text or json", envNames[KeyLogFormat], cfg.LogFormat)
	}

	return cfg, nil
}
