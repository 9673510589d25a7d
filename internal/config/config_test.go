package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost:5432/db")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@localhost:5432/db", cfg.PostgresURL)
	assert.Equal(t, "require", cfg.SSLMode)
	assert.Equal(t, 5*time.Second, cfg.CloseTimeout)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost:5432/db")
	t.Setenv("POSTGRES_SSLMODE", "Disable")
	t.Setenv("SEED_CLOSE_TIMEOUT", "250ms")
	t.Setenv("SEED_BCRYPT_COST", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(NewViper())
	require.NoError(t, err)

	assert.Equal(t, "disable", cfg.SSLMode)
	assert.Equal(t, 250*time.Millisecond, cfg.CloseTimeout)
	assert.Equal(t, 4, cfg.BcryptCost)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_SetOverridesEnv(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://env@localhost/db")

	v := NewViper()
	v.Set(KeyPostgresURL, "postgres://flag@localhost/db")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag@localhost/db", cfg.PostgresURL)
}

func TestLoad_MissingURL(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")

	_, err := Load(NewViper())
	assert.ErrorIs(t, err, ErrMissingPostgresURL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		key, value, want string
	}{
		"ssl mode":      {"POSTGRES_SSLMODE", "sometimes", "unsupported ssl mode"},
		"close timeout": {"SEED_CLOSE_TIMEOUT", "0s", "SEED_CLOSE_TIMEOUT must be positive"},
		"bcrypt cost":   {"SEED_BCRYPT_COST", "40", "SEED_BCRYPT_COST must be between"},
		"log level":     {"LOG_LEVEL", "nonsense", "LOG_LEVEL: unsupported log level"},
		"log format":    {"LOG_FORMAT", "xml", "LOG_FORMAT: unsupported log format"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("POSTGRES_URL", "postgres://u:p@localhost:5432/db")
			t.Setenv(tc.key, tc.value)

			_, err := Load(NewViper())
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.env")
	require.NoError(t, os.WriteFile(path, []byte("SEED_TEST_ONLY_VAR=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SEED_TEST_ONLY_VAR") })

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("SEED_TEST_ONLY_VAR"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.env")
	require.NoError(t, os.WriteFile(path, []byte("SEED_TEST_KEEP=from-file\n"), 0o600))
	t.Setenv("SEED_TEST_KEEP", "from-env")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "from-env", os.Getenv("SEED_TEST_KEEP"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorContains(t, err, "failed to load env file")
}
