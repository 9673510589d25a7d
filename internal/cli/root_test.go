package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_seed/internal/config"
	"dashboard_seed/internal/utils"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	utils.Logger.SetOutput(&buf)
	t.Cleanup(func() { utils.Logger.SetOutput(os.Stdout) })
	return &buf
}

func TestExecute_MissingPostgresURL(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")
	logged := captureLog(t)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{})

	err := Execute(cmd)
	assert.ErrorIs(t, err, config.ErrMissingPostgresURL)
	assert.Contains(t, logged.String(), failureMessage)
	assert.Contains(t, logged.String(), "POSTGRES_URL")
}

func TestExecute_InvalidFlagValueIsLogged(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://u:p@127.0.0.1:1/db")
	logged := captureLog(t)

	called := false
	cmd := newRootCmd(config.NewViper(), func(context.Context, *config.Config) error {
		called = true
		return nil
	})
	cmd.SetArgs([]string{"--bcrypt-cost", "abc"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := Execute(cmd)
	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, logged.String(), failureMessage)
	assert.Contains(t, logged.String(), "bcrypt-cost")
}

func TestExecute_UnknownFlagIsLogged(t *testing.T) {
	logged := captureLog(t)

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--no-such-flag"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	require.Error(t, Execute(cmd))
	assert.Contains(t, logged.String(), failureMessage)
}

func TestExecute_UnreachableDatabase(t *testing.T) {
	t.Setenv("POSTGRES_URL", "")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{
		"--postgres-url", "postgres://u:p@127.0.0.1:1/db?connect_timeout=1",
		"--sslmode", "disable",
		"--close-timeout", "1s",
	})

	err := Execute(cmd)
	assert.ErrorContains(t, err, "failed to ping database")
}

func TestExecute_InvalidConfigValue(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://u:p@127.0.0.1:1/db")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"--bcrypt-cost", "99"})

	err := Execute(cmd)
	assert.ErrorContains(t, err, "SEED_BCRYPT_COST must be between")
}

func TestRootCmd_FlagsAndEnvironmentReachConfig(t *testing.T) {
	t.Setenv("SEED_CLOSE_TIMEOUT", "2s")
	t.Setenv("POSTGRES_URL", "postgres://env@localhost/db")

	var got *config.Config
	cmd := newRootCmd(config.NewViper(), func(_ context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{
		"--log-level", "debug",
		"--log-format", "json",
		"--sslmode", "disable",
		"--bcrypt-cost", "5",
	})
	t.Cleanup(func() { utils.InitLogger("info", "text") })

	require.NoError(t, Execute(cmd))
	require.NotNil(t, got)

	assert.Equal(t, "postgres://env@localhost/db", got.PostgresURL)
	assert.Equal(t, 2*time.Second, got.CloseTimeout)
	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, "disable", got.SSLMode)
	assert.Equal(t, 5, got.BcryptCost)
}

func TestRootCmd_PostgresURLFlagOverridesEnvironment(t *testing.T) {
	t.Setenv("POSTGRES_URL", "postgres://env@localhost/db")

	var got *config.Config
	cmd := newRootCmd(config.NewViper(), func(_ context.Context, cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"--postgres-url", "postgres://flag@localhost/db"})

	require.NoError(t, Execute(cmd))
	require.NotNil(t, got)
	assert.Equal(t, "postgres://flag@localhost/db", got.PostgresURL)
}
