package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"dashboard_seed/internal/config"
	"dashboard_seed/internal/utils"
)

var ErrCloseTimeout = errors.New("timed out closing database connection pool")

// DBTX is the subset of pgx shared by *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

func Connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	dsn, err := withSSLMode(cfg.PostgresURL, cfg.SSLMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check POSTGRES_URL): %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string (check POSTGRES_URL): %w", err)
	}

	// A seeding run holds one transaction plus a few reads afterwards.
	poolConfig.MaxConns = 4
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = 5 * time.Minute
	poolConfig.MaxConnIdleTime = 1 * time.Minute

	utils.Logger.Infof("Connecting to database: %s", redact(poolConfig.ConnConfig))

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	utils.Logger.Info("Database connection pool established successfully")
	return pool, nil
}

// Close closes pool, waiting at most timeout. On ErrCloseTimeout the close
// keeps running in the background.
func Close(pool *pgxpool.Pool, timeout time.Duration) error {
	if pool == nil {
		return nil
	}

	done := make(chan struct{})
	go func() {
		pool.Close()
		close(done)
	}()

	select {
	case <-done:
		utils.Logger.Info("Database connection pool closed")
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w after %s", ErrCloseTimeout, timeout)
	}
}

// withSSLMode sets sslmode on dsn unless it already carries one. Both URL and
// keyword/value connection strings are accepted.
func withSSLMode(dsn, mode string) (string, error) {
	if mode == "" {
		return dsn, nil
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", err
		}
		q := u.Query()
		if q.Get("sslmode") != "" {
			return dsn, nil
		}
		q.Set("sslmode", mode)
		u.RawQuery = q.Encode()
		return u.String(), nil
	}

	if strings.Contains(dsn, "sslmode=") {
		return dsn, nil
	}
	return strings.TrimSpace(dsn + " sslmode=" + mode), nil
}

func redact(cc *pgx.ConnConfig) string {
	return fmt.Sprintf("postgres://%s:***@%s:%d/%s", cc.User, cc.Host, cc.Port, cc.Database)
}
