package cli

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dashboard_seed/internal/config"
	"dashboard_seed/internal/database"
	"dashboard_seed/internal/placeholder"
	"dashboard_seed/internal/services"
	"dashboard_seed/internal/utils"
)

const (
	envFileFlag    = "env-file"
	failureMessage = "An error occurred while attempting to seed the database"
)

var flagKeys = map[string]string{
	"postgres-url":  config.KeyPostgresURL,
	"sslmode":       config.KeySSLMode,
	"close-timeout": config.KeyCloseTimeout,
	"bcrypt-cost":   config.KeyBcryptCost,
	"log-level":     config.KeyLogLevel,
	"log-format":    config.KeyLogFormat,
}

// Execute runs cmd and logs any failure once, including flag parse errors
// that never reach RunE.
func Execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		utils.Logger.WithError(err).Error(failureMessage)
		return err
	}
	return nil
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(config.NewViper(), run)
}

func newRootCmd(v *viper.Viper, seed func(context.Context, *config.Config) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the dashboard tables and insert placeholder data",
		Long: `Creates the users, customers, invoices and revenue tables if they are missing
and inserts the placeholder rows in a single transaction. Running it again is a no-op.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, err := cmd.Flags().GetString(envFileFlag)
			if err != nil {
				return err
			}
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			utils.InitLogger(cfg.LogLevel, cfg.LogFormat)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return seed(ctx, cfg)
		},
	}

	flags := cmd.Flags()
	flags.String("postgres-url", "", "PostgreSQL connection string (env POSTGRES_URL)")
	flags.String("sslmode", "require", "sslmode used when the connection string has none (env POSTGRES_SSLMODE)")
	flags.Duration("close-timeout", 5*time.Second, "grace period for closing the connection pool (env SEED_CLOSE_TIMEOUT)")
	flags.Int("bcrypt-cost", utils.DefaultBcryptCost, "bcrypt cost for placeholder passwords (env SEED_BCRYPT_COST)")
	flags.String("log-level", "info", "log level (env LOG_LEVEL)")
	flags.String("log-format", "text", "log format: text or json (env LOG_FORMAT)")
	flags.String(envFileFlag, "", "dotenv file to load before reading the environment (default .env if present)")

	for name, key := range flagKeys {
		// Only fails when the flag is missing.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	log := utils.Logger
	log.Info("Starting database seeding...")

	pool, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := database.Close(pool, cfg.CloseTimeout); closeErr != nil {
			log.WithError(closeErr).Warn("Database connection pool did not close cleanly")
		}
	}()

	svc := services.NewSeedService(pool, placeholder.Default(), cfg.BcryptCost)

	report, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	for _, tr := range report.Tables {
		log.WithFields(logrus.Fields{
			"table":    tr.Table,
			"rows":     tr.Attempted,
			"inserted": tr.Inserted,
		}).Info("Table seeded")
	}

	totals, err := svc.Totals(ctx)
	if err != nil {
		// The data is committed; only the summary is missing.
		log.WithError(err).Warn("Could not read table totals")
	} else {
		log.WithFields(totalsFields(totals)).Info("Table totals")
	}

	log.Info("Database seeding completed successfully.")
	return nil
}

func totalsFields(totals map[string]int64) logrus.Fields {
	fields := make(logrus.Fields, len(totals))
	for table, n := range totals {
		fields[table] = n
	}
	return fields
}
