package services

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"dashboard_seed/internal/database"
	"dashboard_seed/internal/models"
	"dashboard_seed/internal/placeholder"
	"dashboard_seed/internal/repositories"
	"dashboard_seed/internal/utils"
)

// Pool is satisfied by *pgxpool.Pool.
type Pool interface {
	database.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type TableReport struct {
	Table     string
	Attempted int
	Inserted  int64
}

type Report struct {
	Tables []TableReport
}

type SeedService struct {
	pool       Pool
	fixtures   placeholder.Fixtures
	bcryptCost int
}

func NewSeedService(pool Pool, fixtures placeholder.Fixtures, bcryptCost int) *SeedService {
	return &SeedService{
		pool:       pool,
		fixtures:   fixtures,
		bcryptCost: bcryptCost,
	}
}

// Run creates the tables and inserts the fixtures in one transaction. Nothing
// is committed unless every table succeeds.
func (s *SeedService) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	steps := []struct {
		table string
		seed  func(context.Context, pgx.Tx) (TableReport, error)
	}{
		{"users", s.seedUsers},
		{"customers", s.seedCustomers},
		{"invoices", s.seedInvoices},
		{"revenue", s.seedRevenue},
	}

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, step := range steps {
			tr, err := step.seed(ctx, tx)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", step.table, err)
			}
			report.Tables = append(report.Tables, tr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return report, nil
}

// Totals counts the rows currently in each seeded table.
func (s *SeedService) Totals(ctx context.Context) (map[string]int64, error) {
	counters := map[string]func(context.Context) (int64, error){
		"users":     repositories.NewUserRepository(s.pool).Count,
		"customers": repositories.NewCustomerRepository(s.pool).Count,
		"invoices":  repositories.NewInvoiceRepository(s.pool).Count,
		"revenue":   repositories.NewRevenueRepository(s.pool).Count,
	}

	totals := make(map[string]int64, len(counters))
	for table, countRows := range counters {
		n, err := countRows(ctx)
		if err != nil {
			return nil, err
		}
		totals[table] = n
	}
	return totals, nil
}

func (s *SeedService) seedUsers(ctx context.Context, tx pgx.Tx) (TableReport, error) {
	repo := repositories.NewUserRepository(tx)
	if err := repo.CreateTable(ctx); err != nil {
		return TableReport{}, err
	}
	logCreated("users")

	users, err := s.hashPasswords(ctx, s.fixtures.Users)
	if err != nil {
		return TableReport{}, err
	}

	inserted, err := repo.InsertMany(ctx, users)
	if err != nil {
		return TableReport{}, err
	}
	return logSeeded("users", "users", len(users), inserted), nil
}

// hashPasswords hashes every user's password in parallel. bcrypt is CPU
// bound, so the group is limited to the number of CPUs.
func (s *SeedService) hashPasswords(ctx context.Context, users []models.User) ([]models.User, error) {
	hashed := slices.Clone(users)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range hashed {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			hash, err := utils.HashPassword(hashed[i].Password, s.bcryptCost)
			if err != nil {
				return fmt.Errorf("user %s: %w", hashed[i].ID, err)
			}
			hashed[i].PasswordHash = hash
			hashed[i].Password = ""
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hashed, nil
}

func (s *SeedService) seedCustomers(ctx context.Context, tx pgx.Tx) (TableReport, error) {
	repo := repositories.NewCustomerRepository(tx)
	if err := repo.CreateTable(ctx); err != nil {
		return TableReport{}, err
	}
	logCreated("customers")

	customers := slices.Clone(s.fixtures.Customers)
	inserted, err := repo.InsertMany(ctx, customers)
	if err != nil {
		return TableReport{}, err
	}
	return logSeeded("customers", "customers", len(customers), inserted), nil
}

func (s *SeedService) seedInvoices(ctx context.Context, tx pgx.Tx) (TableReport, error) {
	repo := repositories.NewInvoiceRepository(tx)
	if err := repo.CreateTable(ctx); err != nil {
		return TableReport{}, err
	}
	logCreated("invoices")

	invoices := slices.Clone(s.fixtures.Invoices)
	inserted, err := repo.InsertMany(ctx, invoices)
	if err != nil {
		return TableReport{}, err
	}
	return logSeeded("invoices", "invoices", len(invoices), inserted), nil
}

func (s *SeedService) seedRevenue(ctx context.Context, tx pgx.Tx) (TableReport, error) {
	repo := repositories.NewRevenueRepository(tx)
	if err := repo.CreateTable(ctx); err != nil {
		return TableReport{}, err
	}
	logCreated("revenue")

	inserted, err := repo.InsertMany(ctx, s.fixtures.Revenue)
	if err != nil {
		return TableReport{}, err
	}
	return logSeeded("revenue", "revenue entries", len(s.fixtures.Revenue), inserted), nil
}

func logCreated(table string) {
	utils.Logger.WithField("table", table).Infof("Created %q table", table)
}

func logSeeded(table, noun string, attempted int, inserted int64) TableReport {
	utils.Logger.WithFields(logrus.Fields{
		"table":    table,
		"rows":     attempted,
		"inserted": inserted,
	}).Infof("Seeded %d %s", attempted, noun)

	return TableReport{Table: table, Attempted: attempted, Inserted: inserted}
}
