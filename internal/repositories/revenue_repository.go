package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"dashboard_seed/internal/database"
	"dashboard_seed/internal/models"
)

type RevenueRepository struct {
	db database.DBTX
}

func NewRevenueRepository(db database.DBTX) *RevenueRepository {
	return &RevenueRepository{db: db}
}

func (r *RevenueRepository) CreateTable(ctx context.Context) error {
	return database.CreateRevenueTable(ctx, r.db)
}

func (r *RevenueRepository) InsertMany(ctx context.Context, revenue []models.Revenue) (int64, error) {
	query := `
		INSERT INTO revenue (month, revenue)
		VALUES ($1, $2)
		ON CONFLICT (month) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, rev := range revenue {
		batch.Queue(query, rev.Month, rev.Revenue)
	}

	return execBatch(ctx, r.db, batch)
}

func (r *RevenueRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "revenue")
}
