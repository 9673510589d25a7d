package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"dashboard_seed/internal/database"
	"dashboard_seed/internal/models"
)

type CustomerRepository struct {
	db database.DBTX
}

func NewCustomerRepository(db database.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) CreateTable(ctx context.Context) error {
	return database.CreateCustomersTable(ctx, r.db)
}

func (r *CustomerRepository) InsertMany(ctx context.Context, customers []models.Customer) (int64, error) {
	query := `
		INSERT INTO customers (id, name, email, image_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for i := range customers {
		customer := &customers[i]
		customer.Prepare()
		batch.Queue(query, customer.ID, customer.Name, customer.Email, customer.ImageURL)
	}

	return execBatch(ctx, r.db, batch)
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "customers")
}
