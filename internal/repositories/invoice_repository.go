package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"dashboard_seed/internal/database"
	"dashboard_seed/internal/models"
)

type InvoiceRepository struct {
	db database.DBTX
}

func NewInvoiceRepository(db database.DBTX) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) CreateTable(ctx context.Context) error {
	return database.CreateInvoicesTable(ctx, r.db)
}

// InsertMany validates every invoice before queueing any of them.
func (r *InvoiceRepository) InsertMany(ctx context.Context, invoices []models.Invoice) (int64, error) {
	query := `
		INSERT INTO invoices (id, customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	batch := &pgx.Batch{}
	for i := range invoices {
		invoice := &invoices[i]
		invoice.Prepare()
		if err := invoice.Validate(); err != nil {
			return 0, err
		}
		batch.Queue(query, invoice.ID, invoice.CustomerID, invoice.Amount, invoice.Status, invoice.Date)
	}

	return execBatch(ctx, r.db, batch)
}

func (r *InvoiceRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, r.db, "invoices")
}
