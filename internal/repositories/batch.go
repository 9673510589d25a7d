package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dashboard_seed/internal/database"
)

// execBatch sends every queued statement in one round trip and waits for all
// of them. It returns the total number of rows affected.
func execBatch(ctx context.Context, db database.DBTX, batch *pgx.Batch) (int64, error) {
	n := batch.Len()
	if n == 0 {
		return 0, nil
	}

	br := db.SendBatch(ctx, batch)

	var affected int64
	for i := 0; i < n; i++ {
		tag, err := br.Exec()
		if err != nil {
			br.Close()
			return affected, fmt.Errorf("batch statement %d/%d failed: %w", i+1, n, err)
		}
		affected += tag.RowsAffected()
	}

	if err := br.Close(); err != nil {
		return affected, err
	}
	return affected, nil
}

func count(ctx context.Context, db database.DBTX, table string) (int64, error) {
	var n int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", pgx.Identifier{table}.Sanitize())
	if err := db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %q: %w", table, err)
	}
	return n, nil
}
