package database

import (
	"context"
	"fmt"
)

const createUUIDExtension = `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
  id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password TEXT NOT NULL
);
`

const createCustomersTable = `
CREATE TABLE IF NOT EXISTS customers (
  id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
  name VARCHAR(255) NOT NULL,
  email VARCHAR(255) NOT NULL,
  image_url VARCHAR(255) NOT NULL
);
`

// customer_id has no foreign key constraint.
const createInvoicesTable = `
CREATE TABLE IF NOT EXISTS invoices (
  id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
  customer_id UUID NOT NULL,
  amount INT NOT NULL,
  status VARCHAR(255) NOT NULL,
  date DATE NOT NULL
);
`

const createRevenueTable = `
CREATE TABLE IF NOT EXISTS revenue (
  month VARCHAR(4) NOT NULL UNIQUE,
  revenue INT NOT NULL
);
`

func CreateUsersTable(ctx context.Context, db DBTX) error {
	return run(ctx, db, "users", createUUIDExtension, createUsersTable)
}

func CreateCustomersTable(ctx context.Context, db DBTX) error {
	return run(ctx, db, "customers", createUUIDExtension, createCustomersTable)
}

func CreateInvoicesTable(ctx context.Context, db DBTX) error {
	return run(ctx, db, "invoices", createUUIDExtension, createInvoicesTable)
}

func CreateRevenueTable(ctx context.Context, db DBTX) error {
	return run(ctx, db, "revenue", createRevenueTable)
}

func run(ctx context.Context, db DBTX, table string, statements ...string) error {
	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create %q table: %w", table, err)
		}
	}
	return nil
}
