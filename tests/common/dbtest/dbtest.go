//go:build e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// tables in FK order so TRUNCATE CASCADE stays predictable
var tables = []string{
	"notification_jobs",
	"financial_records",
	"appointments",
	"customers",
	"shops",
	"users",
}

// ResetDB wipes all application tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range tables {
		if _, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}
