package readstore

import (
	"context"
	"time"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/worker"
)

type ReactivationReadStore struct {
	db db.DBTX
}

func NewReactivationReadStore(dbtx db.DBTX) *ReactivationReadStore {
	return &ReactivationReadStore{db: dbtx}
}

// FindInactiveSince returns customers whose last visit predates the cutoff and
// who have no reactivation job enqueued since that visit, so a sweep never
// nags the same customer twice for the same absence.
func (s *ReactivationReadStore) FindInactiveSince(ctx context.Context, cutoff time.Time) ([]worker.InactiveCustomer, error) {
	const q = `
		SELECT c.id, c.name, c.phone, c.last_visit
		FROM customers c
		WHERE c.last_visit < $1
		  AND NOT EXISTS (
			SELECT 1 FROM notification_jobs j
			WHERE j.topic = 'customer_reactivation'
			  AND j.payload->>'customer_id' = c.id::text
			  AND j.created_at > c.last_visit
		  )
		ORDER BY c.last_visit`

	rows, err := s.db.Query(ctx, q, cutoff)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inactive customers", err)
	}
	defer rows.Close()

	customers := make([]worker.InactiveCustomer, 0)
	for rows.Next() {
		var c worker.InactiveCustomer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.LastVisit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan inactive customer", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate inactive customers", err)
	}
	return customers, nil
}
