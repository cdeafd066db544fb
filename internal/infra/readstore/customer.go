package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

// FindByShop lists customers whose responsible barber belongs to the shop.
// The Inactive flag is left for the query layer to compute against the
// inactivity policy.
func (s *CustomerReadStore) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.CustomerView, error) {
	const q = `
		SELECT c.id, c.name, c.phone, c.responsible_barber_id, c.total_spent_cents, c.last_visit
		FROM customers c
		JOIN users b ON b.id = c.responsible_barber_id
		WHERE b.shop_id = $1
		ORDER BY c.last_visit DESC`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	customers := make([]*queries.CustomerView, 0)
	for rows.Next() {
		var v queries.CustomerView
		if err := rows.Scan(&v.ID, &v.Name, &v.Phone, &v.ResponsibleBarberID, &v.TotalSpentCents, &v.LastVisit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer", err)
		}
		customers = append(customers, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate customers", err)
	}
	return customers, nil
}
