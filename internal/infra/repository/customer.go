package repository

import (
	"context"
	"time"

	"barberpro/internal/domain/customer"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	const q = `
		INSERT INTO customers (id, name, phone, responsible_barber_id, total_spent_cents, last_visit)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		c.ID(), c.Name(), c.Phone(), c.ResponsibleBarberID(), c.TotalSpentCents(), c.LastVisit(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}
	return id, nil
}

func (r *CustomerRepository) RecordVisit(ctx context.Context, tx db.DBTX, customerID uuid.UUID, amountCents int64, at time.Time) error {
	const q = `
		UPDATE customers
		SET total_spent_cents = total_spent_cents + $2,
		    last_visit = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, q, customerID, amountCents, at)
	if err != nil {
		return infra.WrapRepoErr("failed to record customer visit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
