package repository

import (
	"context"

	"barberpro/internal/domain/ledger"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type FinanceRepository struct{}

func NewFinanceRepository() *FinanceRepository {
	return &FinanceRepository{}
}

func (r *FinanceRepository) Create(ctx context.Context, tx db.DBTX, rec *ledger.FinancialRecord) (uuid.UUID, error) {
	const q = `
		INSERT INTO financial_records (id, barber_id, amount_cents, house_cents, barber_cents, settled_at, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		rec.ID(), rec.BarberID(),
		rec.Amount().Cents(), rec.HouseShare().Cents(), rec.BarberShare().Cents(),
		rec.SettledAt(), rec.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create financial record", err)
	}
	return id, nil
}
