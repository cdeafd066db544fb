package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(dbtx db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: dbtx}
}

func (s *AppointmentReadStore) FindByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.AppointmentView, error) {
	const q = `
		SELECT a.id, a.customer_id, c.name, a.barber_id, b.name,
		       a.service_name, a.price_cents, a.scheduled_at, a.status, a.created_at
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		JOIN users b ON b.id = a.barber_id
		WHERE b.shop_id = $1
		ORDER BY a.scheduled_at DESC`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	return scanAppointments(rows)
}

// FindQueueByShop returns only walk-ins still waiting, oldest booking first.
func (s *AppointmentReadStore) FindQueueByShop(ctx context.Context, shopID uuid.UUID) ([]*queries.AppointmentView, error) {
	const q = `
		SELECT a.id, a.customer_id, c.name, a.barber_id, b.name,
		       a.service_name, a.price_cents, a.scheduled_at, a.status, a.created_at
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		JOIN users b ON b.id = a.barber_id
		WHERE b.shop_id = $1 AND a.status = 'QUEUE'
		ORDER BY a.created_at`

	rows, err := s.db.Query(ctx, q, shopID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list queue", err)
	}
	return scanAppointments(rows)
}

func scanAppointments(rows pgx.Rows) ([]*queries.AppointmentView, error) {
	defer rows.Close()

	result := make([]*queries.AppointmentView, 0)
	for rows.Next() {
		var v queries.AppointmentView
		err := rows.Scan(
			&v.ID, &v.CustomerID, &v.CustomerName, &v.BarberID, &v.BarberName,
			&v.ServiceName, &v.PriceCents, &v.ScheduledAt, &v.Status, &v.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointments", err)
	}
	return result, nil
}
