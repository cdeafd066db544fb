package repository

import (
	"context"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	const q = `
		INSERT INTO appointments (id, customer_id, barber_id, service_name, price_cents, scheduled_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		a.ID(), a.CustomerID(), a.BarberID(), a.ServiceName(),
		a.Price().Cents(), a.ScheduledAt(), a.Status().String(),
	).Scan(&id)
	if err != nil {
		// The partial unique index on (customer_id, scheduled_at) over
		// non-cancelled rows surfaces double-booking as a duplicate key.
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to appointment.Status) (bool, error) {
	const q = `
		UPDATE appointments
		SET status = $2, updated_at = now()
		WHERE id = $1 AND status IN ('PENDING', 'QUEUE')`

	tag, err := tx.Exec(ctx, q, id, to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition appointment status", err)
	}
	return tag.RowsAffected() == 1, nil
}
