package queries

import (
	"context"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByShop(ctx context.Context, shopID uuid.UUID) ([]*AppointmentView, error)
	FindQueueByShop(ctx context.Context, shopID uuid.UUID) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	// Queue lists the walk-ins currently waiting, oldest first.
	Queue(ctx context.Context, shopID uuid.UUID) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) Queue(ctx context.Context, shopID uuid.UUID) ([]*AppointmentView, error) {
	return q.store.FindQueueByShop(ctx, shopID)
}
