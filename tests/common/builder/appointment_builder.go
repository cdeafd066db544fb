//go:build unit || e2e

package builder

import (
	"time"

	"barberpro/internal/domain/appointment"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	CustomerID  uuid.UUID
	BarberID    uuid.UUID
	ServiceName string
	PriceCents  int64
	ScheduledAt time.Time
	Status      string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		CustomerID:  uuid.New(),
		BarberID:    uuid.New(),
		ServiceName: "Corte degradê",
		PriceCents:  3500,
		ScheduledAt: time.Date(2026, 9, 15, 14, 0, 0, 0, time.UTC),
		Status:      "PENDING",
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	price, err := appointment.NewMoney(a.PriceCents)
	if err != nil {
		return nil, err
	}

	return appointment.NewAppointment(
		a.CustomerID,
		a.BarberID,
		a.ServiceName,
		price,
		a.ScheduledAt,
		appointment.Status(a.Status),
	)
}

func (a *AppointmentBuilder) WithService(name string) *AppointmentBuilder {
	a.ServiceName = name
	return a
}

func (a *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithPriceCents(cents int64) *AppointmentBuilder {
	a.PriceCents = cents
	return a
}
