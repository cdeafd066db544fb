package request

import (
	"strings"
	"time"

	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateAppointmentRequest books either a scheduled visit or a walk-in.
// Callers identify the customer by id or, for first-timers, by name; the
// booking flow creates the customer record on the fly.
type CreateAppointmentRequest struct {
	CustomerID    *uuid.UUID `json:"customer_id,omitempty"`
	CustomerName  string     `json:"customer_name,omitempty"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	BarberID      uuid.UUID  `json:"barber_id" binding:"required"`
	ServiceName   string     `json:"service_name" binding:"required"`
	PriceCents    *int64     `json:"price_cents" binding:"required,gte=0"`
	ScheduledAt   time.Time  `json:"scheduled_at" binding:"required"`
	Status        string     `json:"status,omitempty"`
}

func (r CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		CustomerID:    r.CustomerID,
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		BarberID:      r.BarberID,
		ServiceName:   strings.TrimSpace(r.ServiceName),
		PriceCents:    *r.PriceCents,
		ScheduledAt:   r.ScheduledAt,
		InitialStatus: strings.ToUpper(strings.TrimSpace(r.Status)),
	}
}
