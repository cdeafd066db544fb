package response

import (
	"time"

	"barberpro/internal/usecase/commands"

	"github.com/google/uuid"
)

type AppointmentCreatedResponse struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	CustomerID    uuid.UUID `json:"customer_id"`
}

func FromCreateAppointmentResult(r *commands.CreateAppointmentResult) *AppointmentCreatedResponse {
	return &AppointmentCreatedResponse{
		AppointmentID: r.AppointmentID,
		CustomerID:    r.CustomerID,
	}
}

type SettlementResponse struct {
	RecordID    uuid.UUID `json:"record_id"`
	BarberID    uuid.UUID `json:"barber_id"`
	AmountCents int64     `json:"amount_cents"`
	HouseCents  int64     `json:"house_cents"`
	BarberCents int64     `json:"barber_cents"`
	SettledAt   time.Time `json:"settled_at"`
	Description string    `json:"description"`
}

func FromSettlementResult(r *commands.SettlementResult) *SettlementResponse {
	return &SettlementResponse{
		RecordID:    r.RecordID,
		BarberID:    r.BarberID,
		AmountCents: r.AmountCents,
		HouseCents:  r.HouseCents,
		BarberCents: r.BarberCents,
		SettledAt:   r.SettledAt,
		Description: r.Description,
	}
}
