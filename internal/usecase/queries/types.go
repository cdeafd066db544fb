package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type UserView struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ShopID     *uuid.UUID `json:"shop_id,omitempty"`
	Commission float64    `json:"commission"`
	IsActive   bool       `json:"is_active"`
}

type ShopView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Whatsapp   string    `json:"whatsapp"`
	OwnerID    uuid.UUID `json:"owner_id"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

type CustomerView struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Phone               string    `json:"phone"`
	ResponsibleBarberID uuid.UUID `json:"responsible_barber_id"`
	TotalSpentCents     int64     `json:"total_spent_cents"`
	LastVisit           time.Time `json:"last_visit"`
	Inactive            bool      `json:"inactive"`
}

type AppointmentView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	BarberID     uuid.UUID `json:"barber_id"`
	BarberName   string    `json:"barber_name"`
	ServiceName  string    `json:"service_name"`
	PriceCents   int64     `json:"price_cents"`
	ScheduledAt  time.Time `json:"scheduled_at"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type FinancialRecordView struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barber_id"`
	AmountCents int64     `json:"amount_cents"`
	HouseCents  int64     `json:"house_cents"`
	BarberCents int64     `json:"barber_cents"`
	SettledAt   time.Time `json:"settled_at"`
	Description string    `json:"description"`
}

// WorkspaceView is the one-shot sync payload the client boots from: the
// caller plus everything scoped to their shop.
type WorkspaceView struct {
	User         *UserView              `json:"user"`
	Shop         *ShopView              `json:"barbershop"`
	Team         []*UserView            `json:"team"`
	Appointments []*AppointmentView     `json:"appointments"`
	Customers    []*CustomerView        `json:"customers"`
	Finances     []*FinancialRecordView `json:"finances"`
}

type BarberFinanceView struct {
	BarberID    uuid.UUID `json:"barber_id"`
	BarberName  string    `json:"barber_name"`
	AmountCents int64     `json:"amount_cents"`
	BarberCents int64     `json:"barber_cents"`
	HouseCents  int64     `json:"house_cents"`
}

type FinanceSummaryView struct {
	TotalCents   int64                `json:"total_cents"`
	HouseCents   int64                `json:"house_cents"`
	BarbersCents int64                `json:"barbers_cents"`
	PerBarber    []*BarberFinanceView `json:"per_barber"`
}

type PerformanceRowView struct {
	BarberID      uuid.UUID `json:"barber_id"`
	BarberName    string    `json:"barber_name"`
	RevenueCents  int64     `json:"revenue_cents"`
	CompletedCuts int64     `json:"completed_cuts"`
}
