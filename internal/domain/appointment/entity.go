package appointment

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInitialStatus    = errors.New("initial status must be PENDING or QUEUE")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrEmptyService            = errors.New("service name cannot be empty")
)

// Appointment is the booking state machine. PENDING and QUEUE are the open
// states; COMPLETED and CANCELLED are terminal. Completion is the only
// transition with financial side effects, handled by the use case layer.
type Appointment struct {
	id          uuid.UUID
	customerID  uuid.UUID
	barberID    uuid.UUID
	serviceName string
	price       Money
	scheduledAt time.Time
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

func NewAppointment(
	customerID, barberID uuid.UUID,
	serviceName string,
	price Money,
	scheduledAt time.Time,
	initial Status,
) (*Appointment, error) {
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return nil, ErrEmptyService
	}
	if !initial.IsInitial() {
		return nil, ErrInvalidInitialStatus
	}
	return &Appointment{
		id:          uuid.New(),
		customerID:  customerID,
		barberID:    barberID,
		serviceName: serviceName,
		price:       price,
		scheduledAt: scheduledAt,
		status:      initial,
	}, nil
}

func ReconstructAppointment(
	id, customerID, barberID uuid.UUID,
	serviceName string,
	price Money,
	scheduledAt time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:          id,
		customerID:  customerID,
		barberID:    barberID,
		serviceName: serviceName,
		price:       price,
		scheduledAt: scheduledAt,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Complete moves an open appointment to COMPLETED. Calling it on a terminal
// appointment fails, which makes a second settlement attempt visible to the
// caller instead of silently double-settling.
func (a *Appointment) Complete() error {
	if a.status.IsTerminal() {
		return ErrInvalidStatusTransition
	}
	a.status = StatusCompleted
	return nil
}

// Cancel moves an open appointment to CANCELLED. No financial or customer
// side effects; the customer+time slot becomes bookable again.
func (a *Appointment) Cancel() error {
	if a.status.IsTerminal() {
		return ErrInvalidStatusTransition
	}
	a.status = StatusCancelled
	return nil
}

func (a *Appointment) IsOpen() bool {
	return !a.status.IsTerminal()
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) CustomerID() uuid.UUID  { return a.customerID }
func (a *Appointment) BarberID() uuid.UUID    { return a.barberID }
func (a *Appointment) ServiceName() string    { return a.serviceName }
func (a *Appointment) Price() Money           { return a.price }
func (a *Appointment) ScheduledAt() time.Time { return a.scheduledAt }
func (a *Appointment) Status() Status         { return a.status }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time   { return a.updatedAt }
