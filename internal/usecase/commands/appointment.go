package commands

import (
	"context"
	"encoding/json"
	"time"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/domain/customer"
	"barberpro/internal/domain/ledger"
	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/pkg/clock"
	"barberpro/internal/pkg/errs"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput            = errs.New("invalid input")
	ErrNotAffiliated           = errs.New("user is not affiliated with a shop")
	ErrNotAuthorized           = errs.New("not authorized for this operation")
	ErrBarberNotFound          = errs.New("barber not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrScheduleConflict        = errs.New("customer already has a booking at this time")
	ErrInvalidStatusTransition = errs.New("appointment is already closed")
)

type CreateAppointmentRequest struct {
	CustomerID    *uuid.UUID
	CustomerName  string
	CustomerPhone string
	BarberID      uuid.UUID
	ServiceName   string
	PriceCents    int64
	ScheduledAt   time.Time
	InitialStatus string
}

type CreateAppointmentResult struct {
	AppointmentID uuid.UUID
	CustomerID    uuid.UUID
}

// SettlementResult is the write-side view of a completed appointment's
// financial record.
type SettlementResult struct {
	RecordID    uuid.UUID
	BarberID    uuid.UUID
	AmountCents int64
	HouseCents  int64
	BarberCents int64
	SettledAt   time.Time
	Description string
}

type AppointmentCommands interface {
	CreateAppointment(ctx context.Context, actorID uuid.UUID, req CreateAppointmentRequest) (*CreateAppointmentResult, error)
	CompleteAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) (*SettlementResult, error)
	CancelAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) error
}

type appointmentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAppointmentUseCase(uow shared.UnitOfWork, clk clock.Clock) AppointmentCommands {
	return &appointmentUseCaseImpl{uow: uow, clock: clk}
}

func (u *appointmentUseCaseImpl) CreateAppointment(ctx context.Context, actorID uuid.UUID, req CreateAppointmentRequest) (*CreateAppointmentResult, error) {
	price, err := appointment.NewMoney(req.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	initial := appointment.Status(req.InitialStatus)
	if req.InitialStatus == "" {
		initial = appointment.StatusPending
	}
	if !initial.IsInitial() {
		return nil, errs.Mark(appointment.ErrInvalidInitialStatus, ErrInvalidInput)
	}

	actor, err := u.uow.CommandReads().UserByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if actor.ShopID == nil {
		return nil, ErrNotAffiliated
	}
	if err := u.authorizeForBarber(ctx, actor, req.BarberID); err != nil {
		return nil, err
	}

	var result CreateAppointmentResult
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, cerr := u.resolveCustomer(ctx, tx, *actor.ShopID, req)
		if cerr != nil {
			return cerr
		}

		entity, cerr := appointment.NewAppointment(
			customerID, req.BarberID, req.ServiceName, price, req.ScheduledAt, initial,
		)
		if cerr != nil {
			return errs.Mark(cerr, ErrInvalidInput)
		}

		id, cerr := tx.Appointments().Create(ctx, tx.DB(), entity)
		if cerr != nil {
			// The partial unique index on (customer, time) makes
			// check-and-insert atomic; a duplicate key here is a
			// booking collision, never a data bug.
			if infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrScheduleConflict
			}
			return cerr
		}
		result = CreateAppointmentResult{AppointmentID: id, CustomerID: customerID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *appointmentUseCaseImpl) CompleteAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) (*SettlementResult, error) {
	var result SettlementResult

	// Settlement is a single transaction: status flip, financial record,
	// customer visit and the notification job commit or roll back together.
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, barber, cerr := u.loadForTransition(ctx, tx, actorID, appointmentID)
		if cerr != nil {
			return cerr
		}

		flipped, cerr := tx.Appointments().TransitionStatus(ctx, tx.DB(), appointmentID, appointment.StatusCompleted)
		if cerr != nil {
			return cerr
		}
		if !flipped {
			return ErrInvalidStatusTransition
		}

		rate, cerr := user.NewRate(barber.Commission)
		if cerr != nil {
			return errs.Mark(cerr, ErrInvalidInput)
		}
		gross, cerr := appointment.NewMoney(snap.PriceCents)
		if cerr != nil {
			return errs.Mark(cerr, ErrInvalidInput)
		}

		now := u.clock.Now()
		record, cerr := ledger.NewFinancialRecord(snap.BarberID, gross, rate, now, snap.ServiceName)
		if cerr != nil {
			return errs.Mark(cerr, ErrInvalidInput)
		}

		recordID, cerr := tx.Finances().Create(ctx, tx.DB(), record)
		if cerr != nil {
			return cerr
		}

		if cerr = tx.Customers().RecordVisit(ctx, tx.DB(), snap.CustomerID, snap.PriceCents, now); cerr != nil {
			return cerr
		}

		if cerr = u.enqueueSettledJob(ctx, tx, appointmentID, recordID, now); cerr != nil {
			return cerr
		}

		result = SettlementResult{
			RecordID:    recordID,
			BarberID:    record.BarberID(),
			AmountCents: record.Amount().Cents(),
			HouseCents:  record.HouseShare().Cents(),
			BarberCents: record.BarberShare().Cents(),
			SettledAt:   record.SettledAt(),
			Description: record.Description(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u *appointmentUseCaseImpl) CancelAppointment(ctx context.Context, actorID, appointmentID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, _, cerr := u.loadForTransition(ctx, tx, actorID, appointmentID); cerr != nil {
			return cerr
		}

		flipped, cerr := tx.Appointments().TransitionStatus(ctx, tx.DB(), appointmentID, appointment.StatusCancelled)
		if cerr != nil {
			return cerr
		}
		if !flipped {
			return ErrInvalidStatusTransition
		}
		return nil
	})
}

// loadForTransition fetches the appointment and its barber, and checks that
// the actor may operate on it: barbers act on their own appointments, owners
// on any appointment of their shop.
func (u *appointmentUseCaseImpl) loadForTransition(
	ctx context.Context,
	tx shared.Tx,
	actorID, appointmentID uuid.UUID,
) (*shared.AppointmentSnapshot, *shared.UserSnapshot, error) {
	snap, err := tx.Reads().AppointmentByID(ctx, appointmentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrAppointmentNotFound
		}
		return nil, nil, err
	}

	barber, err := tx.Reads().UserByID(ctx, snap.BarberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrBarberNotFound
		}
		return nil, nil, err
	}

	if actorID != snap.BarberID {
		actor, aerr := tx.Reads().UserByID(ctx, actorID)
		if aerr != nil {
			if infra.IsKind(aerr, infra.KindNotFound) {
				return nil, nil, ErrUserNotFound
			}
			return nil, nil, aerr
		}
		if !isOwnerOf(actor, barber) {
			return nil, nil, ErrNotAuthorized
		}
	}

	return snap, barber, nil
}

func (u *appointmentUseCaseImpl) authorizeForBarber(ctx context.Context, actor *shared.UserSnapshot, barberID uuid.UUID) error {
	if actor.ID == barberID {
		return nil
	}
	barber, err := u.uow.CommandReads().UserByID(ctx, barberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBarberNotFound
		}
		return err
	}
	if !isOwnerOf(actor, barber) {
		return ErrNotAuthorized
	}
	return nil
}

func isOwnerOf(actor, barber *shared.UserSnapshot) bool {
	return actor.Role == user.RoleOwner.String() &&
		actor.ShopID != nil && barber.ShopID != nil &&
		*actor.ShopID == *barber.ShopID
}

// resolveCustomer finds an existing customer by case-insensitive name within
// the shop or creates a new one owned by the servicing barber. Name-based
// matching mirrors the walk-in desk flow; the phone number is stored for a
// future stronger key.
func (u *appointmentUseCaseImpl) resolveCustomer(
	ctx context.Context,
	tx shared.Tx,
	shopID uuid.UUID,
	req CreateAppointmentRequest,
) (uuid.UUID, error) {
	if req.CustomerID != nil {
		snap, err := tx.Reads().CustomerByID(ctx, shopID, *req.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrCustomerNotFound
			}
			return uuid.Nil, err
		}
		return snap.ID, nil
	}

	existing, err := tx.Reads().CustomerByName(ctx, shopID, req.CustomerName)
	if err == nil {
		return existing.ID, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, err
	}

	entity, err := customer.NewCustomer(req.CustomerName, req.CustomerPhone, req.BarberID, u.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}
	return tx.Customers().Create(ctx, tx.DB(), entity)
}

func (u *appointmentUseCaseImpl) enqueueSettledJob(ctx context.Context, tx shared.Tx, appointmentID, recordID uuid.UUID, now time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"appointment_id":      appointmentID,
		"financial_record_id": recordID,
		"type":                "appointment_settled",
	})
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), "whatsapp", "appointment_settled", payload, now)
}
