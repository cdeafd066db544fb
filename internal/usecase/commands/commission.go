package commands

import (
	"context"

	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/pkg/errs"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommissionCommands interface {
	SetCommission(ctx context.Context, actorID, barberID uuid.UUID, rate float64) error
}

type commissionUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCommissionUseCase(uow shared.UnitOfWork) CommissionCommands {
	return &commissionUseCaseImpl{uow: uow}
}

// SetCommission changes a professional's revenue split. Only the OWNER of the
// barber's shop may do this; the new rate applies to future settlements only,
// existing financial records stay untouched.
func (c *commissionUseCaseImpl) SetCommission(ctx context.Context, actorID, barberID uuid.UUID, rate float64) error {
	newRate, err := user.NewRate(rate)
	if err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	reads := c.uow.CommandReads()

	barber, err := reads.UserByID(ctx, barberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBarberNotFound
		}
		return err
	}

	actor, err := reads.UserByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if !isOwnerOf(actor, barber) {
		return ErrNotAuthorized
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().SetCommission(ctx, tx.DB(), barberID, newRate)
	})
}
