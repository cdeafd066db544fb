package commands

import (
	"context"

	"barberpro/internal/domain/customer"
	"barberpro/internal/infra"
	"barberpro/internal/pkg/clock"
	"barberpro/internal/pkg/errs"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Name  string
	Phone string
}

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, actorID uuid.UUID, req CreateCustomerRequest) (uuid.UUID, error)
}

type customerUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerUseCase(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerUseCaseImpl{uow: uow, clock: clk}
}

func (c *customerUseCaseImpl) CreateCustomer(ctx context.Context, actorID uuid.UUID, req CreateCustomerRequest) (uuid.UUID, error) {
	actor, err := c.uow.CommandReads().UserByID(ctx, actorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrUserNotFound
		}
		return uuid.Nil, err
	}
	if actor.ShopID == nil {
		return uuid.Nil, ErrNotAffiliated
	}

	entity, err := customer.NewCustomer(req.Name, req.Phone, actorID, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Customers().Create(ctx, tx.DB(), entity)
		if cerr != nil {
			return cerr
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
