package queries

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindTeamByShop(ctx context.Context, shopID uuid.UUID) ([]*UserView, error)
}

type ShopReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShopView, error)
}

type SyncQueries interface {
	Workspace(ctx context.Context, userID uuid.UUID) (*WorkspaceView, error)
}

type syncQueriesImpl struct {
	users        UserReadStore
	shops        ShopReadStore
	appointments AppointmentReadStore
	customers    CustomerReadStore
	finances     FinanceReadStore
}

func NewSyncQueries(
	users UserReadStore,
	shops ShopReadStore,
	appointments AppointmentReadStore,
	customers CustomerReadStore,
	finances FinanceReadStore,
) SyncQueries {
	return &syncQueriesImpl{
		users:        users,
		shops:        shops,
		appointments: appointments,
		customers:    customers,
		finances:     finances,
	}
}

// Workspace assembles the boot payload. An unaffiliated user gets only their
// own profile; everything else is scoped to the shop's team.
func (q *syncQueriesImpl) Workspace(ctx context.Context, userID uuid.UUID) (*WorkspaceView, error) {
	caller, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	view := &WorkspaceView{
		User:         caller,
		Team:         []*UserView{caller},
		Appointments: []*AppointmentView{},
		Customers:    []*CustomerView{},
		Finances:     []*FinancialRecordView{},
	}
	if caller.ShopID == nil {
		return view, nil
	}
	shopID := *caller.ShopID

	if view.Shop, err = q.shops.FindByID(ctx, shopID); err != nil {
		return nil, err
	}
	if view.Team, err = q.users.FindTeamByShop(ctx, shopID); err != nil {
		return nil, err
	}
	if view.Appointments, err = q.appointments.FindByShop(ctx, shopID); err != nil {
		return nil, err
	}
	if view.Customers, err = q.customers.FindByShop(ctx, shopID); err != nil {
		return nil, err
	}
	if view.Finances, err = q.finances.FindByShop(ctx, shopID); err != nil {
		return nil, err
	}
	return view, nil
}
