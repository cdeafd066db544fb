package components

import (
	"barberpro/internal/infra/db"
	"barberpro/internal/infra/readstore"
	"barberpro/internal/infra/uow"
	"barberpro/internal/usecase/queries"
	"barberpro/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewShopReadStore,
			fx.As(new(queries.ShopReadStore)),
		),
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewCustomerReadStore,
			fx.As(new(queries.CustomerReadStore)),
		),
		fx.Annotate(
			readstore.NewFinanceReadStore,
			fx.As(new(queries.FinanceReadStore)),
		),
		fx.Annotate(
			readstore.NewReactivationReadStore,
			fx.As(new(worker.CustomerSource)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
