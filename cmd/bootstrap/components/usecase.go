package components

import (
	"barberpro/internal/pkg/clock"
	"barberpro/internal/usecase"
	"barberpro/internal/usecase/commands"
	"barberpro/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUseCase,
		commands.NewShopUseCase,
		commands.NewAppointmentUseCase,
		commands.NewCustomerUseCase,
		commands.NewCommissionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSyncQueries,
		queries.NewAppointmentQueries,
		queries.NewCustomerQueries,
		queries.NewFinanceQueries,
		queries.NewPerformanceQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
