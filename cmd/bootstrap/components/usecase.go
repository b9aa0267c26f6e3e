package components

import (
	"log/slog"

	"lending-ledger/internal/pkg/clock"
	"lending-ledger/internal/pkg/config"
	"lending-ledger/internal/usecase"
	"lending-ledger/internal/usecase/commands"
	"lending-ledger/internal/usecase/queries"
	"lending-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCatalogCommands,
		func(uow shared.UnitOfWork, dir shared.Directory, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.LendingCommands {
			return commands.NewLendingCommands(uow, dir, clk, cfg.Lending, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCatalogQueries,
		queries.NewLendingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
