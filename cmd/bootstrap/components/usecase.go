package components

import (
	"pet-order/internal/pkg/clock"
	"pet-order/internal/usecase/commands"
	"pet-order/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewPurchaseCommands,
		queries.NewTransactionQueries,
	),
)
