package bootstrap

import (
	"pet-order/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	PetStoreModule,
	LedgerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
