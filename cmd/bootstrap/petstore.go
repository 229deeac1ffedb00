package bootstrap

import (
	"pet-order/internal/infra/petstore"
	"pet-order/internal/pkg/config"
	"pet-order/internal/usecase/commands"

	"go.uber.org/fx"
)

var PetStoreModule = fx.Module("petstore",
	fx.Provide(
		NewInventories,
	),
)

func NewInventories(cfg config.Config) map[int]commands.Inventory {
	clients := petstore.NewClients(cfg.PetStores)

	inventories := make(map[int]commands.Inventory, len(clients))
	for _, client := range clients {
		inventories[client.Store()] = client
	}
	return inventories
}
