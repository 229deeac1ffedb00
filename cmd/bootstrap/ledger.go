package bootstrap

import (
	"context"
	"log/slog"

	"pet-order/internal/infra/db"
	"pet-order/internal/infra/memstore"
	"pet-order/internal/infra/readstore"
	"pet-order/internal/infra/repository"
	"pet-order/internal/pkg/clock"
	"pet-order/internal/pkg/config"
	"pet-order/internal/usecase/commands"
	"pet-order/internal/usecase/queries"
	"pet-order/migrations"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewLedgerStores,
	),
)

// NewLedgerStores wires the transaction ledger's write and read side from one
// backend, chosen by LEDGER_DRIVER. The postgres pool and schema migrations
// are tied to the fx lifecycle; the memory variant needs neither.
func NewLedgerStores(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (commands.TransactionRepository, queries.TransactionReadStore, error) {
	if cfg.Ledger.Driver == "memory" {
		slog.Warn("using in-memory transaction ledger: records are lost on shutdown")
		store := memstore.NewTransactionStore(clk)
		return store, store, nil
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return migrations.Apply(ctx, pool)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return repository.NewTransactionRepository(pool, clk), readstore.NewTransactionReadStore(pool), nil
}
