//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pet-order/internal/infra/memstore"
	"pet-order/internal/pkg/clock"
	"pet-order/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func seedLedger(t *testing.T) (*memstore.TransactionStore, map[string]uuid.UUID) {
	t.Helper()
	store := memstore.NewTransactionStore(clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))

	ids := map[string]uuid.UUID{}
	ctx := context.Background()

	id, err := store.Record(ctx, "Ana", "Poodle", 1)
	require.NoError(t, err)
	ids["ana-poodle-1"] = id

	id, err = store.Record(ctx, "Ben", "Siamese", 2)
	require.NoError(t, err)
	ids["ben-siamese-2"] = id

	id, err = store.Record(ctx, "Ana", "Siamese", 2)
	require.NoError(t, err)
	ids["ana-siamese-2"] = id

	return store, ids
}

func TestTransactionQueriesList(t *testing.T) {
	ctx := context.Background()

	t.Run("no filters returns everything in insertion order", func(t *testing.T) {
		store, _ := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		views, err := q.List(ctx, queries.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "Ana", views[0].Purchaser)
		assert.Equal(t, "Ben", views[1].Purchaser)
		assert.Equal(t, "Ana", views[2].Purchaser)
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		store, _ := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		views, err := q.List(ctx, queries.TransactionFilter{
			Store:     intPtr(2),
			Purchaser: strPtr("Ana"),
		})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Siamese", views[0].PetType)
		assert.Equal(t, 2, views[0].Store)
	})

	t.Run("store filter alone", func(t *testing.T) {
		store, _ := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		views, err := q.List(ctx, queries.TransactionFilter{Store: intPtr(2)})
		require.NoError(t, err)
		require.Len(t, views, 2)
		for _, v := range views {
			assert.Equal(t, 2, v.Store)
		}
	})

	t.Run("purchase id filter matches exactly one record", func(t *testing.T) {
		store, ids := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		idStr := ids["ben-siamese-2"].String()
		views, err := q.List(ctx, queries.TransactionFilter{PurchaseID: &idStr})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "Ben", views[0].Purchaser)
	})

	t.Run("unparsable purchase id yields an empty result, not an error", func(t *testing.T) {
		store, _ := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		bogus := "not-a-uuid"
		views, err := q.List(ctx, queries.TransactionFilter{PurchaseID: &bogus})
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views, "must encode as [] rather than null")
	})

	t.Run("well-formed but unknown purchase id matches nothing", func(t *testing.T) {
		store, _ := seedLedger(t)
		q := queries.NewTransactionQueries(store)

		unknown := uuid.New().String()
		views, err := q.List(ctx, queries.TransactionFilter{PurchaseID: &unknown})
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}
