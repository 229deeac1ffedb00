//go:build integration

package readstore_test

import (
	"context"
	"testing"
	"time"

	"pet-order/internal/domain/transaction"
	"pet-order/internal/infra/readstore"
	"pet-order/internal/infra/repository"
	"pet-order/internal/pkg/clock"
	"pet-order/internal/testutil"

	"github.com/google/uuid"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func TestTransactionReadStore_Find(t *testing.T) {
	pool := testutil.NewTestPool(t)
	ctx := context.Background()

	testutil.ApplyMigrations(t, ctx, pool)
	testutil.TruncateTransactions(t, ctx, pool)

	clk := clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	repo := repository.NewTransactionRepository(pool, clk)
	store := readstore.NewTransactionReadStore(pool)

	mustRecord := func(purchaser, petType string, at int) uuid.UUID {
		t.Helper()
		id, err := repo.Record(ctx, purchaser, petType, at)
		if err != nil {
			t.Fatalf("seed record: %v", err)
		}
		clk.Advance(time.Second)
		return id
	}

	anaPoodle := mustRecord("Ana", "Poodle", 1)
	mustRecord("Ben", "Siamese", 2)
	anaSiamese := mustRecord("Ana", "Siamese", 2)

	t.Run("no filters returns everything in insertion order", func(t *testing.T) {
		views, err := store.Find(ctx, transaction.Filter{})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(views) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(views))
		}
		if views[0].PurchaseID != anaPoodle || views[2].PurchaseID != anaSiamese {
			t.Fatal("expected rows ordered by recording time")
		}
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		views, err := store.Find(ctx, transaction.Filter{
			Store:     intPtr(2),
			Purchaser: strPtr("Ana"),
		})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("expected 1 row, got %d", len(views))
		}
		if views[0].PurchaseID != anaSiamese {
			t.Fatalf("expected Ana's Siamese sale, got %v", views[0].PurchaseID)
		}
	})

	t.Run("id filter", func(t *testing.T) {
		views, err := store.Find(ctx, transaction.Filter{ID: &anaPoodle})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(views) != 1 || views[0].Purchaser != "Ana" || views[0].PetType != "Poodle" {
			t.Fatalf("unexpected result: %+v", views)
		}
	})

	t.Run("no match yields an empty non-nil slice", func(t *testing.T) {
		views, err := store.Find(ctx, transaction.Filter{Purchaser: strPtr("Nobody")})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if views == nil {
			t.Fatal("expected an empty slice, got nil")
		}
		if len(views) != 0 {
			t.Fatalf("expected no rows, got %d", len(views))
		}
	})
}
