package repository

import (
	"context"

	"pet-order/internal/infra"
	"pet-order/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository is the write side of the ledger. Inserts only; the
// schema carries no UPDATE or DELETE path for transactions.
type TransactionRepository struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewTransactionRepository(pool *pgxpool.Pool, clock clock.Clock) *TransactionRepository {
	return &TransactionRepository{pool: pool, clock: clock}
}

func (r *TransactionRepository) Record(ctx context.Context, purchaser, petType string, store int) (uuid.UUID, error) {
	const stmt = `
INSERT INTO transactions (id, purchaser, pet_type, store, created_at)
VALUES ($1, $2, $3, $4, $5)`

	id := uuid.New()
	if _, err := r.pool.Exec(ctx, stmt, id, purchaser, petType, store, r.clock.Now()); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to record transaction", err)
	}

	return id, nil
}
