package readstore

import (
	"context"
	"fmt"
	"strings"

	"pet-order/internal/domain/transaction"
	"pet-order/internal/infra"
	"pet-order/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionReadStore struct {
	pool *pgxpool.Pool
}

func NewTransactionReadStore(pool *pgxpool.Pool) *TransactionReadStore {
	return &TransactionReadStore{pool: pool}
}

// Find returns every transaction matching all supplied filters, in insertion
// order.
func (r *TransactionReadStore) Find(ctx context.Context, filter transaction.Filter) ([]*queries.TransactionView, error) {
	query := `SELECT id, purchaser, pet_type, store FROM transactions`

	var conds []string
	var args []any
	appendCond := func(column string, value any) {
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.ID != nil {
		appendCond("id", *filter.ID)
	}
	if filter.Purchaser != nil {
		appendCond("purchaser", *filter.Purchaser)
	}
	if filter.PetType != nil {
		appendCond("pet_type", *filter.PetType)
	}
	if filter.Store != nil {
		appendCond("store", *filter.Store)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query transactions", err)
	}
	defer rows.Close()

	views := []*queries.TransactionView{}
	for rows.Next() {
		var v queries.TransactionView
		if err := rows.Scan(&v.PurchaseID, &v.Purchaser, &v.PetType, &v.Store); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read transaction rows", err)
	}

	return views, nil
}
