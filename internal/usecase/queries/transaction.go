package queries

import (
	"context"

	"pet-order/internal/domain/transaction"

	"github.com/google/uuid"
)

// TransactionView is the read model for one ledger record.
type TransactionView struct {
	Purchaser  string
	PetType    string
	Store      int
	PurchaseID uuid.UUID
}

// TransactionFilter carries the caller's raw filters. PurchaseID stays a
// string here: an unparsable identifier can never match a record, so it turns
// into an empty result rather than an error.
type TransactionFilter struct {
	Store      *int
	PetType    *string
	Purchaser  *string
	PurchaseID *string
}

type TransactionReadStore interface {
	Find(ctx context.Context, filter transaction.Filter) ([]*TransactionView, error)
}

type TransactionQueries interface {
	List(ctx context.Context, filter TransactionFilter) ([]*TransactionView, error)
}

type transactionQueriesImpl struct {
	store TransactionReadStore
}

func NewTransactionQueries(store TransactionReadStore) TransactionQueries {
	return &transactionQueriesImpl{store: store}
}

func (q *transactionQueriesImpl) List(ctx context.Context, filter TransactionFilter) ([]*TransactionView, error) {
	domainFilter := transaction.Filter{
		Store:     filter.Store,
		PetType:   filter.PetType,
		Purchaser: filter.Purchaser,
	}

	if filter.PurchaseID != nil {
		id, err := uuid.Parse(*filter.PurchaseID)
		if err != nil {
			return []*TransactionView{}, nil
		}
		domainFilter.ID = &id
	}

	return q.store.Find(ctx, domainFilter)
}
