package memstore

import (
	"context"
	"sync"

	"pet-order/internal/domain/transaction"
	"pet-order/internal/pkg/clock"
	"pet-order/internal/usecase/queries"

	"github.com/google/uuid"
)

// TransactionStore is the in-process ledger variant. It serves both the write
// and the read side, keeping records in insertion order. State is lost on
// shutdown, so it is only suitable for local runs and tests.
type TransactionStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	records []transaction.Transaction
}

func NewTransactionStore(clock clock.Clock) *TransactionStore {
	return &TransactionStore{clock: clock}
}

func (s *TransactionStore) Record(_ context.Context, purchaser, petType string, store int) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := transaction.Transaction{
		ID:        uuid.New(),
		Purchaser: purchaser,
		PetType:   petType,
		Store:     store,
		CreatedAt: s.clock.Now(),
	}
	s.records = append(s.records, t)

	return t.ID, nil
}

func (s *TransactionStore) Find(_ context.Context, filter transaction.Filter) ([]*queries.TransactionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	views := []*queries.TransactionView{}
	for _, t := range s.records {
		if !filter.Matches(t) {
			continue
		}
		views = append(views, &queries.TransactionView{
			Purchaser:  t.Purchaser,
			PetType:    t.PetType,
			Store:      t.Store,
			PurchaseID: t.ID,
		})
	}

	return views, nil
}
