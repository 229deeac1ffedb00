package commands

import (
	"context"

	"pet-order/internal/infra/petstore"

	"github.com/google/uuid"
)

// Inventory is one pet-store backend as seen by the purchase flow. All
// methods follow the absorb-errors contract of the pet store client: an
// unreachable or erroring inventory simply has no data.
type Inventory interface {
	FindTypeID(ctx context.Context, typeName string) (string, bool)
	ListPets(ctx context.Context, petTypeID string) []petstore.Pet
	GetPet(ctx context.Context, petTypeID, petName string) (*petstore.Pet, bool)
	DeletePet(ctx context.Context, petTypeID, petName string) bool
}

// TransactionRepository appends completed sales to the ledger.
type TransactionRepository interface {
	Record(ctx context.Context, purchaser, petType string, store int) (uuid.UUID, error)
}
