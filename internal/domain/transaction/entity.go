package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one completed sale. Records are append-only: nothing in this
// service updates or deletes them once written.
type Transaction struct {
	ID        uuid.UUID
	Purchaser string
	PetType   string
	Store     int
	CreatedAt time.Time
}

// Filter narrows a ledger query. Non-nil fields are combined with AND.
type Filter struct {
	Store     *int
	PetType   *string
	Purchaser *string
	ID        *uuid.UUID
}

func (f Filter) Matches(t Transaction) bool {
	if f.Store != nil && *f.Store != t.Store {
		return false
	}
	if f.PetType != nil && *f.PetType != t.PetType {
		return false
	}
	if f.Purchaser != nil && *f.Purchaser != t.Purchaser {
		return false
	}
	if f.ID != nil && *f.ID != t.ID {
		return false
	}
	return true
}
