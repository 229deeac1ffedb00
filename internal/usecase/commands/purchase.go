package commands

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"pet-order/internal/domain/purchase"
	"pet-order/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNoPetAvailable    = errs.New("no pet of this type is available")
	ErrLedgerWriteFailed = errs.New("ledger write failed")
)

type PurchaseResult struct {
	Purchaser  string
	PetType    string
	Store      int
	PetName    string
	PurchaseID uuid.UUID
}

type PurchaseCommands interface {
	Purchase(ctx context.Context, criteria purchase.Criteria) (*PurchaseResult, error)
}

type purchaseCommandsImpl struct {
	inventories map[int]Inventory
	ledger      TransactionRepository
}

func NewPurchaseCommands(inventories map[int]Inventory, ledger TransactionRepository) PurchaseCommands {
	return &purchaseCommandsImpl{
		inventories: inventories,
		ledger:      ledger,
	}
}

// Purchase runs locate → claim → record. There is no transaction spanning the
// two services: the inventory's atomic delete is the sole arbitration point.
// A failed claim means another purchaser got there first (or the inventory
// went away); the attempt fails outright rather than silently substituting a
// different pet.
func (u *purchaseCommandsImpl) Purchase(ctx context.Context, criteria purchase.Criteria) (*PurchaseResult, error) {
	pet, ok := u.locate(ctx, criteria)
	if !ok {
		return nil, ErrNoPetAvailable
	}

	if !u.inventories[pet.Store].DeletePet(ctx, pet.PetTypeID, pet.Name) {
		return nil, ErrNoPetAvailable
	}

	purchaseID, err := u.ledger.Record(ctx, criteria.Purchaser(), pet.PetTypeName, pet.Store)
	if err != nil {
		// The pet is already gone from the inventory with no recorded sale.
		// No compensation here; operational tooling reconciles this window.
		slog.Error("ledger write failed after successful claim",
			"purchaser", criteria.Purchaser(),
			"pet_type", pet.PetTypeName,
			"store", pet.Store,
			"pet_name", pet.Name,
			"error", err.Error())
		return nil, errs.Mark(err, ErrLedgerWriteFailed)
	}

	return &PurchaseResult{
		Purchaser:  criteria.Purchaser(),
		PetType:    pet.PetTypeName,
		Store:      pet.Store,
		PetName:    pet.Name,
		PurchaseID: purchaseID,
	}, nil
}

// locate probes the candidate inventories in order and stops at the first one
// that yields a pet. Keeping a single owning inventory per candidate is what
// lets the claim step target exactly one backend.
func (u *purchaseCommandsImpl) locate(ctx context.Context, criteria purchase.Criteria) (purchase.FoundPet, bool) {
	for _, store := range criteria.StoresToSearch() {
		inv, ok := u.inventories[store]
		if !ok {
			continue
		}

		petTypeID, ok := inv.FindTypeID(ctx, criteria.PetType())
		if !ok {
			continue
		}

		if petName, pinned := criteria.PetName(); pinned {
			pet, found := inv.GetPet(ctx, petTypeID, petName)
			if !found {
				continue
			}
			return purchase.FoundPet{
				Store:       store,
				PetTypeID:   petTypeID,
				PetTypeName: criteria.PetType(),
				Name:        pet.Name,
			}, true
		}

		pets := inv.ListPets(ctx, petTypeID)
		if len(pets) == 0 {
			continue
		}
		pet := pets[rand.IntN(len(pets))]
		return purchase.FoundPet{
			Store:       store,
			PetTypeID:   petTypeID,
			PetTypeName: criteria.PetType(),
			Name:        pet.Name,
		}, true
	}

	return purchase.FoundPet{}, false
}
