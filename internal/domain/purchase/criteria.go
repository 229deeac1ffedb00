package purchase

import "errors"

var (
	ErrPurchaserRequired    = errors.New("purchaser is required")
	ErrPetTypeRequired      = errors.New("pet type is required")
	ErrPetNameRequiresStore = errors.New("pet name can only be provided if store is provided")
	ErrUnknownStore         = errors.New("store must be 1 or 2")
)

// KnownStores is the fixed set of inventory identifiers, in search order.
func KnownStores() []int {
	return []int{1, 2}
}

// Criteria describes what the purchaser is asking for. A pet name may only be
// pinned together with a store: the same name can exist in both inventories and
// arbitration between them is undefined.
type Criteria struct {
	purchaser string
	petType   string
	store     *int
	petName   *string
}

func NewCriteria(purchaser, petType string, store *int, petName *string) (Criteria, error) {
	if purchaser == "" {
		return Criteria{}, ErrPurchaserRequired
	}
	if petType == "" {
		return Criteria{}, ErrPetTypeRequired
	}
	if store != nil && !isKnownStore(*store) {
		return Criteria{}, ErrUnknownStore
	}
	if petName != nil && *petName != "" && store == nil {
		return Criteria{}, ErrPetNameRequiresStore
	}

	c := Criteria{
		purchaser: purchaser,
		petType:   petType,
		store:     store,
	}
	if petName != nil && *petName != "" {
		name := *petName
		c.petName = &name
	}
	return c, nil
}

func (c Criteria) Purchaser() string {
	return c.purchaser
}

func (c Criteria) PetType() string {
	return c.petType
}

func (c Criteria) PetName() (string, bool) {
	if c.petName == nil {
		return "", false
	}
	return *c.petName, true
}

// StoresToSearch returns the inventories to probe, in order: the pinned store
// alone, or every known store ascending.
func (c Criteria) StoresToSearch() []int {
	if c.store != nil {
		return []int{*c.store}
	}
	return KnownStores()
}

func isKnownStore(store int) bool {
	for _, s := range KnownStores() {
		if s == store {
			return true
		}
	}
	return false
}
