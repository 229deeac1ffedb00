package purchase

// FoundPet is a candidate located in one inventory, eligible for a claim.
// It lives only for the duration of a single purchase attempt.
type FoundPet struct {
	Store       int
	PetTypeID   string
	PetTypeName string
	Name        string
}
