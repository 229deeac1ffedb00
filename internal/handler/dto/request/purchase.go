package request

import (
	"strings"

	"pet-order/internal/domain/purchase"
)

// CreatePurchaseRequest is the POST /purchases body. Field names with hyphens
// come from the external contract.
type CreatePurchaseRequest struct {
	Purchaser string  `json:"purchaser" binding:"required"`
	PetType   string  `json:"pet-type" binding:"required"`
	Store     *int    `json:"store,omitempty"`
	PetName   *string `json:"pet-name,omitempty"`
}

func (r CreatePurchaseRequest) ToCriteria() (purchase.Criteria, error) {
	petName := r.PetName
	if petName != nil {
		trimmed := strings.TrimSpace(*petName)
		if trimmed == "" {
			petName = nil
		} else {
			petName = &trimmed
		}
	}

	return purchase.NewCriteria(r.Purchaser, r.PetType, r.Store, petName)
}
