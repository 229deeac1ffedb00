package response

import (
	"pet-order/internal/usecase/commands"
)

type PurchaseResponse struct {
	Purchaser  string `json:"purchaser"`
	PetType    string `json:"pet-type"`
	Store      int    `json:"store"`
	PetName    string `json:"pet-name"`
	PurchaseID string `json:"purchase-id"`
}

func FromPurchaseResult(result *commands.PurchaseResult) *PurchaseResponse {
	return &PurchaseResponse{
		Purchaser:  result.Purchaser,
		PetType:    result.PetType,
		Store:      result.Store,
		PetName:    result.PetName,
		PurchaseID: result.PurchaseID.String(),
	}
}
