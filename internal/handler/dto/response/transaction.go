package response

import (
	"pet-order/internal/usecase/queries"
)

type TransactionResponse struct {
	Purchaser  string `json:"purchaser"`
	PetType    string `json:"pet-type"`
	Store      int    `json:"store"`
	PurchaseID string `json:"purchase-id"`
}

func FromTransactionView(view *queries.TransactionView) *TransactionResponse {
	return &TransactionResponse{
		Purchaser:  view.Purchaser,
		PetType:    view.PetType,
		Store:      view.Store,
		PurchaseID: view.PurchaseID.String(),
	}
}
