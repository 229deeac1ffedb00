package api

import (
	"net/http"
	"strconv"

	resdto "pet-order/internal/handler/dto/response"
	"pet-order/internal/handler/httperr"
	"pet-order/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionQueries queries.TransactionQueries
}

func NewTransactionHandler(transactionQueries queries.TransactionQueries) *TransactionHandler {
	return &TransactionHandler{
		transactionQueries: transactionQueries,
	}
}

// @Summary List transactions
// @Description List recorded purchases, optionally filtered. Requires the OwnerPC header.
// @Tags transactions
// @Produce json
// @Param OwnerPC header string true "Owner shared secret"
// @Param store query int false "Store identifier"
// @Param pet-type query string false "Pet type name"
// @Param purchaser query string false "Purchaser"
// @Param purchase-id query string false "Purchase identifier"
// @Success 200 {array} resdto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	filter, ok := h.parseFilter(c)
	if !ok {
		return
	}

	views, err := h.transactionQueries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.TransactionResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromTransactionView(view)
	}

	c.JSON(http.StatusOK, response)
}

func (h *TransactionHandler) parseFilter(c *gin.Context) (queries.TransactionFilter, bool) {
	var filter queries.TransactionFilter

	if storeStr, exists := c.GetQuery("store"); exists {
		store, err := strconv.Atoi(storeStr)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed data")
			return filter, false
		}
		filter.Store = &store
	}
	if petType, exists := c.GetQuery("pet-type"); exists {
		filter.PetType = &petType
	}
	if purchaser, exists := c.GetQuery("purchaser"); exists {
		filter.Purchaser = &purchaser
	}
	if purchaseID, exists := c.GetQuery("purchase-id"); exists {
		filter.PurchaseID = &purchaseID
	}

	return filter, true
}
