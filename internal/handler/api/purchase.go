package api

import (
	"net/http"
	"strings"

	reqdto "pet-order/internal/handler/dto/request"
	resdto "pet-order/internal/handler/dto/response"
	"pet-order/internal/handler/httperr"
	"pet-order/internal/pkg/errs"
	"pet-order/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	purchaseCommands commands.PurchaseCommands
}

func NewPurchaseHandler(purchaseCommands commands.PurchaseCommands) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseCommands: purchaseCommands,
	}
}

// @Summary Create purchase
// @Description Locate an available pet, claim it from its store and record the sale
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePurchaseRequest true "Purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 415 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	if !strings.Contains(c.ContentType(), "application/json") {
		httperr.AbortWithError(c, http.StatusUnsupportedMediaType, nil, "Expected application/json media type")
		return
	}

	var req reqdto.CreatePurchaseRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Malformed data")
		return
	}

	criteria, err := req.ToCriteria()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed data")
		return
	}

	result, err := h.purchaseCommands.Purchase(c.Request.Context(), criteria)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrNoPetAvailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No pet of this type is available")
		default:
			// Ledger write failures land here: the claim went through but the
			// sale is unrecorded, so this must surface as a server error.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseResult(result))
}
