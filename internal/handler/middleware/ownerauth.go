package middleware

import (
	"crypto/subtle"
	"net/http"

	"pet-order/internal/handler/httperr"
	"pet-order/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const ownerHeaderKey = "OwnerPC"

// OwnerAuthMiddleware gates the transaction log behind the owner's shared
// secret. The check runs before any ledger access: a missing or wrong header
// never reaches the query path.
type OwnerAuthMiddleware struct {
	secret string
}

func NewOwnerAuthMiddleware(cfg config.AuthConfig) *OwnerAuthMiddleware {
	return &OwnerAuthMiddleware{secret: cfg.OwnerSecret}
}

func (m *OwnerAuthMiddleware) RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(ownerHeaderKey)
		if subtle.ConstantTimeCompare([]byte(header), []byte(m.secret)) != 1 {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "unauthorized")
			return
		}
		c.Next()
	}
}
