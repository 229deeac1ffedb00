package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error body: {"error": "<message>"}. The shape is part of
// the external contract, so it stays a single flat string.
type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
}

// AbortWithError writes the contract error body and aborts the request.
// err may be nil when the failure carries no cause worth logging; otherwise
// it is attached to the context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	resp := Response{Status: status, Error: msg}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
