package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "gcal-relay/pkg/errors"
)

// processLoginReq reads the code from the query string on GET and from the JSON body otherwise.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if c.Request.Method == http.MethodGet {
		req.Code = c.Query("code")
		return req, req.validate()
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "auth.http.processLoginReq ShouldBindJSON: %v", err)
		return req, pkgErrors.NewBadRequestError("Invalid JSON body.")
	}
	return req, req.validate()
}
