package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "gcal-relay/pkg/errors"
)

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the whole body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Detail sends {"detail": message} with the given status.
func Detail(c *gin.Context, status int, message string) {
	c.JSON(status, Resp{Detail: message})
}

// Error sends {"detail": message} using the status carried by err.
// Errors that are not *errors.HTTPError are rendered as a generic 500.
func Error(c *gin.Context, err error) {
	httpErr := pkgErrors.AsHTTPError(err)
	c.JSON(httpErr.StatusCode, Resp{Detail: httpErr.Message})
}

// Unauthorized aborts with 401.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = MessageNotAuthenticated
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{Detail: message})
}
