package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"gcal-relay/internal/auth"
	pkgErrors "gcal-relay/pkg/errors"
	"gcal-relay/pkg/response"
	"gcal-relay/pkg/scope"
)

const tokenPrefix = "Token "

// Auth resolves "Authorization: Token <key>" to the caller's scope and aborts with 401 otherwise.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, response.MessageNotAuthenticated)
			return
		}
		if !strings.HasPrefix(header, tokenPrefix) {
			response.Unauthorized(c, response.MessageInvalidToken)
			return
		}

		sc, err := m.authUC.Authenticate(ctx, strings.TrimSpace(strings.TrimPrefix(header, tokenPrefix)))
		if err != nil {
			if errors.Is(err, auth.ErrInvalidKey) {
				response.Unauthorized(c, response.MessageInvalidToken)
				return
			}
			m.l.Errorf(ctx, "middleware.Auth Authenticate: %v", err)
			response.Error(c, pkgErrors.ErrInternalServerError)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}
