package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gcal-relay/pkg/response"
	"gcal-relay/pkg/scope"
)

const messageLoggedOut = "Successfully logged out."

// Login godoc
// @Summary     Log in with Google
// @Description Exchanges a Google authorization code and returns the API key for the user.
// @Description The code is read from the query string on GET and from the JSON body on POST.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       code query    string   false "Authorization code (GET)"
// @Param       body body     loginReq false "Authorization code (POST)"
// @Success     200  {object} loginResp
// @Failure     400  {object} response.Resp "Missing code or failed exchange"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /login/ [GET]
// @Router      /login/ [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoginResp(out))
}

// Logout godoc
// @Summary     Log out
// @Description Revokes the caller's API key.
// @Tags        Auth
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /logout/ [POST]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c, response.MessageNotAuthenticated)
		return
	}

	if err := h.uc.Logout(ctx, sc); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Detail(c, http.StatusOK, messageLoggedOut)
}
