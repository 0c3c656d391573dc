package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gcal-relay/pkg/response"
	"gcal-relay/pkg/scope"
)

// List godoc
// @Summary     List events
// @Description Returns the events of every calendar the user owns, each with its calendarId,
// @Description and the list of those calendars.
// @Tags        Events
// @Produce     json
// @Security    TokenAuth
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "No google social account or token"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Google Calendar error"
// @Router      /events/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c, response.MessageNotAuthenticated)
		return
	}

	out, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Create godoc
// @Summary     Create an event
// @Description Inserts the Google event resource in the body into the calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       calendarId path string true "Calendar ID (URL-encoded)"
// @Param       body       body object true "Google Calendar event resource"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid body, or no google social account or token"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Google Calendar error"
// @Router      /events/{calendarId}/create/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c, response.MessageNotAuthenticated)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Create(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Detail(c, http.StatusCreated, messageEventCreated)
}

// Edit godoc
// @Summary     Edit an event
// @Description Replaces the event with the Google event resource in the body.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Security    TokenAuth
// @Param       calendarId path string true "Calendar ID (URL-encoded)"
// @Param       eventId    path string true "Event ID"
// @Param       body       body object true "Google Calendar event resource"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid body, or no google social account or token"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Google Calendar error"
// @Router      /events/{calendarId}/{eventId}/edit/ [PUT]
func (h *handler) Edit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c, response.MessageNotAuthenticated)
		return
	}

	req, err := h.processEditReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Edit(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Edit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Detail(c, http.StatusOK, messageEventEdited)
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Security    TokenAuth
// @Param       calendarId path string true "Calendar ID (URL-encoded)"
// @Param       eventId    path string true "Event ID"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "No google social account or token"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Google Calendar error"
// @Router      /events/{calendarId}/{eventId}/delete/ [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c, response.MessageNotAuthenticated)
		return
	}

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Detail(c, http.StatusOK, messageEventDeleted)
}
