package http

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/gin-gonic/gin"

	pkgErrors "gcal-relay/pkg/errors"
)

var (
	errInvalidEventBody = pkgErrors.NewBadRequestError("Request body must be a JSON event object.")
	errInvalidPath      = pkgErrors.NewBadRequestError("Malformed calendar or event id.")
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	calendarID, err := pathValue(c, "calendarId")
	if err != nil {
		return createReq{}, err
	}
	ev, err := h.bindEvent(c)
	if err != nil {
		return createReq{}, err
	}
	return createReq{CalendarID: calendarID, Event: ev}, nil
}

func (h *handler) processEditReq(c *gin.Context) (editReq, error) {
	req, err := processIDs(c)
	if err != nil {
		return editReq{}, err
	}
	ev, err := h.bindEvent(c)
	if err != nil {
		return editReq{}, err
	}
	return editReq{CalendarID: req.CalendarID, EventID: req.EventID, Event: ev}, nil
}

func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	return processIDs(c)
}

func processIDs(c *gin.Context) (deleteReq, error) {
	calendarID, err := pathValue(c, "calendarId")
	if err != nil {
		return deleteReq{}, err
	}
	eventID, err := pathValue(c, "eventId")
	if err != nil {
		return deleteReq{}, err
	}
	return deleteReq{CalendarID: calendarID, EventID: eventID}, nil
}

// pathValue decodes a raw path segment exactly once.
func pathValue(c *gin.Context, name string) (string, error) {
	v, err := url.PathUnescape(c.Param(name))
	if err != nil {
		return "", errInvalidPath
	}
	return v, nil
}

// bindEvent returns the body as sent once it is known to be a JSON object.
// The bytes are forwarded unchanged so that every field the client set reaches Google.
func (h *handler) bindEvent(c *gin.Context) (json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		h.l.Warnf(c.Request.Context(), "event.http.bindEvent GetRawData: %v", err)
		return nil, errInvalidEventBody
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, errInvalidEventBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		h.l.Warnf(c.Request.Context(), "event.http.bindEvent Unmarshal: %v", err)
		return nil, errInvalidEventBody
	}
	return json.RawMessage(body), nil
}
