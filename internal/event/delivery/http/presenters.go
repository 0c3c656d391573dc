package http

import (
	"encoding/json"

	"gcal-relay/internal/event"
	"gcal-relay/pkg/gcalendar"
)

const (
	messageEventCreated = "Event created"
	messageEventEdited  = "Event edited"
	messageEventDeleted = "Event deleted"
)

type createReq struct {
	CalendarID string
	Event      json.RawMessage
}

func (r createReq) toInput() event.CreateInput {
	return event.CreateInput{CalendarID: r.CalendarID, Event: r.Event}
}

type editReq struct {
	CalendarID string
	EventID    string
	Event      json.RawMessage
}

func (r editReq) toInput() event.EditInput {
	return event.EditInput{CalendarID: r.CalendarID, EventID: r.EventID, Event: r.Event}
}

type deleteReq struct {
	CalendarID string
	EventID    string
}

func (r deleteReq) toInput() event.DeleteInput {
	return event.DeleteInput{CalendarID: r.CalendarID, EventID: r.EventID}
}

// eventResp renders a Google event as Google sent it, plus "calendarId".
type eventResp struct {
	calendarID string
	event      json.RawMessage
}

func (r eventResp) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if len(r.event) > 0 {
		if err := json.Unmarshal(r.event, &fields); err != nil {
			return nil, err
		}
	}

	id, err := json.Marshal(r.calendarID)
	if err != nil {
		return nil, err
	}
	fields["calendarId"] = id

	return json.Marshal(fields)
}

type listResp struct {
	Events    []eventResp       `json:"events"`
	Calendars []json.RawMessage `json:"calendars"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = eventResp{calendarID: e.CalendarID, event: e.Event}
	}

	return listResp{Events: events, Calendars: rawCalendars(out.Calendars)}
}

func rawCalendars(entries []gcalendar.CalendarEntry) []json.RawMessage {
	calendars := make([]json.RawMessage, len(entries))
	for i, e := range entries {
		calendars[i] = e.Raw
	}
	return calendars
}
