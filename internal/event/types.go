package event

import (
	"encoding/json"

	"gcal-relay/pkg/gcalendar"
)

// OAuthClient is the OAuth client used to refresh stored tokens.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	TokenURI     string
}

// CalendarEvent is a Google event, kept as Google sent it, together with the calendar
// it was read from.
type CalendarEvent struct {
	CalendarID string
	Event      json.RawMessage
}

type ListOutput struct {
	Events    []CalendarEvent
	Calendars []gcalendar.CalendarEntry
}

// CreateInput carries the event body exactly as the client sent it.
type CreateInput struct {
	CalendarID string
	Event      json.RawMessage
}

type EditInput struct {
	CalendarID string
	EventID    string
	Event      json.RawMessage
}

type DeleteInput struct {
	CalendarID string
	EventID    string
}
