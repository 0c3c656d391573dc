package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Events and calendar entries cross the gateway as raw JSON so that fields the typed
// calendar structs would drop (explicit false, unknown keys) reach Google and the caller intact.
//
//go:generate mockery --name Gateway
type Gateway interface {
	ListCalendars(ctx context.Context, creds Credentials) ([]CalendarEntry, error)
	ListEvents(ctx context.Context, creds Credentials, calendarID string) ([]json.RawMessage, error)
	InsertEvent(ctx context.Context, creds Credentials, calendarID string, body json.RawMessage) (json.RawMessage, error)
	UpdateEvent(ctx context.Context, creds Credentials, calendarID, eventID string, body json.RawMessage) (json.RawMessage, error)
	DeleteEvent(ctx context.Context, creds Credentials, calendarID, eventID string) error
}

// Client is the Gateway backed by the Google Calendar v3 API.
// It holds no per-user state: every call opens its own session from the given credentials.
type Client struct {
	opts []option.ClientOption
}

var _ Gateway = (*Client)(nil)

// New creates a Client. opts are appended to every session, e.g. option.WithEndpoint in tests.
func New(opts ...option.ClientOption) *Client {
	return &Client{opts: opts}
}

func (c *Client) openSession(ctx context.Context, creds Credentials) (*session, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	// Token refreshes go through the same transport as API calls.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: transport})
	httpClient := creds.oauthConfig().Client(ctx, creds.token())

	// The service resolves the endpoint from the client options.
	opts := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, c.opts...)
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		transport.CloseIdleConnections()
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return &session{client: httpClient, basePath: svc.BasePath, transport: transport}, nil
}

// do runs fn inside a fresh session and releases the session on every path.
func (c *Client) do(ctx context.Context, op string, creds Credentials, fn func(s *session) error) (err error) {
	start := time.Now()
	defer func() { observe(op, start, err) }()

	sess, err := c.openSession(ctx, creds)
	if err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	defer sess.Close()

	if err := fn(sess); err != nil {
		return &RemoteError{Op: op, Err: err}
	}
	return nil
}

// ListCalendars returns every entry of the user's calendar list, all pages included.
func (c *Client) ListCalendars(ctx context.Context, creds Credentials) ([]CalendarEntry, error) {
	var entries []CalendarEntry
	err := c.do(ctx, OpListCalendars, creds, func(s *session) error {
		items, err := s.listPages(ctx, "users/me/calendarList", nil)
		if err != nil {
			return err
		}
		entries = make([]CalendarEntry, 0, len(items))
		for _, item := range items {
			entry, err := newCalendarEntry(item)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEvents returns every event of one calendar, all pages included.
func (c *Client) ListEvents(ctx context.Context, creds Credentials, calendarID string) ([]json.RawMessage, error) {
	var events []json.RawMessage
	err := c.do(ctx, OpListEvents, creds, func(s *session) error {
		var err error
		events, err = s.listPages(ctx, "calendars/{calendarId}/events", map[string]string{
			"calendarId": calendarID,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// InsertEvent sends body to Google unchanged and returns Google's copy of the new event.
func (c *Client) InsertEvent(ctx context.Context, creds Credentials, calendarID string, body json.RawMessage) (json.RawMessage, error) {
	var created json.RawMessage
	err := c.do(ctx, OpInsertEvent, creds, func(s *session) error {
		return s.call(ctx, http.MethodPost, "calendars/{calendarId}/events", map[string]string{
			"calendarId": calendarID,
		}, nil, body, &created)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateEvent replaces the event with body, sent unchanged.
func (c *Client) UpdateEvent(ctx context.Context, creds Credentials, calendarID, eventID string, body json.RawMessage) (json.RawMessage, error) {
	var updated json.RawMessage
	err := c.do(ctx, OpUpdateEvent, creds, func(s *session) error {
		return s.call(ctx, http.MethodPut, "calendars/{calendarId}/events/{eventId}", map[string]string{
			"calendarId": calendarID,
			"eventId":    eventID,
		}, nil, body, &updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (c *Client) DeleteEvent(ctx context.Context, creds Credentials, calendarID, eventID string) error {
	return c.do(ctx, OpDeleteEvent, creds, func(s *session) error {
		return s.call(ctx, http.MethodDelete, "calendars/{calendarId}/events/{eventId}", map[string]string{
			"calendarId": calendarID,
			"eventId":    eventID,
		}, nil, nil, nil)
	})
}
