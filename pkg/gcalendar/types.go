package gcalendar

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// Remote operation names, used for error reporting and metrics labels.
const (
	OpListCalendars = "calendarList.list"
	OpListEvents    = "events.list"
	OpInsertEvent   = "events.insert"
	OpUpdateEvent   = "events.update"
	OpDeleteEvent   = "events.delete"
)

// AccessRoleOwner is the calendarList accessRole of calendars the user owns.
const AccessRoleOwner = "owner"

// Credentials is everything a session needs to act on behalf of one user.
// They are built per request and never cached.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
	TokenURI     string
	ClientID     string
	ClientSecret string
}

func (c Credentials) token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: c.RefreshToken,
		Expiry:       c.Expiry,
	}
}

func (c Credentials) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  c.TokenURI,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// CalendarEntry is one calendarList item. Raw is the entry exactly as Google sent it;
// ID and AccessRole are read from it for filtering.
type CalendarEntry struct {
	ID         string
	AccessRole string
	Raw        json.RawMessage
}

func newCalendarEntry(raw json.RawMessage) (CalendarEntry, error) {
	var head struct {
		ID         string `json:"id"`
		AccessRole string `json:"accessRole"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return CalendarEntry{}, fmt.Errorf("failed to decode calendar list entry: %w", err)
	}
	return CalendarEntry{ID: head.ID, AccessRole: head.AccessRole, Raw: raw}, nil
}
