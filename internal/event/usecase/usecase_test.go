package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcal-relay/internal/auth"
	"gcal-relay/internal/event"
	"gcal-relay/internal/event/usecase"
	"gcal-relay/internal/model"
	"gcal-relay/pkg/gcalendar"
	"gcal-relay/pkg/log"
)

type fakeSocial struct {
	auth.SocialLogin
	token model.SocialToken
	err   error
}

func (f *fakeSocial) GetStoredToken(ctx context.Context, userID string) (model.SocialToken, error) {
	return f.token, f.err
}

type fakeGateway struct {
	calendars []gcalendar.CalendarEntry
	events    map[string][]json.RawMessage
	errs      map[string]error // keyed by op, or op+":"+calendarID for events.list

	calls  []string
	creds  []gcalendar.Credentials
	bodies []json.RawMessage
}

func entry(id, role string) gcalendar.CalendarEntry {
	raw, _ := json.Marshal(map[string]string{"id": id, "accessRole": role})
	return gcalendar.CalendarEntry{ID: id, AccessRole: role, Raw: raw}
}

func rawEvent(id string) json.RawMessage {
	return json.RawMessage(`{"id":"` + id + `"}`)
}

func (f *fakeGateway) record(call string, creds gcalendar.Credentials) {
	f.calls = append(f.calls, call)
	f.creds = append(f.creds, creds)
}

func (f *fakeGateway) ListCalendars(ctx context.Context, creds gcalendar.Credentials) ([]gcalendar.CalendarEntry, error) {
	f.record(gcalendar.OpListCalendars, creds)
	return f.calendars, f.errs[gcalendar.OpListCalendars]
}

func (f *fakeGateway) ListEvents(ctx context.Context, creds gcalendar.Credentials, calendarID string) ([]json.RawMessage, error) {
	f.record(gcalendar.OpListEvents+":"+calendarID, creds)
	if err := f.errs[gcalendar.OpListEvents+":"+calendarID]; err != nil {
		return nil, err
	}
	return f.events[calendarID], nil
}

func (f *fakeGateway) InsertEvent(ctx context.Context, creds gcalendar.Credentials, calendarID string, body json.RawMessage) (json.RawMessage, error) {
	f.record(gcalendar.OpInsertEvent+":"+calendarID, creds)
	f.bodies = append(f.bodies, body)
	if err := f.errs[gcalendar.OpInsertEvent]; err != nil {
		return nil, err
	}
	return rawEvent("new-1"), nil
}

func (f *fakeGateway) UpdateEvent(ctx context.Context, creds gcalendar.Credentials, calendarID, eventID string, body json.RawMessage) (json.RawMessage, error) {
	f.record(gcalendar.OpUpdateEvent+":"+calendarID+"/"+eventID, creds)
	f.bodies = append(f.bodies, body)
	if err := f.errs[gcalendar.OpUpdateEvent]; err != nil {
		return nil, err
	}
	return body, nil
}

func (f *fakeGateway) DeleteEvent(ctx context.Context, creds gcalendar.Credentials, calendarID, eventID string) error {
	f.record(gcalendar.OpDeleteEvent+":"+calendarID+"/"+eventID, creds)
	return f.errs[gcalendar.OpDeleteEvent]
}

var (
	testClient = event.OAuthClient{ClientID: "cid", ClientSecret: "secret", TokenURI: "https://oauth2.example/token"}
	testScope  = model.Scope{UserID: "user-1"}
	testExpiry = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
)

func setup(gw *fakeGateway, social *fakeSocial) event.UseCase {
	if social == nil {
		social = &fakeSocial{token: model.SocialToken{ID: "t1", Token: "access", TokenSecret: "refresh", ExpiresAt: testExpiry}}
	}
	return usecase.New(gw, social, testClient, log.NewNop())
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("Only owned calendars are read", func(t *testing.T) {
		gw := &fakeGateway{
			calendars: []gcalendar.CalendarEntry{
				entry("primary@example.com", "owner"),
				entry("holidays", "reader"),
				entry("team", "owner"),
			},
			events: map[string][]json.RawMessage{
				"primary@example.com": {rawEvent("e1"), rawEvent("e2")},
				"holidays":            {rawEvent("h1")},
				"team":                {rawEvent("e3")},
			},
		}

		out, err := setup(gw, nil).List(ctx, testScope)
		require.NoError(t, err)

		assert.Equal(t, []string{
			gcalendar.OpListCalendars,
			gcalendar.OpListEvents + ":primary@example.com",
			gcalendar.OpListEvents + ":team",
		}, gw.calls)

		require.Len(t, out.Calendars, 2)
		assert.Equal(t, "primary@example.com", out.Calendars[0].ID)
		assert.Equal(t, "team", out.Calendars[1].ID)

		require.Len(t, out.Events, 3)
		assert.Equal(t, "primary@example.com", out.Events[0].CalendarID)
		assert.JSONEq(t, `{"id":"e1"}`, string(out.Events[0].Event))
		assert.Equal(t, "primary@example.com", out.Events[1].CalendarID)
		assert.Equal(t, "team", out.Events[2].CalendarID)
		assert.JSONEq(t, `{"id":"e3"}`, string(out.Events[2].Event))
	})

	t.Run("Credentials come from the stored token and client config", func(t *testing.T) {
		gw := &fakeGateway{}
		_, err := setup(gw, nil).List(ctx, testScope)
		require.NoError(t, err)

		require.Len(t, gw.creds, 1)
		assert.Equal(t, gcalendar.Credentials{
			AccessToken:  "access",
			RefreshToken: "refresh",
			Expiry:       testExpiry,
			TokenURI:     testClient.TokenURI,
			ClientID:     testClient.ClientID,
			ClientSecret: testClient.ClientSecret,
		}, gw.creds[0])
	})

	t.Run("No calendars yields empty lists", func(t *testing.T) {
		out, err := setup(&fakeGateway{}, nil).List(ctx, testScope)
		require.NoError(t, err)
		assert.NotNil(t, out.Events)
		assert.Empty(t, out.Events)
		assert.NotNil(t, out.Calendars)
		assert.Empty(t, out.Calendars)
	})

	t.Run("Failure on one calendar aborts the listing", func(t *testing.T) {
		remote := &gcalendar.RemoteError{Op: gcalendar.OpListEvents, Err: errors.New("Not Found")}
		gw := &fakeGateway{
			calendars: []gcalendar.CalendarEntry{
				entry("a", "owner"),
				entry("b", "owner"),
				entry("c", "owner"),
			},
			errs: map[string]error{gcalendar.OpListEvents + ":b": remote},
		}

		out, err := setup(gw, nil).List(ctx, testScope)
		assert.ErrorIs(t, err, remote)
		assert.Empty(t, out.Events)
		assert.Equal(t, []string{
			gcalendar.OpListCalendars,
			gcalendar.OpListEvents + ":a",
			gcalendar.OpListEvents + ":b",
		}, gw.calls, "calendar c must not be read after b failed")
	})

	t.Run("Calendar list failure", func(t *testing.T) {
		remote := &gcalendar.RemoteError{Op: gcalendar.OpListCalendars, Err: errors.New("Invalid Credentials")}
		gw := &fakeGateway{errs: map[string]error{gcalendar.OpListCalendars: remote}}

		_, err := setup(gw, nil).List(ctx, testScope)
		assert.ErrorIs(t, err, remote)
	})

	t.Run("Missing social account or token", func(t *testing.T) {
		tests := []struct {
			socialErr error
			want      error
		}{
			{socialErr: auth.ErrNoSocialAccount, want: event.ErrNoGoogleAccount},
			{socialErr: auth.ErrNoSocialToken, want: event.ErrNoGoogleToken},
		}
		for _, tt := range tests {
			gw := &fakeGateway{}
			_, err := setup(gw, &fakeSocial{err: tt.socialErr}).List(ctx, testScope)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, gw.calls, "no remote call without credentials")
		}
	})

	t.Run("Storage failure is returned as is", func(t *testing.T) {
		storageErr := errors.New("database is locked")
		_, err := setup(&fakeGateway{}, &fakeSocial{err: storageErr}).List(ctx, testScope)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestMutations(t *testing.T) {
	ctx := context.Background()

	body := json.RawMessage(`{"summary":"Standup","reminders":{"useDefault":false},"anyoneCanAddSelf":false}`)

	t.Run("Create", func(t *testing.T) {
		gw := &fakeGateway{}
		err := setup(gw, nil).Create(ctx, testScope, event.CreateInput{
			CalendarID: "foo@bar.com",
			Event:      body,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{gcalendar.OpInsertEvent + ":foo@bar.com"}, gw.calls)
		require.Len(t, gw.bodies, 1)
		assert.Equal(t, string(body), string(gw.bodies[0]))
	})

	t.Run("Edit", func(t *testing.T) {
		gw := &fakeGateway{}
		err := setup(gw, nil).Edit(ctx, testScope, event.EditInput{
			CalendarID: "cal",
			EventID:    "ev",
			Event:      body,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{gcalendar.OpUpdateEvent + ":cal/ev"}, gw.calls)
		require.Len(t, gw.bodies, 1)
		assert.Equal(t, string(body), string(gw.bodies[0]))
	})

	t.Run("Delete", func(t *testing.T) {
		gw := &fakeGateway{}
		err := setup(gw, nil).Delete(ctx, testScope, event.DeleteInput{CalendarID: "cal", EventID: "ev"})
		require.NoError(t, err)
		assert.Equal(t, []string{gcalendar.OpDeleteEvent + ":cal/ev"}, gw.calls)
	})

	t.Run("Remote failures are returned", func(t *testing.T) {
		remote := &gcalendar.RemoteError{Op: gcalendar.OpDeleteEvent, Err: errors.New("Resource has been deleted")}
		gw := &fakeGateway{errs: map[string]error{
			gcalendar.OpInsertEvent: remote,
			gcalendar.OpUpdateEvent: remote,
			gcalendar.OpDeleteEvent: remote,
		}}
		uc := setup(gw, nil)

		assert.ErrorIs(t, uc.Create(ctx, testScope, event.CreateInput{CalendarID: "c", Event: json.RawMessage(`{}`)}), remote)
		assert.ErrorIs(t, uc.Edit(ctx, testScope, event.EditInput{CalendarID: "c", EventID: "e", Event: json.RawMessage(`{}`)}), remote)
		assert.ErrorIs(t, uc.Delete(ctx, testScope, event.DeleteInput{CalendarID: "c", EventID: "e"}), remote)
	})

	t.Run("No social token", func(t *testing.T) {
		gw := &fakeGateway{}
		err := setup(gw, &fakeSocial{err: auth.ErrNoSocialToken}).Delete(ctx, testScope, event.DeleteInput{CalendarID: "c", EventID: "e"})
		assert.ErrorIs(t, err, event.ErrNoGoogleToken)
		assert.Empty(t, gw.calls)
	})
}
