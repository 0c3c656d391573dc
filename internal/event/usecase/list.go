package usecase

import (
	"context"

	"gcal-relay/internal/event"
	"gcal-relay/internal/model"
	"gcal-relay/pkg/gcalendar"
)

// List fetches the calendar list, keeps the calendars the caller owns and reads their
// events one calendar at a time. The first failure aborts the whole listing.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) (event.ListOutput, error) {
	creds, err := uc.resolveCredentials(ctx, sc)
	if err != nil {
		return event.ListOutput{}, err
	}

	entries, err := uc.gateway.ListCalendars(ctx, creds)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListCalendars: %v", err)
		return event.ListOutput{}, err
	}

	owned := ownedCalendars(entries)
	events := make([]event.CalendarEvent, 0)
	for _, cal := range owned {
		items, err := uc.gateway.ListEvents(ctx, creds, cal.ID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.List ListEvents(%s): %v", cal.ID, err)
			return event.ListOutput{}, err
		}
		for _, item := range items {
			events = append(events, event.CalendarEvent{CalendarID: cal.ID, Event: item})
		}
	}

	uc.l.Debugf(ctx, "uc.List: %d events across %d owned calendars", len(events), len(owned))
	return event.ListOutput{Events: events, Calendars: owned}, nil
}

func ownedCalendars(entries []gcalendar.CalendarEntry) []gcalendar.CalendarEntry {
	owned := make([]gcalendar.CalendarEntry, 0, len(entries))
	for _, e := range entries {
		if e.AccessRole == gcalendar.AccessRoleOwner {
			owned = append(owned, e)
		}
	}
	return owned
}
