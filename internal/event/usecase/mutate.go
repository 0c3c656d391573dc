package usecase

import (
	"context"
	"encoding/json"

	"gcal-relay/internal/event"
	"gcal-relay/internal/model"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input event.CreateInput) error {
	creds, err := uc.resolveCredentials(ctx, sc)
	if err != nil {
		return err
	}

	created, err := uc.gateway.InsertEvent(ctx, creds, input.CalendarID, input.Event)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create InsertEvent: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.Create: created event %s in calendar %s", createdID(created), input.CalendarID)
	return nil
}

func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input event.EditInput) error {
	creds, err := uc.resolveCredentials(ctx, sc)
	if err != nil {
		return err
	}

	if _, err := uc.gateway.UpdateEvent(ctx, creds, input.CalendarID, input.EventID, input.Event); err != nil {
		uc.l.Errorf(ctx, "uc.Edit UpdateEvent: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input event.DeleteInput) error {
	creds, err := uc.resolveCredentials(ctx, sc)
	if err != nil {
		return err
	}

	if err := uc.gateway.DeleteEvent(ctx, creds, input.CalendarID, input.EventID); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEvent: %v", err)
		return err
	}
	return nil
}

func createdID(raw json.RawMessage) string {
	var ev struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &ev); err != nil {
		return ""
	}
	return ev.ID
}
