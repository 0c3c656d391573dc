package event

import (
	"context"

	"gcal-relay/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List returns the events of every calendar the caller owns, plus their calendar list.
	List(ctx context.Context, sc model.Scope) (ListOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) error
	Edit(ctx context.Context, sc model.Scope, input EditInput) error
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
}
