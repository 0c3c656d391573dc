package usecase

import (
	"gcal-relay/internal/auth"
	"gcal-relay/internal/auth/repository"
	"gcal-relay/pkg/gauth"
	"gcal-relay/pkg/log"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo      repository.Repository
	exchanger gauth.Exchanger
	l         log.Logger
}

var _ auth.UseCase = (*implUseCase)(nil)

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, exchanger gauth.Exchanger, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:      repo,
		exchanger: exchanger,
		l:         l,
	}
}
