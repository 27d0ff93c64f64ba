package usecase

import (
	"travel-orchestrator/internal/router"
	"travel-orchestrator/pkg/log"
)

// implUseCase is the private implementation of travel.UseCase.
type implUseCase struct {
	router router.Router
	l      log.Logger
}

// New creates a new travel UseCase implementation.
func New(r router.Router, l log.Logger) *implUseCase {
	return &implUseCase{
		router: r,
		l:      l,
	}
}
