package http

import (
	"travel-orchestrator/internal/travel"
	"travel-orchestrator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc travel.UseCase
}

// New creates a new HTTP handler for the travel domain.
func New(l log.Logger, uc travel.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
