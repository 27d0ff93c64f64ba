package http

import (
	"errors"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/travel"
)

var errMalformedBody = errors.New("malformed request body")

// mapError translates request and use-case errors into client-facing errors.
// A nil result means the error is internal and must not be exposed.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, travel.ErrMissingConversation):
		return travel.ErrMissingConversation
	case errors.Is(err, model.ErrInvalidConversationInput):
		return model.ErrInvalidConversationInput
	default:
		return nil
	}
}

// mapBindError is mapError for binding failures: anything unknown is the
// client's fault.
func (h *handler) mapBindError(err error) error {
	if mapped := h.mapError(err); mapped != nil {
		return mapped
	}
	return errMalformedBody
}
