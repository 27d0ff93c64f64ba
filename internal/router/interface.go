package router

import (
	"context"

	"travel-orchestrator/internal/model"
)

// Router maps an orchestration request to an envelope. It never returns an
// error: failures are folded into the envelope.
type Router interface {
	Route(ctx context.Context, in RouteInput) model.Envelope
}

// Backend runs the unstructured agent pipeline and returns its raw text.
type Backend interface {
	Run(ctx context.Context, req AgentRequest) (string, error)
}

// Detector decides whether a conversation addresses the agent.
type Detector interface {
	Detect(input any) (bool, error)
}
