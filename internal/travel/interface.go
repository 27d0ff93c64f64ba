package travel

import "context"

type UseCase interface {
	// Orchestrate routes one conversation to a static handler or the agent
	// and returns the normalized envelope.
	Orchestrate(ctx context.Context, input OrchestrateInput) (OrchestrateOutput, error)
}
