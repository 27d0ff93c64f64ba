package travel

import "travel-orchestrator/internal/model"

// OrchestrateInput is one orchestration request.
type OrchestrateInput struct {
	Conversation model.ConversationInput
	Intent       string
	Params       model.Params
}

// OrchestrateOutput wraps the response envelope.
type OrchestrateOutput struct {
	Envelope model.Envelope
}
