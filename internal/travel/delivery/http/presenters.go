package http

import (
	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/travel"
)

// --- Request DTOs ---

type orchestrateReq struct {
	// Either a raw string or a list of {sender, content, timestamp?} messages.
	ConversationInput *model.ConversationInput `json:"conversation_input" swaggertype:"string" example:"ai_agent plan a weekend in Sousse"`
	Intent            string                   `json:"intent" example:"weather"`
	Params            map[string]any           `json:"params" swaggertype:"object"`
}

func (r orchestrateReq) validate() error {
	if r.ConversationInput == nil {
		return travel.ErrMissingConversation
	}
	return nil
}

func (r orchestrateReq) toInput() travel.OrchestrateInput {
	return travel.OrchestrateInput{
		Conversation: *r.ConversationInput,
		Intent:       r.Intent,
		Params:       model.Params(r.Params),
	}
}

// --- Response DTOs ---

// The envelope is written as is, without the response.Resp wrapper.
func (h *handler) newOrchestrateResp(o travel.OrchestrateOutput) model.Envelope {
	return o.Envelope
}
