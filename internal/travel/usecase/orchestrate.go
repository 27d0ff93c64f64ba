package usecase

import (
	"context"
	"fmt"
	"strings"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/router"
	"travel-orchestrator/internal/travel"
)

// Orchestrate normalizes the intent label, routes the request and logs the outcome.
func (uc *implUseCase) Orchestrate(ctx context.Context, input travel.OrchestrateInput) (travel.OrchestrateOutput, error) {
	if err := ctx.Err(); err != nil {
		return travel.OrchestrateOutput{}, fmt.Errorf("%w: %v", travel.ErrRequestCanceled, err)
	}

	intent := router.Intent(strings.ToLower(strings.TrimSpace(input.Intent)))

	env := uc.router.Route(ctx, router.RouteInput{
		Conversation: input.Conversation,
		Intent:       intent,
		Params:       input.Params,
	})

	uc.logOutcome(ctx, intent, env)
	return travel.OrchestrateOutput{Envelope: env}, nil
}

func (uc *implUseCase) logOutcome(ctx context.Context, intent router.Intent, env model.Envelope) {
	switch {
	case env.Error != nil:
		uc.l.Warnf(ctx, "uc.Orchestrate: intent=%q error=%s", intent, *env.Error)
	case env.Info != nil:
		uc.l.Infof(ctx, "uc.Orchestrate: intent=%q info=%s", intent, *env.Info)
	case env.Intent != nil:
		uc.l.Infof(ctx, "uc.Orchestrate: handled intent=%s", *env.Intent)
	default:
		uc.l.Infof(ctx, "uc.Orchestrate: agent response normalized")
	}
}
