package router

import (
	"context"
	"fmt"
	"runtime/debug"

	"travel-orchestrator/internal/model"
	"travel-orchestrator/internal/normalizer"
)

// Route implements Router.
func (r *IntentRouter) Route(ctx context.Context, in RouteInput) model.Envelope {
	if h, ok := r.handlers[in.Intent]; ok {
		return r.handle(ctx, in.Intent, h, in.Params)
	}

	if in.Intent != "" {
		r.l.Warnf(ctx, "%s: unknown intent %q, using agent path", LogPrefixRoute, in.Intent)
	}
	return r.fallback(ctx, in)
}

func (r *IntentRouter) handle(ctx context.Context, intent Intent, h handlerFunc, params model.Params) (env model.Envelope) {
	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "%s: %s panicked: %v", LogPrefixHandler, intent, rec)
			env = handlerFailed(intent, fmt.Sprintf("panic: %v\n%s", rec, debug.Stack()))
		}
	}()

	cfg := Config{Mode: r.mode, DefaultCity: r.defaultCity}
	out, err := h(params, cfg)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixHandler, intent, err)
		return handlerFailed(intent, err.Error())
	}

	out.Intent = model.StringPtr(string(intent))
	return out
}

func (r *IntentRouter) fallback(ctx context.Context, in RouteInput) model.Envelope {
	triggered, err := r.detector.Detect(in.Conversation)
	if err != nil {
		r.l.Warnf(ctx, "%s: detect: %v", LogPrefixFallback, err)
		return model.NewErrorEnvelope(ErrCodeInvalidInput, truncateTail(err.Error(), MaxDetailChars))
	}
	if !triggered {
		return model.NewInfoEnvelope(InfoNoTrigger)
	}

	if r.mode != ModeDynamic {
		r.l.Debugf(ctx, "%s: trigger detected in static mode", LogPrefixFallback)
		return model.NewInfoEnvelope(InfoStaticMode)
	}

	text, err := r.runBackend(ctx, AgentRequest{
		Conversation: in.Conversation.Flatten(),
		Intent:       string(in.Intent),
		Params:       in.Params,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: agent: %v", LogPrefixFallback, err)
		return model.NewErrorEnvelope(ErrCodeAgentFailed, truncateTail(err.Error(), MaxDetailChars))
	}

	return normalizer.Normalize(text)
}

func (r *IntentRouter) runBackend(ctx context.Context, req AgentRequest) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v\n%s", rec, debug.Stack())
		}
	}()
	return r.backend.Run(ctx, req)
}

func handlerFailed(intent Intent, details string) model.Envelope {
	env := model.NewErrorEnvelope(ErrCodeHandlerFailed, truncateTail(details, MaxDetailChars))
	env.Intent = model.StringPtr(string(intent))
	return env
}

// truncateTail keeps the last max runes of s.
func truncateTail(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[len(runes)-max:])
}
