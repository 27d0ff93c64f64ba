package router

import "travel-orchestrator/internal/model"

// Intent is a structured request type with a static handler.
type Intent string

const (
	IntentHotelInfo Intent = "hotel_info"
	IntentCityInfo  Intent = "city_info"
	IntentNearby    Intent = "nearby"
	IntentPlan      Intent = "plan"
	IntentWeather   Intent = "weather"
)

// Intents lists every intent with a static handler.
func Intents() []Intent {
	return []Intent{IntentHotelInfo, IntentCityInfo, IntentNearby, IntentPlan, IntentWeather}
}

// IsValid reports whether the intent has a static handler.
func (i Intent) IsValid() bool {
	switch i {
	case IntentHotelInfo, IntentCityInfo, IntentNearby, IntentPlan, IntentWeather:
		return true
	}
	return false
}

// Mode selects what the fallback path does once a trigger word is seen.
type Mode string

const (
	// ModeStatic never calls the agent backend.
	ModeStatic Mode = "static"
	// ModeDynamic forwards the conversation to the agent backend.
	ModeDynamic Mode = "dynamic"
)

// Config is the router construction config.
type Config struct {
	Mode        Mode
	DefaultCity string
}

// RouteInput is one orchestration request.
type RouteInput struct {
	Conversation model.ConversationInput
	Intent       Intent
	Params       model.Params
}

// AgentRequest is what the fallback path hands to the agent backend.
type AgentRequest struct {
	Conversation string
	Intent       string
	Params       model.Params
}

type handlerFunc func(params model.Params, defaults Config) (model.Envelope, error)
