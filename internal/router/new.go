package router

import (
	"fmt"
	"strings"

	"travel-orchestrator/pkg/log"
)

// IntentRouter dispatches known intents to static handlers and everything
// else to the trigger-gated agent path.
type IntentRouter struct {
	mode        Mode
	defaultCity string
	detector    Detector
	backend     Backend
	handlers    map[Intent]handlerFunc
	l           log.Logger
}

var _ Router = (*IntentRouter)(nil)

// New creates an IntentRouter. backend may be nil in static mode.
func New(l log.Logger, cfg Config, detector Detector, backend Backend) (*IntentRouter, error) {
	mode := Mode(strings.ToLower(string(cfg.Mode)))
	switch mode {
	case ModeStatic:
	case ModeDynamic:
		if backend == nil {
			return nil, ErrBackendRequired
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
	if detector == nil {
		return nil, ErrNilDetector
	}

	city := strings.TrimSpace(cfg.DefaultCity)
	if city == "" {
		city = DefaultCity
	}

	return &IntentRouter{
		mode:        mode,
		defaultCity: city,
		detector:    detector,
		backend:     backend,
		handlers: map[Intent]handlerFunc{
			IntentHotelInfo: handleHotelInfo,
			IntentCityInfo:  handleCityInfo,
			IntentNearby:    handleNearby,
			IntentPlan:      handlePlan,
			IntentWeather:   handleWeather,
		},
		l: l,
	}, nil
}

// Mode returns the router mode.
func (r *IntentRouter) Mode() Mode {
	return r.mode
}
