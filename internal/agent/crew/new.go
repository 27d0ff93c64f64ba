package crew

import (
	"context"
	"fmt"
	"time"

	"travel-orchestrator/internal/agent"
	"travel-orchestrator/internal/router"
	"travel-orchestrator/pkg/datemath"
	"travel-orchestrator/pkg/llmprovider"
	pkgLog "travel-orchestrator/pkg/log"
)

// Generator is the LLM capability the crew needs. *llmprovider.Manager
// implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the agent loop.
type Config struct {
	MaxIterations int
	Temperature   float64
	MaxTokens     int
	Timezone      string
}

// Crew is a single travel-manager agent with tools. It implements
// router.Backend and keeps no state between runs.
type Crew struct {
	llm      Generator
	registry *agent.ToolRegistry
	prompts  Prompts
	parser   *datemath.Parser
	cfg      Config
	now      func() time.Time
	l        pkgLog.Logger
}

var _ router.Backend = (*Crew)(nil)

func New(llm Generator, registry *agent.ToolRegistry, prompts Prompts, cfg Config, l pkgLog.Logger) (*Crew, error) {
	if cfg.MaxIterations < 1 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if registry == nil {
		registry = agent.NewToolRegistry()
	}
	if err := prompts.Validate(); err != nil {
		return nil, err
	}

	parser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("crew: %w", err)
	}

	return &Crew{
		llm:      llm,
		registry: registry,
		prompts:  prompts,
		parser:   parser,
		cfg:      cfg,
		now:      time.Now,
		l:        l,
	}, nil
}
