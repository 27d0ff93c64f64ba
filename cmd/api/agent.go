package main

import (
	"context"
	"fmt"

	"travel-orchestrator/config"
	"travel-orchestrator/internal/agent"
	"travel-orchestrator/internal/agent/crew"
	"travel-orchestrator/internal/agent/tools"
	"travel-orchestrator/pkg/llmprovider"
	"travel-orchestrator/pkg/log"
)

// newAgentBackend wires providers, prompts and tools into the travel crew.
func newAgentBackend(ctx context.Context, cfg *config.Config, logger log.Logger) (*crew.Crew, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return nil, fmt.Errorf("providers: %w", err)
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}

	managerCfg, err := llmprovider.ParseConfig(cfg.LLM)
	if err != nil {
		return nil, err
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)

	prompts, err := crew.LoadPrompts(cfg.Agent.PromptsPath)
	if err != nil {
		return nil, err
	}

	registry := agent.NewToolRegistry(
		tools.NewGetWeatherTool(),
		tools.NewFindHotelTool(),
	)

	return crew.New(manager, registry, prompts, crew.Config{
		MaxIterations: cfg.Agent.MaxIterations,
		Temperature:   cfg.Agent.Temperature,
		MaxTokens:     cfg.Agent.MaxTokens,
		Timezone:      cfg.Agent.Timezone,
	}, logger)
}
