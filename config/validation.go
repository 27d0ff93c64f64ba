package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	RouterModeStatic  = "static"
	RouterModeDynamic = "dynamic"
)

var (
	ErrNoLLMProviders      = errors.New("no LLM providers configured")
	ErrNoEnabledProviders  = errors.New("no enabled LLM providers")
	ErrInvalidProviderConf = errors.New("invalid LLM provider config")
)

// Validate checks struct tags and the cross-field rules tags cannot express.
// LLM providers are only required when the router runs in dynamic mode.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Router.Mode == RouterModeDynamic {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return fmt.Errorf("router.mode=dynamic: %w", err)
		}
	}

	return nil
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return ErrNoLLMProviders
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("%w: provider %s: priority must be positive", ErrInvalidProviderConf, provider.Name)
		}

		if priorityMap[provider.Priority] {
			return fmt.Errorf("%w: provider %s: duplicate priority %d", ErrInvalidProviderConf, provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey == "" {
			return fmt.Errorf("%w: provider %s: api key is required", ErrInvalidProviderConf, provider.Name)
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledProviders
	}

	return nil
}
