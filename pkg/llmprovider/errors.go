package llmprovider

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all LLM providers failed")
	ErrNoProvidersConfigured = errors.New("no LLM providers configured")
	ErrInvalidRequest        = errors.New("invalid LLM request")
	ErrUnknownProvider       = errors.New("unknown LLM provider")
	ErrProviderTimeout       = errors.New("LLM provider timeout")
	ErrProviderRateLimited   = errors.New("LLM provider rate limited")
)

// ProviderError records the provider that failed and how many attempts it got.
type ProviderError struct {
	Provider string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s failed after %d attempt(s): %v", e.Provider, e.Attempts, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// retryable reports whether another attempt on the same provider may succeed.
// A malformed request or a canceled caller will fail the same way again.
func retryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest) && !errors.Is(err, context.Canceled)
}
