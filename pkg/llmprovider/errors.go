package llmprovider

import (
	"errors"
	"fmt"
)

var (
	ErrAllProvidersFailed    = errors.New("all llm providers failed")
	ErrNoProvidersConfigured = errors.New("no llm providers configured")
	ErrInvalidRequest        = errors.New("llm request has no messages")
)

// ProviderError is the last error one provider returned after its retries
// were used up.
type ProviderError struct {
	Provider string
	Model    string
	Attempts int
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("provider %s (%s) failed after %d attempts: %v", e.Provider, e.Model, e.Attempts, e.Err)
	}
	return fmt.Sprintf("provider %s (%s): %v", e.Provider, e.Model, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
