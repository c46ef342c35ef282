package federation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAllProvidersFailed marks the case where every attempted provider
// failed outright, as opposed to providers answering "found nothing".
var ErrAllProvidersFailed = errors.New("all providers failed")

// ErrUnknownProvider is returned at construction when the configuration
// names a provider that was not supplied.
var ErrUnknownProvider = errors.New("unknown provider")

// ProviderFailure records one provider's failure during fallback, kept for
// diagnostics on the exhausted-providers error.
type ProviderFailure struct {
	Provider string
	Err      error
}

// ExhaustedError is returned when every provider attempted for a call
// failed. It unwraps to ErrAllProvidersFailed and carries the individual
// failures.
type ExhaustedError struct {
	Operation string
	Failures  []ProviderFailure
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, failure := range e.Failures {
		parts[i] = fmt.Sprintf("%s: %v", failure.Provider, failure.Err)
	}
	return fmt.Sprintf("%s: all providers failed: %s", e.Operation, strings.Join(parts, "; "))
}

func (e *ExhaustedError) Unwrap() error {
	return ErrAllProvidersFailed
}
