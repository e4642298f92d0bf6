package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recommendation core.
var (
	// ErrInvalidRequest indicates the caller supplied invalid parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderFetch indicates an external provider call failed.
	// It is fatal for the current request and propagates to every caller
	// joined to the same fetch.
	ErrProviderFetch = errors.New("provider fetch failed")

	// ErrCacheUnavailable indicates the cache store could not be reached.
	// It is absorbed by the fetch layer as a forced miss and never surfaced
	// to callers.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// ProviderError wraps an error from a specific provider with context about
// which provider failed and whether the call is worth retrying.
type ProviderError struct {
	// Provider is the name of the provider that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable indicates whether the failure is transient
	Retryable bool
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a provider error marked as transient.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable reports whether err is a provider error marked retryable.
func IsRetryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return false
}
