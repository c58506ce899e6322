package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

var (
	// ErrMissingCredential is returned when a provider has no API key configured.
	ErrMissingCredential = errors.New("llm: missing api credential")

	// ErrTransient marks failures worth one more attempt (network errors, 429, 5xx).
	ErrTransient = errors.New("llm: transient upstream failure")

	// ErrEmptyReply is returned when the provider answered without any content.
	ErrEmptyReply = errors.New("llm: empty reply")
)

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s error: status %d, body: %s", e.Provider, e.StatusCode, truncate(e.Body, 512))
}

// Unwrap lets errors.Is(err, ErrTransient) see retryable statuses.
func (e *StatusError) Unwrap() error {
	if retryableStatus(e.StatusCode) {
		return ErrTransient
	}
	return nil
}

// NetworkError wraps a transport failure so callers can retry it.
func NetworkError(provider string, err error) error {
	return fmt.Errorf("%s request failed: %w: %w", provider, ErrTransient, err)
}

// IsTransient reports whether err deserves a retry.
// Context cancellation and deadline expiry are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrTransient) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
