package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// parse as JSON or does not conform to the requested schema. Prose-wrapped
// or code-fenced output lands here; it is never repaired, only retried.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrInvalidRequest indicates the request cannot be served by this provider
// (for example, a video attachment sent to a text-only backend). Never
// retried: the request itself is wrong, not the transport.
type ErrInvalidRequest struct {
	Reason string
}

func (e *ErrInvalidRequest) Error() string {
	return fmt.Sprintf("invalid model request: %s", e.Reason)
}

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Status int // HTTP status when known, 0 otherwise
	Err    error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		if e.Status != 0 {
			return fmt.Sprintf("model provider unavailable (HTTP %d): %v", e.Status, e.Err)
		}
		return fmt.Sprintf("model provider unavailable: %v", e.Err)
	}
	return "model provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "model response truncated: max tokens exceeded"
}

// ErrAllProvidersFailed is the terminal gateway error: both the preferred
// backend and its fallback exhausted their retry budgets. It names both
// providers and carries each one's final error.
type ErrAllProvidersFailed struct {
	Primary     string
	Fallback    string
	PrimaryErr  error
	FallbackErr error
}

func (e *ErrAllProvidersFailed) Error() string {
	return fmt.Sprintf("all providers failed: %s: %v; %s: %v",
		e.Primary, e.PrimaryErr, e.Fallback, e.FallbackErr)
}

func (e *ErrAllProvidersFailed) Unwrap() error { return e.FallbackErr }
