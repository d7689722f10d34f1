package llm

import (
	"context"
	"errors"
)

// FallbackProvider chains two fully-independent provider stacks: the
// preferred backend is tried first (with its own retry budget), and only
// when it is exhausted does the fallback backend get the same chance.
// Responses are tagged with the name of the backend that served them.
type FallbackProvider struct {
	primary  Provider
	fallback Provider
}

// WithFallback wraps a primary provider with a fallback. Both arguments
// are expected to already carry their retry decorators.
func WithFallback(primary, fallback Provider) Provider {
	return &FallbackProvider{primary: primary, fallback: fallback}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	resp, primaryErr := f.primary.Generate(ctx, req)
	if primaryErr == nil {
		resp.Provider = f.primary.Name()
		return resp, nil
	}

	// Cancellation is not a provider failure; don't burn the fallback on it.
	if errors.Is(primaryErr, context.Canceled) || errors.Is(primaryErr, context.DeadlineExceeded) {
		return nil, primaryErr
	}

	// A request the primary can't serve at all (e.g. video on a text-only
	// backend) won't fare better elsewhere unless the fallback is
	// vision-capable; let it try only for transport-level failures.
	var invReq *ErrInvalidRequest
	if errors.As(primaryErr, &invReq) {
		return nil, primaryErr
	}

	resp, fallbackErr := f.fallback.Generate(ctx, req)
	if fallbackErr == nil {
		resp.Provider = f.fallback.Name()
		return resp, nil
	}

	return nil, &ErrAllProvidersFailed{
		Primary:     f.primary.Name(),
		Fallback:    f.fallback.Name(),
		PrimaryErr:  primaryErr,
		FallbackErr: fallbackErr,
	}
}

func (f *FallbackProvider) ModelID() string {
	return f.primary.ModelID()
}

func (f *FallbackProvider) Name() string {
	return f.primary.Name()
}
