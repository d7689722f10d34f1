package llm

import (
	"context"
	"time"
)

// timeoutProvider bounds the wall-clock time of a single Generate call.
// It wraps the base provider, so the limit applies per attempt; retries
// each get a fresh deadline.
type timeoutProvider struct {
	inner Provider
	limit time.Duration
}

// WithTimeout wraps p so every Generate call carries a deadline of limit.
// A limit <= 0 returns p unchanged.
func WithTimeout(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, limit: limit}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

func (t *timeoutProvider) Name() string {
	return t.inner.Name()
}
