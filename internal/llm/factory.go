package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewGateway builds the provider chain for one pipeline run:
// caller → fallback → (retry → logging → base) per backend.
// There is no package-level default; each pipeline run constructs its own
// gateway from an explicit Config so tests can substitute fakes.
func NewGateway(ctx context.Context, cfg Config, sink EventSink, log *zap.Logger) (Provider, error) {
	primary, err := newProviderStack(ctx, cfg, cfg.Preferred, sink, log)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Preferred, err)
	}

	if cfg.Fallback == "" {
		return primary, nil
	}

	fallback, err := newProviderStack(ctx, cfg, cfg.Fallback, sink, log)
	if err != nil {
		return nil, fmt.Errorf("initializing %s fallback provider: %w", cfg.Fallback, err)
	}

	return WithFallback(primary, fallback), nil
}

// newProviderStack builds one backend wrapped with timeout, logging,
// then retry.
func newProviderStack(ctx context.Context, cfg Config, name string, sink EventSink, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch name {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown model provider: %q", name)
	}
	if err != nil {
		return nil, err
	}

	timed := WithTimeout(base, cfg.Timeout)
	logged := WithLogging(timed, sink, log)
	return WithRetry(logged, cfg.Retry), nil
}
