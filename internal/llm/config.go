package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration for one pipeline run.
// A Gateway is constructed explicitly from a Config; there is no process-wide
// default instance.
type Config struct {
	// Preferred selects the backend tried first.
	// Values: "gemini", "openai", "anthropic", "openrouter", "mock"
	Preferred string

	// Fallback selects the backend tried after the preferred one exhausts
	// its retry budget. Empty disables fallback.
	Fallback string

	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout is the maximum duration for a single model request; each
	// retry attempt gets a fresh deadline. Default: 120s — planning
	// calls analyze whole videos and run long.
	Timeout time.Duration
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"

	// VisionModel serves multimodal requests (video analysis, hotspot
	// frames). Defaults to Model when empty.
	VisionModel string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for OpenRouter or compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.0-flash-exp"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. Gemini is
// preferred because it is the only backend that accepts video input;
// OpenAI covers text-only generation when Gemini is down.
func DefaultConfig() Config {
	return Config{
		Preferred: "gemini",
		Fallback:  "openai",
		Gemini: GeminiConfig{
			Model:       "gemini-flash",
			VisionModel: "gemini-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.0-flash-exp",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 120 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("VIDQUIZ_PROVIDER"); p != "" {
		cfg.Preferred = p
	}
	if p := os.Getenv("VIDQUIZ_FALLBACK_PROVIDER"); p != "" {
		cfg.Fallback = p
	}

	if k := os.Getenv("VIDQUIZ_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("VIDQUIZ_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}
	if m := os.Getenv("VIDQUIZ_GEMINI_VISION_MODEL"); m != "" {
		cfg.Gemini.VisionModel = m
	}

	if k := os.Getenv("VIDQUIZ_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("VIDQUIZ_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("VIDQUIZ_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("VIDQUIZ_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("VIDQUIZ_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("VIDQUIZ_OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("VIDQUIZ_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars in priority order
// (Gemini → OpenAI → Anthropic → OpenRouter) and fills in keys for every
// provider whose key is found. The preferred provider becomes the first
// one discovered; the fallback becomes the second. Returns
// (Config{}, false) if no key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	var found []string
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
		found = append(found, "gemini")
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
		found = append(found, "openai")
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
		found = append(found, "anthropic")
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
		found = append(found, "openrouter")
	}

	if len(found) == 0 {
		return Config{}, false
	}

	cfg.Preferred = found[0]
	cfg.Fallback = ""
	if len(found) > 1 {
		cfg.Fallback = found[1]
	}
	return cfg, true
}

// Validate checks that the selected providers have their required API keys set.
func (c Config) Validate() error {
	if err := c.validateProvider(c.Preferred); err != nil {
		return err
	}
	if c.Fallback != "" {
		if c.Fallback == c.Preferred {
			return fmt.Errorf("fallback provider must differ from preferred provider %q", c.Preferred)
		}
		if err := c.validateProvider(c.Fallback); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) validateProvider(name string) error {
	switch name {
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("VIDQUIZ_GEMINI_API_KEY is required for the gemini provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("VIDQUIZ_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("VIDQUIZ_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("VIDQUIZ_OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown model provider: %q", name)
	}
	return nil
}
