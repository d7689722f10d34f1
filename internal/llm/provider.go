package llm

import (
	"context"
	"encoding/json"
	"time"
)

// Provider is the core abstraction for generative-model interaction.
// Consumers call Generate with a Request and receive structured JSON.
type Provider interface {
	// Generate sends a prompt to the model and returns a structured response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The response Content will be the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string

	// Name returns the provider identifier ("gemini", "openai", "anthropic").
	Name() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the common case in vidquiz), this contains one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	Schema *Schema

	// Video, when set, attaches a video segment to the request. Only
	// vision-capable providers (Gemini) accept this; others fail with
	// ErrInvalidRequest before any network call.
	Video *VideoInput

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64

	// TopP is the nucleus sampling cutoff. Zero means provider default.
	TopP float64

	// TopK limits sampling to the K most likely tokens. Zero means
	// provider default.
	TopK int
}

// VideoInput references a span of a video for multimodal requests.
type VideoInput struct {
	// URI is the video location (a file API URI, GCS URI, or public HTTPS
	// URL, depending on what the provider accepts).
	URI string

	// MIMEType of the video. Defaults to "video/mp4" when empty.
	MIMEType string

	// Start and End bound the segment of interest. A zero End means
	// "until the end of the video".
	Start time.Duration
	End   time.Duration
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "video-analysis".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// Provider names the backend that served the request. When a fallback
	// chain is active, this identifies which backend ultimately answered.
	Provider string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
