package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Content: json.RawMessage(`{"b":2}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"a":1}` {
		t.Fatalf("expected {\"a\":1}, got %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"b":2}` {
		t.Fatalf("expected {\"b\":2}, got %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, "generate:hotspot")
	if p := PurposeFrom(ctx); p != "generate:hotspot" {
		t.Fatalf("expected 'generate:hotspot', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "gemini without key",
			cfg:     Config{Preferred: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Preferred: "gemini", Gemini: GeminiConfig{APIKey: "test"}},
			wantErr: false,
		},
		{
			name: "fallback without key",
			cfg: Config{
				Preferred: "gemini",
				Fallback:  "openai",
				Gemini:    GeminiConfig{APIKey: "test"},
			},
			wantErr: true,
		},
		{
			name: "fallback with key",
			cfg: Config{
				Preferred: "gemini",
				Fallback:  "openai",
				Gemini:    GeminiConfig{APIKey: "test"},
				OpenAI:    OpenAIConfig{APIKey: "sk-test"},
			},
			wantErr: false,
		},
		{
			name: "fallback equals preferred",
			cfg: Config{
				Preferred: "gemini",
				Fallback:  "gemini",
				Gemini:    GeminiConfig{APIKey: "test"},
			},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Preferred: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Preferred: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// recordingSink collects request logs; optionally fails every append.
type recordingSink struct {
	mu   sync.Mutex
	logs []RequestLog
	fail bool
}

func (s *recordingSink) AppendLLMRequest(_ context.Context, log RequestLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("sink down")
	}
	s.logs = append(s.logs, log)
	return nil
}

func TestLogging_RecordsRequestAndResponse(t *testing.T) {
	mock := NewNamedMockProvider("gemini",
		MockResponse{Content: json.RawMessage(`{"ok":true}`), Usage: Usage{InputTokens: 7, OutputTokens: 3}},
	)
	sink := &recordingSink{}
	p := WithLogging(mock, sink, nil)

	ctx := WithPurpose(context.Background(), "planning")
	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "analyze this video"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.logs) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(sink.logs))
	}
	entry := sink.logs[0]
	if entry.Purpose != "planning" {
		t.Fatalf("expected purpose 'planning', got %q", entry.Purpose)
	}
	if entry.Provider != "gemini" {
		t.Fatalf("expected provider 'gemini', got %q", entry.Provider)
	}
	if !entry.Success {
		t.Fatal("expected success")
	}
	if entry.InputTokens != 7 || entry.OutputTokens != 3 {
		t.Fatalf("unexpected token counts: %d/%d", entry.InputTokens, entry.OutputTokens)
	}
}

func TestLogging_SinkFailureDoesNotInterruptGeneration(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	sink := &recordingSink{fail: true}
	p := WithLogging(mock, sink, nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generation must survive sink failure, got: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	sink := &recordingSink{}
	p := WithLogging(mock, sink, nil)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(sink.logs) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(sink.logs))
	}
	if sink.logs[0].Success {
		t.Fatal("expected failure to be recorded")
	}
	if sink.logs[0].ErrorMessage == "" {
		t.Fatal("expected error message to be recorded")
	}
}
