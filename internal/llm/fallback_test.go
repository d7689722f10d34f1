package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestFallback_PrimarySucceeds(t *testing.T) {
	primary := NewNamedMockProvider("gemini",
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	fallback := NewNamedMockProvider("openai")

	p := WithFallback(primary, fallback)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Provider != "gemini" {
		t.Fatalf("expected provider 'gemini', got %q", resp.Provider)
	}
	if fallback.CallCount() != 0 {
		t.Fatalf("fallback should not have been called, got %d calls", fallback.CallCount())
	}
}

func TestFallback_ActivatesOnPrimaryFailure(t *testing.T) {
	primary := NewNamedMockProvider("gemini",
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	fallback := NewNamedMockProvider("openai",
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	p := WithFallback(primary, fallback)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Provider != "openai" {
		t.Fatalf("expected provider 'openai', got %q", resp.Provider)
	}
	if primary.CallCount() != 1 {
		t.Fatalf("expected 1 primary call, got %d", primary.CallCount())
	}
}

func TestFallback_BothFail_NamesBothProviders(t *testing.T) {
	primary := NewNamedMockProvider("gemini",
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("primary down")}},
	)
	fallback := NewNamedMockProvider("openai",
		MockResponse{Err: &ErrRateLimit{Err: errors.New("fallback throttled")}},
	)

	p := WithFallback(primary, fallback)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	var all *ErrAllProvidersFailed
	if !errors.As(err, &all) {
		t.Fatalf("expected ErrAllProvidersFailed, got: %T", err)
	}
	if all.Primary != "gemini" || all.Fallback != "openai" {
		t.Fatalf("wrong provider names: %q / %q", all.Primary, all.Fallback)
	}
	if !strings.Contains(err.Error(), "primary down") {
		t.Fatalf("error should name the primary failure: %v", err)
	}
	if !strings.Contains(err.Error(), "fallback throttled") {
		t.Fatalf("error should name the fallback failure: %v", err)
	}
}

func TestFallback_CancellationSkipsFallback(t *testing.T) {
	primary := NewNamedMockProvider("gemini")
	fallback := NewNamedMockProvider("openai",
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	p := WithFallback(WithRetry(primary, retryConfig()), fallback)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Primary's empty queue errors first, but retry sees the canceled
	// context before sleeping and returns ctx.Err().
	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got: %v", err)
	}
	if fallback.CallCount() != 0 {
		t.Fatalf("fallback should not run after cancellation, got %d calls", fallback.CallCount())
	}
}

func TestFallback_InvalidRequestNotEscalated(t *testing.T) {
	primary := NewNamedMockProvider("openai",
		MockResponse{Err: &ErrInvalidRequest{Reason: "no video support"}},
	)
	fallback := NewNamedMockProvider("anthropic",
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	p := WithFallback(primary, fallback)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	var invReq *ErrInvalidRequest
	if !errors.As(err, &invReq) {
		t.Fatalf("expected ErrInvalidRequest, got: %T", err)
	}
	if fallback.CallCount() != 0 {
		t.Fatalf("fallback should not run for invalid requests, got %d calls", fallback.CallCount())
	}
}

func TestFallback_NameAndModelIDFollowPrimary(t *testing.T) {
	primary := NewNamedMockProvider("gemini")
	fallback := NewNamedMockProvider("openai")

	p := WithFallback(primary, fallback)
	if p.Name() != "gemini" {
		t.Fatalf("expected 'gemini', got %q", p.Name())
	}
	if p.ModelID() != "gemini" {
		t.Fatalf("expected 'gemini', got %q", p.ModelID())
	}
}
