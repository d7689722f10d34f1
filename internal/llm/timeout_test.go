package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// blockingProvider waits for ctx cancellation and reports the error.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }
func (blockingProvider) Name() string    { return "blocking" }

func TestTimeout_CancelsSlowCall(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 5*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected deadline error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("deadline not enforced, call took %v", elapsed)
	}
}

func TestTimeout_ZeroLimitLeavesProviderUnwrapped(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	if p := WithTimeout(mock, 0); p != Provider(mock) {
		t.Fatal("zero limit should return the provider unchanged")
	}
}

func TestTimeout_FastCallUnaffected(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	p := WithTimeout(mock, time.Second)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if p.ModelID() != mock.ModelID() || p.Name() != mock.Name() {
		t.Fatal("decorator should delegate identity methods")
	}
}
