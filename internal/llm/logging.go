package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RequestLog captures a single model request/response pair for the
// observability sink.
type RequestLog struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives request logs. Implementations must be safe for
// concurrent use; the gateway calls Append from many goroutines at once.
// The ent-backed event store in internal/storage is the production sink.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, log RequestLog) error
}

// LoggingProvider is a decorator that records every model request as an
// event. Sink failures are logged and swallowed; they never interrupt
// generation.
type LoggingProvider struct {
	inner Provider
	sink  EventSink
	log   *zap.Logger
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, sink EventSink, log *zap.Logger) Provider {
	if log == nil {
		log = zap.NewNop()
	}
	return &LoggingProvider{inner: p, sink: sink, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	entry := RequestLog{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Model = resp.Model
		entry.ResponseBody = string(resp.Content)
	}

	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Record the event but don't fail the request if the sink does.
	if l.sink != nil {
		if sinkErr := l.sink.AppendLLMRequest(ctx, entry); sinkErr != nil {
			l.log.Warn("failed to record model request event",
				zap.String("provider", entry.Provider),
				zap.String("purpose", purpose),
				zap.Error(sinkErr))
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) Name() string {
	return l.inner.Name()
}

// serializeRequest builds a readable representation of the model request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Video != nil {
		b.WriteString(fmt.Sprintf("[video] %s (%s - %s)\n", req.Video.URI, req.Video.Start, req.Video.End))
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
