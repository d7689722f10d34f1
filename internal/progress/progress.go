package progress

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status is the lifecycle state of a tracked task.
type Status string

const (
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Event is one progress notification from a pipeline stage.
type Event struct {
	// Stage names the pipeline stage emitting the event
	// ("planning", "generation", "verification", "storage").
	Stage string

	// QuestionID is the plan or question the event concerns.
	// Empty for stage-level events.
	QuestionID string

	// Type is the question type, when the event concerns one question.
	Type string

	Status Status

	// Detail is a short human-readable note, usually the failure reason.
	Detail string

	At time.Time
}

// Tracker receives progress events. Publish must not block pipeline work
// and never reports an error; a tracker that cannot deliver drops the
// event.
type Tracker interface {
	Publish(Event)
}

// LogTracker writes events to a structured logger.
type LogTracker struct {
	log *zap.Logger
}

// NewLogTracker creates a Tracker backed by the given logger.
// A nil logger disables output.
func NewLogTracker(log *zap.Logger) *LogTracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogTracker{log: log}
}

func (t *LogTracker) Publish(e Event) {
	fields := []zap.Field{
		zap.String("stage", e.Stage),
		zap.String("status", string(e.Status)),
	}
	if e.QuestionID != "" {
		fields = append(fields, zap.String("question_id", e.QuestionID))
	}
	if e.Type != "" {
		fields = append(fields, zap.String("type", e.Type))
	}
	if e.Detail != "" {
		fields = append(fields, zap.String("detail", e.Detail))
	}

	if e.Status == StatusFailed {
		t.log.Warn("progress", fields...)
		return
	}
	t.log.Info("progress", fields...)
}

// MemoryTracker records events in memory. Useful for tests and for the
// CLI's end-of-run summary.
type MemoryTracker struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{}
}

func (t *MemoryTracker) Publish(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

// Events returns a copy of all recorded events in publish order.
func (t *MemoryTracker) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Count returns the number of recorded events with the given status.
func (t *MemoryTracker) Count(status Status) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, e := range t.events {
		if e.Status == status {
			n++
		}
	}
	return n
}

type multiTracker struct {
	trackers []Tracker
}

// Multi fans events out to every given tracker.
func Multi(trackers ...Tracker) Tracker {
	return &multiTracker{trackers: trackers}
}

func (m *multiTracker) Publish(e Event) {
	for _, t := range m.trackers {
		t.Publish(e)
	}
}

type nopTracker struct{}

func (nopTracker) Publish(Event) {}

// Nop returns a Tracker that discards all events.
func Nop() Tracker {
	return nopTracker{}
}
