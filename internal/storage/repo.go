package storage

import (
	"context"
	"time"

	"vidquiz/internal/llm"
)

// Batch is one pipeline run's worth of rows to persist together.
type Batch struct {
	CourseID string
	VideoURL string
	Rows     []Row
}

// StoredQuestion is a persisted question as read back for listing.
type StoredQuestion struct {
	QuestionID     string
	CourseID       string
	VideoURL       string
	Timestamp      int
	Question       string
	Type           string
	CorrectAnswer  string
	HasVisualAsset bool
	CreatedAt      time.Time
}

// QuestionRepo persists transformed questions.
type QuestionRepo interface {
	// SaveBatch writes all rows of a run in one transaction, including
	// the parallel bounding-box table for hotspot rows.
	SaveBatch(ctx context.Context, batch Batch) error

	// List returns stored questions for a course ordered by video
	// timestamp. An empty courseID returns all courses. limit 0 means
	// unlimited.
	List(ctx context.Context, courseID string, limit int) ([]StoredQuestion, error)

	// Count returns how many questions a course holds.
	Count(ctx context.Context, courseID string) (int, error)
}

// UsageStat aggregates model request events per provider and purpose.
type UsageStat struct {
	Provider     string
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// ModelStat aggregates model request events per model ID, for cost
// estimation.
type ModelStat struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// StoredEvent is a persisted model request event as read back for
// inspection.
type StoredEvent struct {
	Sequence     int64
	Timestamp    time.Time
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

// EventRepo appends and aggregates observability events. It is the
// production llm.EventSink.
type EventRepo interface {
	llm.EventSink

	// Recent returns the most recent events, newest first. limit 0
	// means unlimited.
	Recent(ctx context.Context, limit int) ([]StoredEvent, error)

	// Get returns the event with the given sequence number, or nil if
	// no such event exists.
	Get(ctx context.Context, sequence int64) (*StoredEvent, error)

	// Stats aggregates recorded model requests for `vidquiz llm stats`.
	Stats(ctx context.Context) ([]UsageStat, error)

	// StatsByModel aggregates recorded model requests per model ID.
	StatsByModel(ctx context.Context) ([]ModelStat, error)
}
