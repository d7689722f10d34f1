package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one timestamped span of the video: what was said, what was
// on screen, and whether something notable happened.
type Segment struct {
	// Start and End are offsets from the beginning of the video, in
	// whole seconds. End is exclusive of the next segment's Start.
	Start int
	End   int

	// Text is the spoken content of the segment.
	Text string

	// VisualDescription describes what is visible on screen.
	VisualDescription string

	// SalientEvent marks segments where something pedagogically notable
	// happens (a diagram appears, a demonstration runs).
	SalientEvent bool

	// EventType tags the salient event ("diagram", "demonstration",
	// "code", ...). Empty when SalientEvent is false.
	EventType string
}

// ConceptEntry tracks where a concept is introduced and explained.
type ConceptEntry struct {
	Concept      string
	FirstMention int   // seconds
	Explanations []int // seconds, ascending
}

// Transcript is the full analysis of one video: ordered segments, the
// concept timeline, and a summary. Produced once by the planning stage
// and read-only afterward.
type Transcript struct {
	Segments []Segment
	Concepts []ConceptEntry
	Summary  string
}

// Duration returns the end timestamp of the last segment, in seconds.
func (t *Transcript) Duration() int {
	if len(t.Segments) == 0 {
		return 0
	}
	return t.Segments[len(t.Segments)-1].End
}

// Contains reports whether ts falls inside the transcript's time range.
func (t *Transcript) Contains(ts int) bool {
	return ts >= 0 && ts <= t.Duration()
}

// SegmentAt returns the segment containing ts exactly, or nil.
func (t *Transcript) SegmentAt(ts int) *Segment {
	for i := range t.Segments {
		if ts >= t.Segments[i].Start && ts < t.Segments[i].End {
			return &t.Segments[i]
		}
	}
	// The final instant of the video belongs to the last segment.
	if n := len(t.Segments); n > 0 && ts == t.Segments[n-1].End {
		return &t.Segments[n-1]
	}
	return nil
}

// ParseTimestamp converts a "MM:SS" or "H:MM:SS" string to whole seconds.
// This is the only place the wire format is understood; everything past
// the model boundary works in integer seconds.
func ParseTimestamp(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("timestamp %q: want MM:SS or H:MM:SS", s)
	}

	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("timestamp %q: invalid component %q", s, p)
		}
		total = total*60 + n
	}
	return total, nil
}

// FormatTimestamp renders whole seconds as "MM:SS" (or "H:MM:SS" past an
// hour), the format exchanged with the model.
func FormatTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
