package transcript

// DefaultWindowRadius is the half-width of the context window extracted
// around a question's timestamp, in seconds.
const DefaultWindowRadius = 30

// Window is the bounded slice of transcript context a processor feeds
// into its prompt: the segments around the target timestamp, the concepts
// in play there, and what was on screen at the exact moment.
type Window struct {
	// Target is the timestamp the window is centered on, in seconds.
	Target int

	// Start and End bound the window, clamped to the video range.
	Start int
	End   int

	// Segments are the transcript segments overlapping [Start, End].
	Segments []Segment

	// Concepts are the names of concepts whose first mention or any
	// explanation timestamp falls inside the window.
	Concepts []string

	// VisualContext is the visual description of the segment containing
	// Target exactly. Empty when no segment contains it.
	VisualContext string
}

// ExtractWindow builds the context window of the given radius (seconds)
// around ts. A radius <= 0 uses DefaultWindowRadius.
func (t *Transcript) ExtractWindow(ts, radius int) *Window {
	if radius <= 0 {
		radius = DefaultWindowRadius
	}

	start := ts - radius
	if start < 0 {
		start = 0
	}
	end := ts + radius
	if d := t.Duration(); end > d {
		end = d
	}

	w := &Window{Target: ts, Start: start, End: end}

	for _, seg := range t.Segments {
		if seg.End >= start && seg.Start <= end {
			w.Segments = append(w.Segments, seg)
		}
	}

	for _, c := range t.Concepts {
		if inWindow(c.FirstMention, start, end) {
			w.Concepts = append(w.Concepts, c.Concept)
			continue
		}
		for _, e := range c.Explanations {
			if inWindow(e, start, end) {
				w.Concepts = append(w.Concepts, c.Concept)
				break
			}
		}
	}

	if seg := t.SegmentAt(ts); seg != nil {
		w.VisualContext = seg.VisualDescription
	}

	return w
}

func inWindow(ts, start, end int) bool {
	return ts >= start && ts <= end
}
