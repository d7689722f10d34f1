package transcript

import "testing"

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"00:45", 45, false},
		{"02:30", 150, false},
		{"12:05", 725, false},
		{"1:02:03", 3723, false},
		{" 03:20 ", 200, false},
		{"90", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
		{"-1:30", 0, true},
		{"1:2:3:4", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimestamp(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseTimestamp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseTimestamp(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{45, "00:45"},
		{150, "02:30"},
		{3723, "1:02:03"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTimestamp(tt.in); got != tt.want {
			t.Fatalf("FormatTimestamp(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, seconds := range []int{0, 1, 59, 60, 61, 150, 3599, 3600, 3723} {
		got, err := ParseTimestamp(FormatTimestamp(seconds))
		if err != nil {
			t.Fatalf("round trip %d: %v", seconds, err)
		}
		if got != seconds {
			t.Fatalf("round trip %d: got %d", seconds, got)
		}
	}
}

func testTranscript() *Transcript {
	return &Transcript{
		Segments: []Segment{
			{Start: 0, End: 30, Text: "Welcome to networking basics.", VisualDescription: "title slide"},
			{Start: 30, End: 75, Text: "DNS translates names to addresses.", VisualDescription: "diagram of DNS lookup", SalientEvent: true, EventType: "diagram"},
			{Start: 75, End: 120, Text: "A resolver walks the hierarchy.", VisualDescription: "resolver animation"},
			{Start: 120, End: 180, Text: "Caching avoids repeated lookups.", VisualDescription: "cache table on screen"},
		},
		Concepts: []ConceptEntry{
			{Concept: "DNS", FirstMention: 30, Explanations: []int{40, 80}},
			{Concept: "resolver", FirstMention: 75, Explanations: []int{90}},
			{Concept: "caching", FirstMention: 120, Explanations: []int{130}},
		},
		Summary: "Intro to DNS resolution.",
	}
}

func TestDurationAndContains(t *testing.T) {
	tr := testTranscript()
	if tr.Duration() != 180 {
		t.Fatalf("expected duration 180, got %d", tr.Duration())
	}
	if !tr.Contains(0) || !tr.Contains(180) {
		t.Fatal("endpoints should be contained")
	}
	if tr.Contains(-1) || tr.Contains(181) {
		t.Fatal("out-of-range timestamps should not be contained")
	}

	empty := &Transcript{}
	if empty.Duration() != 0 {
		t.Fatalf("empty transcript duration should be 0, got %d", empty.Duration())
	}
}

func TestSegmentAt(t *testing.T) {
	tr := testTranscript()

	seg := tr.SegmentAt(45)
	if seg == nil || seg.Start != 30 {
		t.Fatalf("expected segment starting at 30, got %+v", seg)
	}

	// Boundary belongs to the later segment.
	seg = tr.SegmentAt(75)
	if seg == nil || seg.Start != 75 {
		t.Fatalf("expected segment starting at 75, got %+v", seg)
	}

	// Final instant belongs to the last segment.
	seg = tr.SegmentAt(180)
	if seg == nil || seg.Start != 120 {
		t.Fatalf("expected last segment, got %+v", seg)
	}

	if tr.SegmentAt(500) != nil {
		t.Fatal("expected nil for out-of-range timestamp")
	}
}

func TestExtractWindow(t *testing.T) {
	tr := testTranscript()

	w := tr.ExtractWindow(75, 30)
	if w.Start != 45 || w.End != 105 {
		t.Fatalf("expected window [45,105], got [%d,%d]", w.Start, w.End)
	}

	// Segments [30,75], [75,120] overlap the window.
	if len(w.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(w.Segments))
	}

	// DNS has an explanation at 80; resolver first-mentions at 75.
	if len(w.Concepts) != 2 {
		t.Fatalf("expected 2 concepts, got %d: %v", len(w.Concepts), w.Concepts)
	}

	if w.VisualContext != "resolver animation" {
		t.Fatalf("unexpected visual context: %q", w.VisualContext)
	}
}

func TestExtractWindow_ClampsToVideoRange(t *testing.T) {
	tr := testTranscript()

	w := tr.ExtractWindow(10, 30)
	if w.Start != 0 {
		t.Fatalf("expected start clamped to 0, got %d", w.Start)
	}

	w = tr.ExtractWindow(170, 30)
	if w.End != 180 {
		t.Fatalf("expected end clamped to 180, got %d", w.End)
	}
}

func TestExtractWindow_DefaultRadius(t *testing.T) {
	tr := testTranscript()
	w := tr.ExtractWindow(90, 0)
	if w.Start != 60 || w.End != 120 {
		t.Fatalf("expected default radius 30, got [%d,%d]", w.Start, w.End)
	}
}
