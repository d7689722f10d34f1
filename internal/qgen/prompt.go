package qgen

import (
	"fmt"
	"strings"

	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

// buildQuestionMessage renders the user message every text processor
// sends: the plan's intent followed by the transcript window around the
// question's timestamp.
func buildQuestionMessage(p plan.Plan, w *transcript.Window) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write one question anchored at %s in the video.\n\n", transcript.FormatTimestamp(p.Timestamp))

	fmt.Fprintf(&b, "Learning objective: %s\n", p.LearningObjective)
	fmt.Fprintf(&b, "Content to test: %s\n", p.ContentContext)
	if len(p.KeyConcepts) > 0 {
		fmt.Fprintf(&b, "Key concepts: %s\n", strings.Join(p.KeyConcepts, ", "))
	}
	fmt.Fprintf(&b, "Cognitive level: %s\n", p.BloomLevel)
	fmt.Fprintf(&b, "Difficulty: %s\n", p.Difficulty)
	if p.Notes != "" {
		fmt.Fprintf(&b, "Planner notes: %s\n", p.Notes)
	}

	b.WriteString("\n")
	renderWindow(&b, w)

	return b.String()
}

func renderWindow(b *strings.Builder, w *transcript.Window) {
	fmt.Fprintf(b, "Transcript context (%s - %s):\n",
		transcript.FormatTimestamp(w.Start), transcript.FormatTimestamp(w.End))

	for _, seg := range w.Segments {
		fmt.Fprintf(b, "[%s - %s] %s\n",
			transcript.FormatTimestamp(seg.Start), transcript.FormatTimestamp(seg.End), seg.Text)
		if seg.VisualDescription != "" {
			fmt.Fprintf(b, "  (on screen: %s)\n", seg.VisualDescription)
		}
	}

	if len(w.Concepts) > 0 {
		fmt.Fprintf(b, "\nConcepts in play: %s\n", strings.Join(w.Concepts, ", "))
	}
	if w.VisualContext != "" {
		fmt.Fprintf(b, "At the question timestamp the screen shows: %s\n", w.VisualContext)
	}
}
