package plan

import (
	"fmt"
	"strings"
)

const analysisSystemPrompt = `You are an instructional designer analyzing an educational video to plan interactive quiz questions.

Work in two passes over the video:

1. TRANSCRIBE. Produce ordered, non-overlapping segments covering the whole video. For each segment give the spoken text, a description of what is visible on screen, and mark segments where something pedagogically notable happens (a diagram appears, a demonstration runs, code is shown). Build a concept timeline: every concept taught, when it is first mentioned, and when it is explained in depth. Write a short video summary.

2. PLAN QUESTIONS. Author a list of question plans, not finished questions. Each plan states what a question should teach (learning objective), the content it draws on, its key concepts, a Bloom taxonomy level, a difficulty, and the transcript span it references. Anchor each plan's timestamp AFTER the relevant explanation finishes, never during it.

Rules:
- All timestamps use MM:SS format.
- Every plan's transcript span must reference times inside the transcript you produced.
- Spread questions across the video; do not cluster them.
- Match Bloom levels to the content: recall questions for terminology, higher tiers where the video reasons or compares.
- hotspot plans additionally need a frame_timestamp (a moment when the target is clearly visible) and the target_objects the learner should identify. Only plan hotspot questions when the frame shows distinct, nameable objects.
- matching plans need content with 3-5 natural pairings; sequencing plans need a process with 3-6 ordered steps. Do not force these types onto unsuitable content.`

// buildAnalysisMessage constructs the user message from the planning request.
func buildAnalysisMessage(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the attached video and plan up to %d quiz questions.\n", req.MaxQuestions)
	fmt.Fprintf(&b, "Difficulty target: %s\n", req.Difficulty)

	if len(req.FocusTopics) > 0 {
		fmt.Fprintf(&b, "Focus on these topics where the video covers them: %s\n",
			strings.Join(req.FocusTopics, ", "))
	}

	if req.EnableVisualQuestions {
		b.WriteString("Visual (hotspot) questions are enabled; plan them where the video shows identifiable objects.\n")
	} else {
		b.WriteString("Do not plan hotspot questions.\n")
	}

	if len(req.Distribution) > 0 {
		b.WriteString("Preferred question type mix (relative weights):\n")
		for _, t := range AllTypes {
			if w, ok := req.Distribution[string(t)]; ok && w > 0 {
				fmt.Fprintf(&b, "- %s: %.2f\n", t, w)
			}
		}
	}

	return b.String()
}
