package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vidquiz/internal/llm"
	"vidquiz/internal/transcript"
)

// Request carries the caller's constraints into the planning stage.
type Request struct {
	VideoURI              string
	MaxQuestions          int
	Difficulty            Difficulty
	FocusTopics           []string
	EnableVisualQuestions bool

	// Distribution maps canonical type tags to relative weights. Empty
	// means the model chooses freely.
	Distribution map[string]float64
}

// Result is the planning stage output: the transcript, the surviving
// plans, and one StageError per dropped plan.
type Result struct {
	Transcript *transcript.Transcript
	Summary    string
	Plans      []Plan
	Errors     []StageError
}

// Config controls the planning call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns planning defaults. The response carries a full
// transcript, so the token budget is large.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   16384,
		Temperature: 0.4,
	}
}

// Service runs the planning stage: one large multimodal request that
// returns the transcript and the question plans.
type Service struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// NewService creates a planning service.
func NewService(provider llm.Provider, cfg Config, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, log: log}
}

// Wire types. Timestamps here are the MM:SS strings the model emits;
// conversion to seconds happens in convert() and nowhere else.
type analysisOutput struct {
	TranscriptSegments []segmentOutput `json:"transcript_segments"`
	ConceptTimeline    []conceptOutput `json:"concept_timeline"`
	VideoSummary       string          `json:"video_summary"`
	QuestionPlans      []rawPlan       `json:"question_plans"`
}

type segmentOutput struct {
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	SpokenText        string `json:"spoken_text"`
	VisualDescription string `json:"visual_description"`
	SalientEvent      bool   `json:"salient_event"`
	EventType         string `json:"event_type"`
}

type conceptOutput struct {
	Concept      string   `json:"concept"`
	FirstMention string   `json:"first_mention"`
	Explanations []string `json:"explanations"`
}

type rawPlan struct {
	QuestionType      string   `json:"question_type"`
	Timestamp         string   `json:"timestamp"`
	LearningObjective string   `json:"learning_objective"`
	ContentContext    string   `json:"content_context"`
	KeyConcepts       []string `json:"key_concepts"`
	BloomLevel        string   `json:"bloom_level"`
	Difficulty        string   `json:"difficulty"`
	Rationale         string   `json:"rationale"`
	TranscriptStart   string   `json:"transcript_start"`
	TranscriptEnd     string   `json:"transcript_end"`
	FrameTimestamp    string   `json:"frame_timestamp"`
	TargetObjects     []string `json:"target_objects"`
}

// Plan issues the analysis request and validates its output. The stage
// succeeds if at least one valid plan remains; otherwise it fails with
// ErrNoPlans.
func (s *Service) Plan(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "planning")

	if req.MaxQuestions <= 0 {
		req.MaxQuestions = 10
	}
	if req.Difficulty == "" {
		req.Difficulty = DifficultyMedium
	}

	llmReq := llm.Request{
		System: analysisSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAnalysisMessage(req)},
		},
		Schema:      AnalysisSchema,
		Video:       &llm.VideoInput{URI: req.VideoURI},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("video analysis failed: %w", err)
	}
	s.log.Info("planning response received",
		zap.String("provider", resp.Provider),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("output_tokens", resp.Usage.OutputTokens))

	var raw analysisOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	return s.convert(raw, req)
}

// convert maps the wire shape to domain types, converting every MM:SS
// string to seconds and dropping plans that fail structural validation.
// The request constraints are enforced here, not just in the prompt: a
// model that ignores them must not leak extra plans or disabled types
// into generation.
func (s *Service) convert(raw analysisOutput, req Request) (*Result, error) {
	tr, err := convertTranscript(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Transcript: tr,
		Summary:    raw.VideoSummary,
	}

	for i, rp := range raw.QuestionPlans {
		p, perr := convertPlan(rp, tr)
		if perr != nil {
			stageErr := StageError{
				PlanID: fmt.Sprintf("plan-%d", i+1),
				Reason: perr.Error(),
			}
			result.Errors = append(result.Errors, stageErr)
			s.log.Warn("dropping invalid question plan",
				zap.Int("index", i),
				zap.String("reason", perr.Error()))
			continue
		}

		if p.Type == TypeHotspot && !req.EnableVisualQuestions {
			result.Errors = append(result.Errors, StageError{
				PlanID: p.ID,
				Reason: "visual questions disabled for this run",
			})
			s.log.Warn("dropping hotspot plan, visual questions disabled",
				zap.Int("index", i))
			continue
		}
		if len(result.Plans) == req.MaxQuestions {
			result.Errors = append(result.Errors, StageError{
				PlanID: p.ID,
				Reason: fmt.Sprintf("exceeds requested maximum of %d questions", req.MaxQuestions),
			})
			s.log.Warn("dropping plan beyond question budget",
				zap.Int("index", i),
				zap.Int("max_questions", req.MaxQuestions))
			continue
		}

		result.Plans = append(result.Plans, *p)
	}

	if len(result.Plans) == 0 {
		return nil, &ErrNoPlans{Errors: result.Errors}
	}

	return result, nil
}

func convertTranscript(raw analysisOutput) (*transcript.Transcript, error) {
	if len(raw.TranscriptSegments) == 0 {
		return nil, fmt.Errorf("analysis returned an empty transcript")
	}

	tr := &transcript.Transcript{Summary: raw.VideoSummary}

	for i, seg := range raw.TranscriptSegments {
		start, err := transcript.ParseTimestamp(seg.StartTime)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		end, err := transcript.ParseTimestamp(seg.EndTime)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		if end < start {
			return nil, fmt.Errorf("segment %d: end %d before start %d", i, end, start)
		}
		tr.Segments = append(tr.Segments, transcript.Segment{
			Start:             start,
			End:               end,
			Text:              seg.SpokenText,
			VisualDescription: seg.VisualDescription,
			SalientEvent:      seg.SalientEvent,
			EventType:         seg.EventType,
		})
	}

	for _, c := range raw.ConceptTimeline {
		first, err := transcript.ParseTimestamp(c.FirstMention)
		if err != nil {
			// A bad concept entry degrades context quality but doesn't
			// invalidate the transcript; skip it.
			continue
		}
		entry := transcript.ConceptEntry{Concept: c.Concept, FirstMention: first}
		for _, e := range c.Explanations {
			ts, err := transcript.ParseTimestamp(e)
			if err != nil {
				continue
			}
			entry.Explanations = append(entry.Explanations, ts)
		}
		tr.Concepts = append(tr.Concepts, entry)
	}

	return tr, nil
}

func convertPlan(rp rawPlan, tr *transcript.Transcript) (*Plan, error) {
	qt, err := ParseType(rp.QuestionType)
	if err != nil {
		return nil, err
	}

	ts, err := transcript.ParseTimestamp(rp.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}

	refStart, err := transcript.ParseTimestamp(rp.TranscriptStart)
	if err != nil {
		return nil, fmt.Errorf("transcript_start: %w", err)
	}
	refEnd, err := transcript.ParseTimestamp(rp.TranscriptEnd)
	if err != nil {
		return nil, fmt.Errorf("transcript_end: %w", err)
	}
	if refEnd < refStart {
		return nil, fmt.Errorf("transcript reference end %d before start %d", refEnd, refStart)
	}
	if !tr.Contains(refStart) || !tr.Contains(refEnd) {
		return nil, fmt.Errorf("transcript reference [%d,%d] outside video range [0,%d]",
			refStart, refEnd, tr.Duration())
	}

	bloom, err := ParseBloomLevel(rp.BloomLevel)
	if err != nil {
		return nil, err
	}

	diff, err := ParseDifficulty(rp.Difficulty)
	if err != nil {
		return nil, err
	}

	if rp.LearningObjective == "" {
		return nil, fmt.Errorf("missing learning objective")
	}

	p := &Plan{
		ID:                uuid.NewString(),
		Timestamp:         ts,
		Type:              qt,
		LearningObjective: rp.LearningObjective,
		ContentContext:    rp.ContentContext,
		KeyConcepts:       rp.KeyConcepts,
		BloomLevel:        bloom,
		Difficulty:        diff,
		Notes:             rp.Rationale,
		TranscriptRef:     TranscriptRef{Start: refStart, End: refEnd},
	}

	if qt == TypeHotspot {
		if rp.FrameTimestamp == "" {
			return nil, fmt.Errorf("hotspot plan missing frame_timestamp")
		}
		frame, err := transcript.ParseTimestamp(rp.FrameTimestamp)
		if err != nil {
			return nil, fmt.Errorf("frame_timestamp: %w", err)
		}
		if len(rp.TargetObjects) == 0 {
			return nil, fmt.Errorf("hotspot plan missing target_objects")
		}
		p.FrameTimestamp = frame
		p.TargetObjects = rp.TargetObjects
	}

	return p, nil
}
