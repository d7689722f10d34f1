package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/qgen"
)

const verifySystemPrompt = `You are a strict reviewer of quiz questions for educational videos.

You receive one question, its answer structure, and the intent it was
written against. Score it on six dimensions, 0-100 each:

- educational_value: answering it should advance the learning objective,
  not just occupy the learner.
- clarity_precision: one defensible reading; no ambiguity, no trick
  wording.
- cognitive_appropriateness: the difficulty fits the stated level.
- taxonomy_alignment: the task the learner performs matches the stated
  Bloom level (a "remember" question must not demand analysis, and vice
  versa).
- misconception_handling: wrong options or false statements reflect
  real misconceptions about the content.
- explanation_quality: the explanation teaches why, not merely which.

Score honestly. A competent but unremarkable question lands in the 70s.
Reserve 90+ for questions you would keep in a curated bank.`

// Config controls the Verifier.
type Config struct {
	// Concurrency bounds how many verdicts run at once.
	Concurrency int64

	// Delay is an optional pause before each call, spreading load on
	// the provider.
	Delay time.Duration

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the recommended verifier settings.
func DefaultConfig() Config {
	return Config{
		Concurrency: 2,
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// Verifier scores generated questions against the quality rubric.
type Verifier struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates a Verifier. log may be nil.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Verifier {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConfig().Concurrency
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Verifier{provider: provider, cfg: cfg, log: log}
}

// VerifyAll scores every question. Per-question failures are collected
// in the report and never abort the batch; every question settles as
// exactly one Result or one VerifyError.
func (v *Verifier) VerifyAll(ctx context.Context, questions []*qgen.GeneratedQuestion, plans []plan.Plan) Report {
	byID := make(map[string]plan.Plan, len(plans))
	for _, p := range plans {
		byID[p.ID] = p
	}

	sem := semaphore.NewWeighted(v.cfg.Concurrency)
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		report Report
	)

	for _, q := range questions {
		wg.Add(1)
		go func(q *qgen.GeneratedQuestion) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				mu.Lock()
				report.Errors = append(report.Errors, VerifyError{QuestionID: q.ID, Err: err})
				mu.Unlock()
				return
			}
			defer sem.Release(1)

			p, ok := byID[q.PlanID]
			if !ok {
				mu.Lock()
				report.Errors = append(report.Errors, VerifyError{
					QuestionID: q.ID,
					Err:        fmt.Errorf("no plan with id %q", q.PlanID),
				})
				mu.Unlock()
				return
			}

			res, err := v.verifyOne(ctx, q, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Errors = append(report.Errors, VerifyError{QuestionID: q.ID, Err: err})
				return
			}
			report.Results = append(report.Results, *res)
		}(q)
	}
	wg.Wait()

	return report
}

type dimensionOutput struct {
	Score      int      `json:"score"`
	Assessment string   `json:"assessment"`
	Evidence   []string `json:"evidence"`
	Concerns   []string `json:"concerns"`
}

type verifyOutput struct {
	Dimensions        map[string]dimensionOutput `json:"dimensions"`
	OverallScore      int                        `json:"overall_score"`
	OverallAssessment string                     `json:"overall_assessment"`
	Strengths         []string                   `json:"strengths"`
	Improvements      []string                   `json:"improvements"`
	Confidence        float64                    `json:"confidence"`
}

func (v *Verifier) verifyOne(ctx context.Context, q *qgen.GeneratedQuestion, p plan.Plan) (*Result, error) {
	ctx = llm.WithPurpose(ctx, "verify")

	if v.cfg.Delay > 0 {
		timer := time.NewTimer(v.cfg.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	req := llm.Request{
		System:      verifySystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildVerifyMessage(q, p)}},
		Schema:      VerificationSchema,
		MaxTokens:   v.cfg.MaxTokens,
		Temperature: v.cfg.Temperature,
	}

	resp, err := v.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("verification call failed: %w", err)
	}

	var out verifyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse verification response: %w", err)
	}

	res, err := convertResult(q.ID, out)
	if err != nil {
		return nil, err
	}

	v.log.Debug("question verified",
		zap.String("question_id", q.ID),
		zap.Int("overall", res.OverallScore),
		zap.Bool("passed", res.Passed))
	return res, nil
}

func convertResult(questionID string, out verifyOutput) (*Result, error) {
	if out.OverallScore < 0 || out.OverallScore > 100 {
		return nil, fmt.Errorf("overall score %d out of range", out.OverallScore)
	}
	if strings.TrimSpace(out.OverallAssessment) == "" {
		return nil, fmt.Errorf("empty overall assessment")
	}

	dims := make(map[string]Dimension, len(AllDimensions))
	passed := out.OverallScore >= OverallThreshold
	for _, name := range AllDimensions {
		d, ok := out.Dimensions[name]
		if !ok {
			return nil, fmt.Errorf("missing dimension %q", name)
		}
		if d.Score < 0 || d.Score > 100 {
			return nil, fmt.Errorf("dimension %q score %d out of range", name, d.Score)
		}
		if strings.TrimSpace(d.Assessment) == "" {
			return nil, fmt.Errorf("dimension %q has no assessment", name)
		}
		if d.Score < DimensionThreshold {
			passed = false
		}
		dims[name] = Dimension{
			Score:      d.Score,
			Assessment: d.Assessment,
			Evidence:   d.Evidence,
			Concerns:   d.Concerns,
		}
	}

	return &Result{
		QuestionID:        questionID,
		OverallScore:      out.OverallScore,
		Dimensions:        dims,
		OverallAssessment: out.OverallAssessment,
		Strengths:         out.Strengths,
		Improvements:      out.Improvements,
		Confidence:        out.Confidence,
		Passed:            passed,
	}, nil
}

func buildVerifyMessage(q *qgen.GeneratedQuestion, p plan.Plan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question type: %s\n", q.Type)
	fmt.Fprintf(&b, "Question: %s\n", q.Question)
	renderAnswer(&b, q)
	fmt.Fprintf(&b, "Explanation: %s\n", q.Explanation)

	b.WriteString("\nIntent this question was written against:\n")
	fmt.Fprintf(&b, "Learning objective: %s\n", p.LearningObjective)
	fmt.Fprintf(&b, "Content: %s\n", p.ContentContext)
	fmt.Fprintf(&b, "Bloom level: %s\n", p.BloomLevel)
	fmt.Fprintf(&b, "Difficulty: %s\n", p.Difficulty)

	return b.String()
}

func renderAnswer(b *strings.Builder, q *qgen.GeneratedQuestion) {
	switch {
	case q.MultipleChoice != nil:
		for i, opt := range q.MultipleChoice.Options {
			marker := " "
			if i == q.MultipleChoice.CorrectIndex {
				marker = "*"
			}
			fmt.Fprintf(b, "%s %d. %s\n", marker, i+1, opt)
		}
	case q.TrueFalse != nil:
		fmt.Fprintf(b, "Answer: %t\n", q.TrueFalse.Answer)
	case q.Matching != nil:
		for _, pr := range q.Matching.Pairs {
			fmt.Fprintf(b, "- %s -> %s\n", pr.Left, pr.Right)
		}
	case q.Sequencing != nil:
		for i, item := range q.Sequencing.Items {
			fmt.Fprintf(b, "%d. %s\n", i+1, item)
		}
	case q.Hotspot != nil:
		fmt.Fprintf(b, "Targets: %s\n", strings.Join(q.Hotspot.TargetObjects, ", "))
		for _, box := range q.Hotspot.Boxes {
			marker := " "
			if box.Correct {
				marker = "*"
			}
			fmt.Fprintf(b, "%s box %q at (%.2f, %.2f)\n", marker, box.Label, box.X, box.Y)
		}
	}
}
