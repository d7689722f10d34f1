package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vidquiz/internal/config"
	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/progress"
	"vidquiz/internal/qgen"
	"vidquiz/internal/storage"
	"vidquiz/internal/transcript"
	"vidquiz/internal/verify"
)

// Request describes one pipeline run.
type Request struct {
	CourseID       string
	VideoSourceURL string

	// MaxQuestions caps the plan count. Zero uses the configured default.
	MaxQuestions int

	Difficulty  string
	FocusTopics []string

	EnableVisualQuestions     bool
	EnableQualityVerification bool

	// QuestionDistribution maps canonical type tags to relative
	// weights. Empty lets the planner choose freely.
	QuestionDistribution map[string]float64
}

// PlanningReport summarizes the planning stage.
type PlanningReport struct {
	Planned int
	Errors  []string
}

// GenerationReport summarizes the generation stage.
type GenerationReport struct {
	Requested     int
	Succeeded     int
	TypeBreakdown map[string]int
	Errors        []string
}

// VerificationReport summarizes the verification stage.
type VerificationReport struct {
	Enabled  bool
	Verified int
	Passed   int
	Rejected int
	Errors   []string
}

// StorageReport summarizes the transform and persist steps.
type StorageReport struct {
	Persisted bool
	Errors    []string
}

// Metadata carries run-level accounting.
type Metadata struct {
	TotalTimeMs         int64
	StageTimings        map[string]int64
	ErrorCount          int
	SuccessRate         float64
	VerificationEnabled bool
}

// Response is the settled outcome of a run. Success is false only when
// planning produced nothing to work with; a run that loses questions
// along the way still succeeds with what survived.
type Response struct {
	Success       bool
	VideoSummary  string
	TotalDuration int // video duration, seconds

	Planning     PlanningReport
	Generation   GenerationReport
	Verification VerificationReport
	Storage      StorageReport

	FinalQuestions []storage.Row
	Metadata       Metadata
}

// Options wires a Pipeline together.
type Options struct {
	Provider llm.Provider
	Config   config.Pipeline

	// Questions persists the final rows. Nil disables persistence.
	Questions storage.QuestionRepo

	Tracker progress.Tracker
	Logger  *zap.Logger
}

// Pipeline orchestrates planning, generation, verification, and
// storage. Stage boundaries are strict barriers: a stage starts only
// after the previous one fully settles.
type Pipeline struct {
	planner   *plan.Service
	router    *qgen.Router
	verifier  *verify.Verifier
	questions storage.QuestionRepo
	cfg       config.Pipeline
	tracker   progress.Tracker
	log       *zap.Logger
}

// New creates a Pipeline from the given options.
func New(opts Options) *Pipeline {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	tracker := opts.Tracker
	if tracker == nil {
		tracker = progress.Nop()
	}

	vcfg := verify.DefaultConfig()
	if opts.Config.VerifyConcurrency > 0 {
		vcfg.Concurrency = opts.Config.VerifyConcurrency
	}
	vcfg.Delay = opts.Config.VerifyDelay

	return &Pipeline{
		planner:   plan.NewService(opts.Provider, plan.DefaultConfig(), log),
		router:    qgen.NewRouter(opts.Provider, opts.Config.WindowRadius, tracker, log),
		verifier:  verify.New(opts.Provider, vcfg, log),
		questions: opts.Questions,
		cfg:       opts.Config,
		tracker:   tracker,
		log:       log,
	}
}

// Run executes the full pipeline. Context cancellation aborts in-flight
// model calls, but questions already completed are kept: the response
// reports what survived rather than discarding finished work.
func (p *Pipeline) Run(ctx context.Context, req Request) *Response {
	start := time.Now()
	resp := &Response{
		Verification: VerificationReport{Enabled: req.EnableQualityVerification},
		Metadata: Metadata{
			StageTimings:        make(map[string]int64),
			VerificationEnabled: req.EnableQualityVerification,
		},
	}

	plans, tr := p.runPlanning(ctx, req, resp)
	if len(plans) == 0 {
		resp.Metadata.TotalTimeMs = time.Since(start).Milliseconds()
		resp.Metadata.ErrorCount = p.countErrors(resp)
		return resp
	}
	resp.Success = true

	questions := p.runGeneration(ctx, req, tr, plans, resp)
	questions = p.runVerification(ctx, req, questions, plans, resp)
	p.runStorage(ctx, req, questions, resp)

	resp.Metadata.TotalTimeMs = time.Since(start).Milliseconds()
	resp.Metadata.ErrorCount = p.countErrors(resp)
	if len(plans) > 0 {
		resp.Metadata.SuccessRate = float64(len(resp.FinalQuestions)) / float64(len(plans))
	}
	return resp
}

func (p *Pipeline) runPlanning(ctx context.Context, req Request, resp *Response) ([]plan.Plan, *transcript.Transcript) {
	stageStart := time.Now()
	defer func() {
		resp.Metadata.StageTimings["planning"] = time.Since(stageStart).Milliseconds()
	}()

	p.publishStage("planning", progress.StatusStarted, "")

	maxQuestions := req.MaxQuestions
	if maxQuestions <= 0 {
		maxQuestions = p.cfg.MaxQuestions
	}

	difficulty, err := plan.ParseDifficulty(req.Difficulty)
	if err != nil {
		p.publishStage("planning", progress.StatusFailed, err.Error())
		resp.Planning.Errors = append(resp.Planning.Errors, err.Error())
		return nil, nil
	}

	result, err := p.planner.Plan(ctx, plan.Request{
		VideoURI:              req.VideoSourceURL,
		MaxQuestions:          maxQuestions,
		Difficulty:            difficulty,
		FocusTopics:           req.FocusTopics,
		EnableVisualQuestions: req.EnableVisualQuestions,
		Distribution:          req.QuestionDistribution,
	})
	if err != nil {
		p.publishStage("planning", progress.StatusFailed, err.Error())
		resp.Planning.Errors = append(resp.Planning.Errors, err.Error())

		var noPlans *plan.ErrNoPlans
		if errors.As(err, &noPlans) {
			for _, se := range noPlans.Errors {
				resp.Planning.Errors = append(resp.Planning.Errors, se.Error())
			}
		}
		return nil, nil
	}

	for _, se := range result.Errors {
		resp.Planning.Errors = append(resp.Planning.Errors, se.Error())
	}
	resp.Planning.Planned = len(result.Plans)
	resp.VideoSummary = result.Summary
	resp.TotalDuration = result.Transcript.Duration()

	p.publishStage("planning", progress.StatusCompleted, "")
	p.log.Info("planning complete",
		zap.Int("plans", len(result.Plans)),
		zap.Int("rejected", len(result.Errors)),
		zap.Int("video_seconds", resp.TotalDuration))
	return result.Plans, result.Transcript
}

func (p *Pipeline) runGeneration(ctx context.Context, req Request, tr *transcript.Transcript, plans []plan.Plan, resp *Response) []*qgen.GeneratedQuestion {
	stageStart := time.Now()
	defer func() {
		resp.Metadata.StageTimings["generation"] = time.Since(stageStart).Milliseconds()
	}()

	p.publishStage("generation", progress.StatusStarted, "")

	result := p.router.GenerateAll(ctx, req.VideoSourceURL, tr, plans)

	resp.Generation.Requested = len(plans)
	resp.Generation.Succeeded = len(result.Questions)
	resp.Generation.TypeBreakdown = make(map[string]int)
	for _, q := range result.Questions {
		resp.Generation.TypeBreakdown[string(q.Type)]++
	}
	for _, qerr := range result.Errors {
		resp.Generation.Errors = append(resp.Generation.Errors, qerr.Error())
	}

	p.publishStage("generation", progress.StatusCompleted, "")
	p.log.Info("generation complete",
		zap.Int("requested", len(plans)),
		zap.Int("succeeded", len(result.Questions)))
	return result.Questions
}

func (p *Pipeline) runVerification(ctx context.Context, req Request, questions []*qgen.GeneratedQuestion, plans []plan.Plan, resp *Response) []*qgen.GeneratedQuestion {
	if !req.EnableQualityVerification || len(questions) == 0 {
		return questions
	}

	stageStart := time.Now()
	defer func() {
		resp.Metadata.StageTimings["verification"] = time.Since(stageStart).Milliseconds()
	}()

	p.publishStage("verification", progress.StatusStarted, "")

	report := p.verifier.VerifyAll(ctx, questions, plans)
	resp.Verification.Verified = len(report.Results)

	verdicts := make(map[string]verify.Result, len(report.Results))
	for _, res := range report.Results {
		verdicts[res.QuestionID] = res
	}
	for _, verr := range report.Errors {
		resp.Verification.Errors = append(resp.Verification.Errors, verr.Error())
	}

	// A question whose verification errored is kept: an unavailable
	// reviewer is not evidence against the question. Only an explicit
	// failing verdict rejects it.
	kept := make([]*qgen.GeneratedQuestion, 0, len(questions))
	for _, q := range questions {
		res, ok := verdicts[q.ID]
		if ok && !res.Passed {
			resp.Verification.Rejected++
			resp.Verification.Errors = append(resp.Verification.Errors,
				fmt.Sprintf("question %s rejected: score %d: %s", q.ID, res.OverallScore, res.OverallAssessment))
			continue
		}
		if ok {
			resp.Verification.Passed++
		}
		kept = append(kept, q)
	}

	p.publishStage("verification", progress.StatusCompleted, "")
	p.log.Info("verification complete",
		zap.Int("verified", resp.Verification.Verified),
		zap.Int("passed", resp.Verification.Passed),
		zap.Int("rejected", resp.Verification.Rejected))
	return kept
}

func (p *Pipeline) runStorage(ctx context.Context, req Request, questions []*qgen.GeneratedQuestion, resp *Response) {
	stageStart := time.Now()
	defer func() {
		resp.Metadata.StageTimings["storage"] = time.Since(stageStart).Milliseconds()
	}()

	p.publishStage("storage", progress.StatusStarted, "")

	rows, errs := storage.TransformAll(questions)
	for _, err := range errs {
		resp.Storage.Errors = append(resp.Storage.Errors, err.Error())
	}
	resp.FinalQuestions = rows

	if p.questions == nil || len(rows) == 0 {
		p.publishStage("storage", progress.StatusCompleted, "")
		return
	}

	batch := storage.Batch{
		CourseID: req.CourseID,
		VideoURL: req.VideoSourceURL,
		Rows:     rows,
	}
	if err := p.questions.SaveBatch(ctx, batch); err != nil {
		// The run still reports its questions; only persistence failed.
		resp.Storage.Errors = append(resp.Storage.Errors, err.Error())
		p.publishStage("storage", progress.StatusFailed, err.Error())
		p.log.Error("persist batch failed", zap.Error(err))
		return
	}
	resp.Storage.Persisted = true

	p.publishStage("storage", progress.StatusCompleted, "")
}

func (p *Pipeline) publishStage(stage string, status progress.Status, detail string) {
	p.tracker.Publish(progress.Event{
		Stage:  stage,
		Status: status,
		Detail: detail,
		At:     time.Now(),
	})
}

func (p *Pipeline) countErrors(resp *Response) int {
	return len(resp.Planning.Errors) +
		len(resp.Generation.Errors) +
		len(resp.Verification.Errors) +
		len(resp.Storage.Errors)
}
