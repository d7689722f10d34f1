package qgen

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/progress"
	"vidquiz/internal/transcript"
)

// Router dispatches each plan to the processor for its question type,
// one goroutine per plan.
type Router struct {
	provider     llm.Provider
	processors   map[plan.QuestionType]Processor
	windowRadius int
	tracker      progress.Tracker
	log          *zap.Logger
}

// NewRouter creates a Router with the full processor set registered.
// windowRadius bounds the transcript context fed to each prompt, in
// seconds; <= 0 uses transcript.DefaultWindowRadius. tracker and log may
// be nil.
func NewRouter(provider llm.Provider, windowRadius int, tracker progress.Tracker, log *zap.Logger) *Router {
	if tracker == nil {
		tracker = progress.Nop()
	}
	if log == nil {
		log = zap.NewNop()
	}

	r := &Router{
		provider:     provider,
		processors:   make(map[plan.QuestionType]Processor),
		windowRadius: windowRadius,
		tracker:      tracker,
		log:          log,
	}
	r.register(MultipleChoiceProcessor{})
	r.register(TrueFalseProcessor{})
	r.register(MatchingProcessor{})
	r.register(SequencingProcessor{})
	r.register(NewHotspotProcessor(provider))
	return r
}

func (r *Router) register(p Processor) {
	r.processors[p.Type()] = p
}

// GenerateAll runs every plan to completion concurrently. Each plan
// settles as exactly one question or one recorded error; a failing plan
// never stops the others, so len(Questions)+len(Errors) always equals
// len(plans). Questions come back ordered by timestamp.
func (r *Router) GenerateAll(ctx context.Context, videoURI string, tr *transcript.Transcript, plans []plan.Plan) Result {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		res Result
	)

	for _, p := range plans {
		wg.Add(1)
		go func(p plan.Plan) {
			defer wg.Done()

			q, err := r.generateOne(ctx, videoURI, tr, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Errors = append(res.Errors, QuestionError{PlanID: p.ID, Type: p.Type, Err: err})
				return
			}
			res.Questions = append(res.Questions, q)
		}(p)
	}
	wg.Wait()

	sort.SliceStable(res.Questions, func(i, j int) bool {
		return res.Questions[i].Timestamp < res.Questions[j].Timestamp
	})

	return res
}

func (r *Router) generateOne(ctx context.Context, videoURI string, tr *transcript.Transcript, p plan.Plan) (*GeneratedQuestion, error) {
	proc, ok := r.processors[p.Type]
	if !ok {
		return nil, fmt.Errorf("no processor registered for type %q", p.Type)
	}

	r.publish(p, progress.StatusStarted, "")
	ctx = llm.WithPurpose(ctx, "generate:"+string(p.Type))

	w := tr.ExtractWindow(p.Timestamp, r.windowRadius)
	req := proc.BuildRequest(p, w)

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		r.publish(p, progress.StatusFailed, err.Error())
		return nil, fmt.Errorf("generation call failed: %w", err)
	}

	q, err := proc.Normalize(resp.Content, p)
	if err != nil {
		r.publish(p, progress.StatusFailed, err.Error())
		return nil, err
	}

	if vr, ok := proc.(visionResolver); ok {
		if err := vr.ResolveVision(ctx, q, p, videoURI); err != nil {
			r.publish(p, progress.StatusFailed, err.Error())
			return nil, err
		}
	}

	r.publish(p, progress.StatusCompleted, "")
	r.log.Debug("question generated",
		zap.String("plan_id", p.ID),
		zap.String("type", string(p.Type)),
		zap.Int("timestamp", q.Timestamp))
	return q, nil
}

func (r *Router) publish(p plan.Plan, status progress.Status, detail string) {
	r.tracker.Publish(progress.Event{
		Stage:      "generation",
		QuestionID: p.ID,
		Type:       string(p.Type),
		Status:     status,
		Detail:     detail,
		At:         time.Now(),
	})
}
