package storage

import (
	"context"
	"fmt"
	"sort"

	"vidquiz/ent"
	"vidquiz/ent/llmrequestevent"
	"vidquiz/internal/llm"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ llm.EventSink = (*eventRepo)(nil)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, log llm.RequestLog) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(log.Provider).
		SetModel(log.Model).
		SetPurpose(log.Purpose).
		SetInputTokens(log.InputTokens).
		SetOutputTokens(log.OutputTokens).
		SetLatencyMs(log.LatencyMs).
		SetSuccess(log.Success).
		SetErrorMessage(log.ErrorMessage).
		SetRequestBody(log.RequestBody).
		SetResponseBody(log.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) Recent(ctx context.Context, limit int) ([]StoredEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	out := make([]StoredEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, toStoredEvent(ev))
	}
	return out, nil
}

func (r *eventRepo) Get(ctx context.Context, sequence int64) (*StoredEvent, error) {
	ev, err := r.client.LLMRequestEvent.Query().
		Where(llmrequestevent.Sequence(sequence)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request event %d: %w", sequence, err)
	}
	st := toStoredEvent(ev)
	return &st, nil
}

func toStoredEvent(ev *ent.LLMRequestEvent) StoredEvent {
	return StoredEvent{
		Sequence:     ev.Sequence,
		Timestamp:    ev.Timestamp,
		Provider:     ev.Provider,
		Model:        ev.Model,
		Purpose:      ev.Purpose,
		InputTokens:  ev.InputTokens,
		OutputTokens: ev.OutputTokens,
		LatencyMs:    ev.LatencyMs,
		Success:      ev.Success,
		ErrorMessage: ev.ErrorMessage,
		RequestBody:  ev.RequestBody,
		ResponseBody: ev.ResponseBody,
	}
}

func (r *eventRepo) Stats(ctx context.Context) ([]UsageStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	type key struct {
		provider string
		purpose  string
	}
	agg := make(map[key]*UsageStat)
	for _, ev := range events {
		k := key{provider: ev.Provider, purpose: ev.Purpose}
		stat, ok := agg[k]
		if !ok {
			stat = &UsageStat{Provider: ev.Provider, Purpose: ev.Purpose}
			agg[k] = stat
		}
		stat.Requests++
		if !ev.Success {
			stat.Failures++
		}
		stat.InputTokens += ev.InputTokens
		stat.OutputTokens += ev.OutputTokens
	}

	out := make([]UsageStat, 0, len(agg))
	for _, stat := range agg {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Provider != out[j].Provider {
			return out[i].Provider < out[j].Provider
		}
		return out[i].Purpose < out[j].Purpose
	})
	return out, nil
}

func (r *eventRepo) StatsByModel(ctx context.Context) ([]ModelStat, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM request events: %w", err)
	}

	agg := make(map[string]*ModelStat)
	for _, ev := range events {
		stat, ok := agg[ev.Model]
		if !ok {
			stat = &ModelStat{Model: ev.Model}
			agg[ev.Model] = stat
		}
		stat.Requests++
		stat.InputTokens += ev.InputTokens
		stat.OutputTokens += ev.OutputTokens
	}

	out := make([]ModelStat, 0, len(agg))
	for _, stat := range agg {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
