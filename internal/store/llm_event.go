package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
	"github.com/thinkwise-edu/thinkwise/ent/llmrequestevent"
	"github.com/thinkwise-edu/thinkwise/ent/predicate"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	q := r.client.LLMRequestEvent.Query().
		Where(llmEventPredicates(opts)...).
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEvent, len(rows))
	for i, e := range rows {
		out[i] = llmEventFromEnt(e)
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	ev := llmEventFromEnt(e)
	return &ev, nil
}

func (r *eventRepo) AppendGeneration(ctx context.Context, data GenerationLogData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AIGenerationLog.Create().
		SetSequence(seqNum).
		SetProblemType(string(data.ProblemType)).
		SetModel(data.Model).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetNillableProblemID(data.ProblemID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetCost(data.Cost).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save generation log: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationLog, error) {
	var preds []predicate.AIGenerationLog
	if opts.After > 0 {
		preds = append(preds, aigenerationlog.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, aigenerationlog.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, aigenerationlog.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, aigenerationlog.TimestampLTE(opts.To))
	}

	q := r.client.AIGenerationLog.Query().
		Where(preds...).
		Order(ent.Desc(aigenerationlog.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query generation logs: %w", err)
	}

	out := make([]GenerationLog, len(rows))
	for i, g := range rows {
		out[i] = GenerationLog{
			ID:        g.ID,
			Sequence:  g.Sequence,
			Timestamp: g.Timestamp,
			GenerationLogData: GenerationLogData{
				ProblemType:  exercise.Type(g.ProblemType),
				Model:        g.Model,
				Success:      g.Success,
				ErrorMessage: g.ErrorMessage,
				ProblemID:    g.ProblemID,
				InputTokens:  g.InputTokens,
				OutputTokens: g.OutputTokens,
				Cost:         g.Cost,
			},
		}
	}
	return out, nil
}

func llmEventPredicates(opts QueryOpts) []predicate.LLMRequestEvent {
	var preds []predicate.LLMRequestEvent
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To))
	}
	return preds
}

func llmEventFromEnt(e *ent.LLMRequestEvent) LLMRequestEvent {
	return LLMRequestEvent{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

type usageRow struct {
	Key          string  `json:"key"`
	Calls        int     `json:"calls"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	AvgLatency   float64 `json:"avg_latency"`
}

func (r *eventRepo) usageBy(ctx context.Context, field string) ([]usageRow, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Model        string  `json:"model"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatency   float64 `json:"avg_latency"`
	}
	err := r.client.LLMRequestEvent.Query().
		GroupBy(field).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("LLM usage by %s: %w", field, err)
	}

	out := make([]usageRow, len(rows))
	for i, row := range rows {
		key := row.Purpose
		if field == llmrequestevent.FieldModel {
			key = row.Model
		}
		out[i] = usageRow{
			Key:          key,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatency:   row.AvgLatency,
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Calls != out[j].Calls {
			return out[i].Calls > out[j].Calls
		}
		return out[i].Key < out[j].Key
	})
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	rows, err := r.usageBy(ctx, llmrequestevent.FieldPurpose)
	if err != nil {
		return nil, err
	}
	out := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = PurposeUsage{
			Purpose:      row.Key,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	rows, err := r.usageBy(ctx, llmrequestevent.FieldModel)
	if err != nil {
		return nil, err
	}
	out := make([]ModelUsage, len(rows))
	for i, row := range rows {
		out[i] = ModelUsage{
			Model:        row.Key,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}
