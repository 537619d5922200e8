package problemgen

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

// ErrBatchFailed is returned when a batch created no problem at all.
var ErrBatchFailed = errors.New("no problems were generated")

// BatchRequest asks for Count problems. Empty Subject or Difficulty in Input
// are drawn at random per item.
type BatchRequest struct {
	Input GenerateInput `json:"input"`
	Count int           `json:"count"`
}

// ItemError describes one failed batch item.
type ItemError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// BatchResult lists what a batch produced.
type BatchResult struct {
	Created []*exercise.Problem `json:"problems"`
	Errors  []ItemError         `json:"errors,omitempty"`
}

// Observer is told about every finished batch item.
type Observer interface {
	ObserveGenerated(problemType string, ok bool)
}

// Batch generates and stores problems one at a time under a throttle.
type Batch struct {
	gen      Generator
	problems store.ProblemRepo
	events   store.EventRepo
	limiter  *rate.Limiter
	maxCount int
	logger   *zap.Logger
	observer Observer

	intN func(int) int
}

// NewBatch creates a Batch. The limiter is shared by every Run so concurrent
// batches respect the same throttle.
func NewBatch(gen Generator, problems store.ProblemRepo, events store.EventRepo, cfg Config, logger *zap.Logger) *Batch {
	limit := rate.Inf
	if cfg.Throttle > 0 {
		limit = rate.Every(cfg.Throttle)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batch{
		gen:      gen,
		problems: problems,
		events:   events,
		limiter:  rate.NewLimiter(limit, 1),
		maxCount: cfg.MaxBatch,
		logger:   logger,
		intN:     rand.IntN,
	}
}

// SetObserver registers o to receive item outcomes.
func (b *Batch) SetObserver(o Observer) {
	b.observer = o
}

// MaxCount is the largest Count accepted by Run.
func (b *Batch) MaxCount() int {
	return b.maxCount
}

// Run generates req.Count problems. Failed items are logged and skipped.
// When nothing succeeds the result carries every item error and the
// returned error is ErrBatchFailed.
func (b *Batch) Run(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	if req.Count < 1 || (b.maxCount > 0 && req.Count > b.maxCount) {
		return nil, fmt.Errorf("%w: count must be between 1 and %d", ErrInvalidInput, b.maxCount)
	}
	if !req.Input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown problem type %q", ErrInvalidInput, req.Input.Type)
	}

	res := &BatchResult{}
	for i := range req.Count {
		if err := b.limiter.Wait(ctx); err != nil {
			return res, fmt.Errorf("batch interrupted after %d items: %w", i, err)
		}

		input := b.fill(req.Input)
		p, err := b.generateOne(ctx, input)
		if b.observer != nil {
			b.observer.ObserveGenerated(string(input.Type), err == nil)
		}
		if err != nil {
			b.logger.Warn("batch item failed",
				zap.Int("index", i),
				zap.String("type", string(input.Type)),
				zap.Error(err),
			)
			res.Errors = append(res.Errors, ItemError{Index: i, Message: err.Error()})
			b.logGeneration(ctx, store.GenerationLogData{
				ProblemType:  input.Type,
				Model:        b.gen.ModelID(),
				ErrorMessage: err.Error(),
			})
			continue
		}
		res.Created = append(res.Created, p)
	}

	if len(res.Created) == 0 {
		return res, ErrBatchFailed
	}
	return res, nil
}

func (b *Batch) fill(in GenerateInput) GenerateInput {
	if in.Subject == "" {
		subjects := Subjects[in.Type]
		in.Subject = subjects[b.intN(len(subjects))]
	}
	if in.Difficulty == "" {
		in.Difficulty = exercise.Difficulties[b.intN(len(exercise.Difficulties))]
	}
	return in
}

func (b *Batch) generateOne(ctx context.Context, in GenerateInput) (*exercise.Problem, error) {
	start := time.Now()
	out, err := b.gen.Generate(ctx, in)
	if err != nil {
		return nil, err
	}

	p, err := b.problems.Create(ctx, toProblem(in.withDefaults(), out))
	if err != nil {
		return nil, fmt.Errorf("save generated problem: %w", err)
	}

	var cost float64
	if c := llm.LookupCost(out.Model); c != nil {
		cost = c.Cost(out.Usage.InputTokens, out.Usage.OutputTokens)
	}
	id := p.ID
	b.logGeneration(ctx, store.GenerationLogData{
		ProblemType:  in.Type,
		Model:        out.Model,
		Success:      true,
		ProblemID:    &id,
		InputTokens:  out.Usage.InputTokens,
		OutputTokens: out.Usage.OutputTokens,
		Cost:         cost,
	})

	b.logger.Info("generated problem",
		zap.String("id", p.ID.String()),
		zap.String("type", string(p.Type)),
		zap.String("style", out.Prompt.Style),
		zap.Duration("took", time.Since(start)),
	)
	return p, nil
}

// logGeneration appends an audit record. A failed write never fails the item.
func (b *Batch) logGeneration(ctx context.Context, data store.GenerationLogData) {
	if b.events == nil {
		return
	}
	if err := b.events.AppendGeneration(ctx, data); err != nil {
		b.logger.Warn("failed to log generation", zap.Error(err))
	}
}

// toProblem maps a generated problem onto a new unreviewed, inactive problem.
func toProblem(in GenerateInput, res *Result) *exercise.Problem {
	g := res.Problem
	p := &exercise.Problem{
		Type:          in.Type,
		Format:        in.Format,
		Difficulty:    in.Difficulty,
		Title:         g.Title,
		Content:       g.Content,
		CorrectAnswer: g.CorrectAnswer,
		Explanation:   g.Explanation,
		Subject:       in.Subject,
		Grade:         in.Grade,
		Options:       g.Options,
		GeneratedBy:   exercise.SourceAI,
		Model:         res.Model,
	}
	// Steps are renumbered by position; replies sometimes repeat or skip numbers.
	for i, s := range g.Steps {
		p.Steps = append(p.Steps, exercise.Step{
			StepNumber:    i + 1,
			Title:         s.Title,
			Description:   s.Description,
			Hint:          s.Hint,
			Options:       s.Options,
			CorrectAnswer: s.CorrectAnswer,
		})
	}
	return p
}
