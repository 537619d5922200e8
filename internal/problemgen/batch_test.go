package problemgen

import (
	"context"
	"errors"
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestBatch(t *testing.T, mock *llm.MockProvider) (*Batch, *store.Store) {
	t.Helper()
	s := openTestStore(t)
	cfg := DefaultConfig()
	cfg.Throttle = 0
	gen := New(mock, seeded(), cfg, nil)
	return NewBatch(gen, s.Problems(), s.EventRepo(), cfg, nil), s
}

func TestBatch_CreatesUnreviewedProblems(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: decompositionReply(3), Usage: llm.Usage{InputTokens: 100, OutputTokens: 50}},
		llm.MockResponse{Text: decompositionReply(2)},
	)
	b, s := newTestBatch(t, mock)
	ctx := context.Background()

	res, err := b.Run(ctx, BatchRequest{Input: easyDecomposition(), Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Created) != 2 || len(res.Errors) != 0 {
		t.Fatalf("expected 2 created and no errors, got %d / %v", len(res.Created), res.Errors)
	}

	for _, p := range res.Created {
		if p.Reviewed || p.Active {
			t.Errorf("generated problem %s must start unreviewed and inactive", p.ID)
		}
		if p.GeneratedBy != exercise.SourceAI || p.Model != "mock" {
			t.Errorf("unexpected source %q / model %q", p.GeneratedBy, p.Model)
		}
		stored, err := s.Problems().Get(ctx, p.ID)
		if err != nil {
			t.Fatalf("get %s: %v", p.ID, err)
		}
		for i, step := range stored.Steps {
			if step.StepNumber != i+1 {
				t.Errorf("step %d stored as number %d", i, step.StepNumber)
			}
		}
	}

	logs, err := s.EventRepo().QueryGenerations(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query generations: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 generation logs, got %d", len(logs))
	}
	for _, l := range logs {
		if !l.Success || l.ProblemID == nil {
			t.Errorf("expected successful log with problem id, got %+v", l)
		}
	}
}

// Five failing items create nothing and report every failure.
func TestBatch_AllItemsFail(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 5 {
		mock.AddResponse(llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 400, Body: "API key not valid"}})
	}
	b, s := newTestBatch(t, mock)
	ctx := context.Background()

	res, err := b.Run(ctx, BatchRequest{Input: easyDecomposition(), Count: 5})
	if !errors.Is(err, ErrBatchFailed) {
		t.Fatalf("expected ErrBatchFailed, got %v", err)
	}
	if len(res.Created) != 0 {
		t.Fatalf("expected 0 created, got %d", len(res.Created))
	}
	if len(res.Errors) != 5 {
		t.Fatalf("expected 5 item errors, got %d", len(res.Errors))
	}
	for i, e := range res.Errors {
		if e.Index != i || e.Message == "" {
			t.Errorf("unexpected item error %+v", e)
		}
	}

	logs, err := s.EventRepo().QueryGenerations(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query generations: %v", err)
	}
	if len(logs) != 5 {
		t.Fatalf("expected 5 failure logs, got %d", len(logs))
	}
	for _, l := range logs {
		if l.Success || l.ErrorMessage == "" {
			t.Errorf("expected failure log with message, got %+v", l)
		}
	}
}

func TestBatch_PartialFailureContinues(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "garbage"},
		llm.MockResponse{Text: flatReply},
	)
	b, _ := newTestBatch(t, mock)

	in := GenerateInput{Type: exercise.TypeVerification, Grade: 4}
	res, err := b.Run(context.Background(), BatchRequest{Input: in, Count: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Created) != 1 || len(res.Errors) != 1 || res.Errors[0].Index != 0 {
		t.Fatalf("unexpected result: created=%d errors=%v", len(res.Created), res.Errors)
	}

	// Subject and difficulty were drawn for the item.
	p := res.Created[0]
	if p.Subject == "" || !p.Difficulty.Valid() {
		t.Fatalf("expected drawn subject and difficulty, got %q / %q", p.Subject, p.Difficulty)
	}
}

func TestBatch_RejectsBadCount(t *testing.T) {
	b, _ := newTestBatch(t, llm.NewMockProvider())
	for _, n := range []int{0, 11} {
		_, err := b.Run(context.Background(), BatchRequest{Input: easyDecomposition(), Count: n})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("count %d: expected ErrInvalidInput, got %v", n, err)
		}
	}
}

func TestBatch_StopsOnCancel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: decompositionReply(3)})
	b, _ := newTestBatch(t, mock)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := b.Run(ctx, BatchRequest{Input: easyDecomposition(), Count: 3})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider call, got %d", mock.CallCount())
	}
}
