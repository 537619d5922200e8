package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/store"
)

type recordingRepo struct {
	store.EventRepo // unimplemented methods panic
	events          []store.LLMRequestEventData
	failWith        error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Text: `{"score":70}`, Usage: Usage{InputTokens: 12, OutputTokens: 4}})
	p := WithLogging(mock, "gemini", repo, nil)

	ctx := WithPurpose(context.Background(), PurposeGrading)
	if _, err := p.Generate(ctx, Prompt("grade me")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "gemini" || ev.Model != "mock" || ev.Purpose != "grading" {
		t.Fatalf("unexpected event identity: %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 4 {
		t.Fatalf("unexpected event outcome: %+v", ev)
	}
	if !strings.Contains(ev.RequestBody, "grade me") {
		t.Fatalf("request body missing prompt: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"score":70}` {
		t.Fatalf("unexpected response body %q", ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrUpstream{StatusCode: 400, Body: "bad key"}})
	p := WithLogging(mock, "gemini", repo, nil)

	_, err := p.Generate(context.Background(), Prompt("x"))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Fatal("expected failed event")
	}
	if ev.Purpose != "unknown" {
		t.Fatalf("expected purpose 'unknown', got %q", ev.Purpose)
	}
	if !strings.Contains(ev.ErrorMessage, "400") {
		t.Fatalf("expected status in error message, got %q", ev.ErrorMessage)
	}
}

func TestLogging_AuditFailureDoesNotFailCall(t *testing.T) {
	repo := &recordingRepo{failWith: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "gemini", repo, nil)

	resp, err := p.Generate(context.Background(), Prompt("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Fatalf("unexpected text %q", resp.Text)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})
	p := WithLogging(mock, "mock", nil, nil)
	if _, err := p.Generate(context.Background(), Prompt("x")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
