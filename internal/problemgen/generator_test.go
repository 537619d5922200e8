package problemgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
)

func easyDecomposition() GenerateInput {
	return GenerateInput{
		Type:       exercise.TypeDecomposition,
		Difficulty: exercise.DifficultyEasy,
		Grade:      3,
		Subject:    "생일파티",
	}
}

func TestGenerate_Decomposition(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text:  "```json\n" + decompositionReply(3) + "\n```",
		Usage: llm.Usage{InputTokens: 800, OutputTokens: 400},
	})
	gen := New(mock, seeded(), DefaultConfig(), nil)

	res, err := gen.Generate(context.Background(), easyDecomposition())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Problem.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(res.Problem.Steps))
	}
	if res.Prompt.StepCount != 3 {
		t.Fatalf("expected prompt for 3 steps, got %d", res.Prompt.StepCount)
	}
	if res.Usage.InputTokens != 800 || res.Model != "mock" {
		t.Fatalf("unexpected accounting: %+v %q", res.Usage, res.Model)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != res.Prompt.Shape.Name {
		t.Fatalf("request should carry the prompt's schema, got %+v", req.Schema)
	}
	if mock.Purposes[0] != llm.PurposeProblemGen {
		t.Fatalf("purpose = %q, want %q", mock.Purposes[0], llm.PurposeProblemGen)
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Fatalf("expected max tokens %d, got %d", DefaultConfig().MaxTokens, req.MaxTokens)
	}
	if !strings.Contains(mock.LastPrompt(), "exactly 3 steps") {
		t.Fatal("prompt should ask for exactly 3 steps")
	}
}

// A reply with fewer steps than requested is still accepted.
func TestGenerate_FewerStepsAccepted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: decompositionReply(2)})
	gen := New(mock, seeded(), DefaultConfig(), nil)

	res, err := gen.Generate(context.Background(), easyDecomposition())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Problem.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(res.Problem.Steps))
	}
}

func TestGenerate_InvalidInputSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, seeded(), DefaultConfig(), nil)

	in := easyDecomposition()
	in.Grade = 9
	_, err := gen.Generate(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider call, got %d", mock.CallCount())
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 400, Body: "API key not valid"}})
	gen := New(mock, seeded(), DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), easyDecomposition())
	var up *llm.ErrUpstream
	if !errors.As(err, &up) {
		t.Fatalf("expected wrapped ErrUpstream, got %T (%v)", err, err)
	}
}

func TestGenerate_InvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "not json"},
		llm.MockResponse{Text: flatReply},
	)
	gen := New(mock, seeded(), DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), easyDecomposition())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %T (%v)", err, err)
	}

	// A flat reply to a decomposition prompt lacks steps.
	_, err = gen.Generate(context.Background(), easyDecomposition())
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %T (%v)", err, err)
	}
}

func TestGenerate_DefaultLanguageFromConfig(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: flatReply})
	cfg := DefaultConfig()
	cfg.Language = "en"
	gen := New(mock, seeded(), cfg, nil)

	_, err := gen.Generate(context.Background(), GenerateInput{
		Type:       exercise.TypeVerification,
		Difficulty: exercise.DifficultyEasy,
		Grade:      2,
		Subject:    "animals",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.LastPrompt(), "in English") {
		t.Fatal("expected English directive from config default")
	}
}
