package grading

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
)

func newEngine(p llm.Provider) (*Engine, prometheus.Counter) {
	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_fallbacks_total"})
	return New(p, zap.NewNop(), c), c
}

func TestGradeAnswer_ExactMatchSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newEngine(mock)

	tests := []struct {
		format exercise.AnswerFormat
		want   string
		got    string
		ok     bool
	}{
		{exercise.FormatMultipleChoice, "A", "a", true},
		{exercise.FormatMultipleChoice, "A", "  A ", true},
		{exercise.FormatMultipleChoice, "A", "B", false},
		{exercise.FormatTrueFalse, "O", "o", true},
		{exercise.FormatTrueFalse, "O", "X", false},
	}
	for _, tt := range tests {
		r := e.GradeAnswer(context.Background(), Question{ModelAnswer: tt.want, Format: tt.format}, tt.got)
		assert.Equal(t, tt.ok, r.IsCorrect, "%s %q vs %q", tt.format, tt.want, tt.got)
		assert.Equal(t, MethodExact, r.Method)
		if tt.ok {
			assert.Equal(t, 100, r.Score)
			assert.Equal(t, FeedbackCorrect, r.Feedback)
		} else {
			assert.Equal(t, 0, r.Score)
			assert.Equal(t, FeedbackWrong, r.Feedback)
		}
		assert.Equal(t, ReasoningExact, r.Reasoning)
	}
	assert.Zero(t, mock.CallCount())
}

func TestGradeAnswer_LLMVerbatim(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Here is the grade:\n```json\n{\"score\": 85, \"isCorrect\": true, \"feedback\": \"Good\", \"reasoning\": \"Core correct\"}\n```",
	})
	e, fallbacks := newEngine(mock)

	r := e.GradeAnswer(context.Background(), Question{
		Text:        "Why do leaves change color?",
		ModelAnswer: "Chlorophyll breaks down in autumn",
		Format:      exercise.FormatShortAnswer,
	}, "the green pigment goes away when it gets cold")

	assert.Equal(t, Result{IsCorrect: true, Score: 85, Feedback: "Good", Reasoning: "Core correct", Method: MethodLLM}, r)
	require.Equal(t, 1, mock.CallCount())
	call := mock.Calls[0]
	assert.InDelta(t, 0.2, call.Temperature, 1e-9)
	assert.Equal(t, 500, call.MaxTokens)
	assert.Equal(t, []string{llm.PurposeGrading}, mock.Purposes)
	assert.Contains(t, mock.LastPrompt(), "Chlorophyll breaks down in autumn")
	assert.Contains(t, mock.LastPrompt(), "the green pigment goes away")
	assert.Zero(t, testutil.ToFloat64(fallbacks))
}

func TestGradeAnswer_LLMDisagreementPassesThrough(t *testing.T) {
	// isCorrect is not recomputed from the score when the reply carries it.
	mock := llm.NewMockProvider(llm.MockJSON(map[string]any{"score": 70, "isCorrect": false, "feedback": "f", "reasoning": "r"}))
	e, _ := newEngine(mock)

	r := e.GradeAnswer(context.Background(), Question{ModelAnswer: "x", Format: exercise.FormatShortAnswer}, "y")
	assert.Equal(t, 70, r.Score)
	assert.False(t, r.IsCorrect)
}

func TestGradeAnswer_FallbackOnFailure(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"upstream error", llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 500}}},
		{"no json", llm.MockResponse{Text: "I think it is fine."}},
		{"bad json", llm.MockResponse{Text: `{"score": }`}},
		{"missing score", llm.MockResponse{Text: `{"isCorrect": true}`}},
		{"score out of range", llm.MockResponse{Text: `{"score": 150}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, fallbacks := newEngine(llm.NewMockProvider(tt.resp))
			r := e.GradeAnswer(context.Background(), Question{
				ModelAnswer: "photosynthesis needs sunlight",
				Format:      exercise.FormatShortAnswer,
			}, "Plants need SUNLIGHT for photosynthesis")

			assert.Equal(t, MethodFallback, r.Method)
			assert.Equal(t, ReasoningFallbackMarker, r.Reasoning)
			assert.Equal(t, 100, r.Score)
			assert.True(t, r.IsCorrect)
			assert.Equal(t, FeedbackFallbackPass, r.Feedback)
			assert.Equal(t, 1.0, testutil.ToFloat64(fallbacks))
		})
	}
}

func TestGradeAnswer_NilProviderFallsBack(t *testing.T) {
	e := New(nil, nil, nil)
	r := e.GradeAnswer(context.Background(), Question{ModelAnswer: "water boils at hundred degrees", Format: exercise.FormatShortAnswer}, "water")
	assert.Equal(t, MethodFallback, r.Method)
	// 1 of 4 keywords ("water", "boils", "hundred", "degrees").
	assert.Equal(t, 25, r.Score)
	assert.False(t, r.IsCorrect)
	assert.Equal(t, FeedbackFallbackFail, r.Feedback)
}

func TestGradeAnswer_EmptyAnswer(t *testing.T) {
	mock := llm.NewMockProvider()
	e, _ := newEngine(mock)
	for _, f := range exercise.Formats {
		r := e.GradeAnswer(context.Background(), Question{ModelAnswer: "A", Format: f}, "   ")
		assert.Equal(t, 0, r.Score)
		assert.False(t, r.IsCorrect)
		assert.Equal(t, MethodEmpty, r.Method)
	}
	assert.Zero(t, mock.CallCount())
}

func TestKeywordFallback(t *testing.T) {
	// 25 of 42 keywords is 59.52%: the score rounds to 60 but the answer fails.
	var words []string
	for i := 1; i <= 42; i++ {
		words = append(words, fmt.Sprintf("w%02d", i))
	}
	nearMissModel := strings.Join(words, " ")
	nearMissAnswer := strings.Join(words[:25], " ")

	tests := []struct {
		model, answer string
		score         int
		correct       bool
	}{
		{"the cat sat on the mat", "a cat", 20, false},               // 1 of the, cat, sat, the, mat
		{"alpha beta gamma", "alpha beta", 67, true},                 // 2/3
		{"alpha beta", "alpha", 50, false},                           // 1/2
		{"ab cd", "ab cd", 0, false},                                 // no keywords
		{"사과 바나나 포도", "바나나", 100, true},                           // only 바나나 is longer than 2 runes
		{"one two three four five six seven", "one two", 29, false}, // 2/7
		{nearMissModel, nearMissAnswer, 60, false},
		{"aaa bbb ccc ddd eee", "aaa bbb ccc", 60, true}, // exactly 60%
	}
	for _, tt := range tests {
		r := KeywordFallback(tt.model, tt.answer)
		assert.Equal(t, tt.score, r.Score, "%q / %q", tt.model, tt.answer)
		assert.Equal(t, tt.correct, r.IsCorrect, "%q / %q", tt.model, tt.answer)
		assert.Equal(t, MethodFallback, r.Method)
	}
}

func TestParseReply_DerivesIsCorrect(t *testing.T) {
	r, err := ParseReply(`{"score": 60, "feedback": "ok"}`)
	require.NoError(t, err)
	assert.True(t, r.IsCorrect)

	r, err = ParseReply(`{"score": 59.4}`)
	require.NoError(t, err)
	assert.Equal(t, 59, r.Score)
	assert.False(t, r.IsCorrect)
}

func decomposition(steps ...exercise.Step) *exercise.Problem {
	return &exercise.Problem{Type: exercise.TypeDecomposition, Format: exercise.FormatShortAnswer, Steps: steps}
}

func TestGradeProblem_MeanOfSteps(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: `{"score": 90, "isCorrect": true, "feedback": "a", "reasoning": "a"}`},
		llm.MockResponse{Text: `{"score": 40, "isCorrect": false, "feedback": "b", "reasoning": "b"}`},
		llm.MockResponse{Text: `{"score": 55, "isCorrect": false, "feedback": "c", "reasoning": "c"}`},
	)
	e, _ := newEngine(mock)
	p := decomposition(
		exercise.Step{StepNumber: 1, Title: "Plan", Description: "Decide what to buy", CorrectAnswer: "make a list"},
		exercise.Step{StepNumber: 2, Title: "Budget", Description: "Check the money"},
		exercise.Step{StepNumber: 3, Title: "Shop", Description: "Go to the store"},
	)

	res := e.GradeProblem(context.Background(), p, map[int]string{1: "list", 2: "count coins", 3: "walk"})

	// (90 + 40 + 55) / 3 = 61.67
	assert.Equal(t, 62, res.Score)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, MethodSteps, res.Method)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, 90, res.Steps[0].Score)
	assert.Equal(t, "llm", res.Steps[1].Method)
	assert.Equal(t, "count coins", res.Steps[1].Answer)

	require.Equal(t, 3, mock.CallCount())
	first := mock.Calls[0].Messages[0].Content
	assert.Contains(t, first, "Plan\nDecide what to buy")
	assert.Contains(t, first, "make a list")
	// Step 2 has no correct answer; its description is the model answer.
	assert.Contains(t, mock.Calls[1].Messages[0].Content, "Model answer:\nCheck the money")
}

func TestGradeProblem_MissingStepIsEmpty(t *testing.T) {
	e, _ := newEngine(llm.NewMockProvider())
	p := decomposition(
		exercise.Step{StepNumber: 1, CorrectAnswer: "O"},
		exercise.Step{StepNumber: 2, CorrectAnswer: "X"},
	)
	p.Format = exercise.FormatTrueFalse

	res := e.GradeProblem(context.Background(), p, map[int]string{1: "o"})
	assert.Equal(t, 50, res.Score)
	assert.False(t, res.IsCorrect)
	assert.Equal(t, "exact", res.Steps[0].Method)
	assert.Equal(t, "empty", res.Steps[1].Method)
}

func TestGradeProblem_NoSteps(t *testing.T) {
	e, _ := newEngine(nil)
	res := e.GradeProblem(context.Background(), decomposition(), nil)
	assert.Equal(t, 0, res.Score)
	assert.False(t, res.IsCorrect)
	assert.Empty(t, res.Steps)
}

func TestParseStepAnswers(t *testing.T) {
	got, err := ParseStepAnswers(`{"1": "first", "2": "second"}`)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "first", 2: "second"}, got)

	got, err = ParseStepAnswers(`["first", "second"]`)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "first", 2: "second"}, got)

	got, err = ParseStepAnswers("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"just text", `{"one": "x"}`, `{"0": "x"}`, `[1, 2]`, `{"1": `} {
		_, err := ParseStepAnswers(bad)
		assert.True(t, errors.Is(err, ErrInvalidStepAnswers), "%q: %v", bad, err)
	}
}
