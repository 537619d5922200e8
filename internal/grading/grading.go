// Package grading scores student answers. Exact formats are compared
// directly, free text is judged by an LLM with a keyword fallback, and
// decomposition answers are graded step by step.
package grading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
)

// PassScore is the lowest score counted as correct.
const PassScore = 60

// Method records how an answer was graded.
type Method string

const (
	MethodExact    Method = "exact"
	MethodLLM      Method = "llm"
	MethodFallback Method = "fallback"
	MethodEmpty    Method = "empty"
	MethodSteps    Method = "steps"
)

// Fixed feedback and reasoning texts.
const (
	FeedbackCorrect         = "정답입니다!"
	FeedbackWrong           = "오답입니다. 다시 생각해보세요."
	FeedbackFallbackPass    = "좋습니다! 핵심 내용을 잘 이해하셨네요."
	FeedbackFallbackFail    = "조금 더 자세히 설명해보세요."
	FeedbackEmpty           = "답안이 비어 있습니다."
	ReasoningExact          = "객관식 문제는 정확한 선택지 매칭으로 채점됩니다."
	ReasoningFallbackMarker = "AI 채점 시스템 오류로 인해 키워드 매칭으로 대체 채점했습니다."
)

// Question is one gradable prompt.
type Question struct {
	Text        string
	ModelAnswer string
	Format      exercise.AnswerFormat
}

// Result is the outcome of grading one answer.
type Result struct {
	IsCorrect bool   `json:"isCorrect"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	Reasoning string `json:"reasoning"`
	Method    Method `json:"method"`
}

// ProblemResult is the aggregate outcome of a decomposition answer.
type ProblemResult struct {
	Result
	Steps []exercise.StepResult `json:"stepResults"`
}

// Engine grades answers. It never returns an error: every failure on the
// LLM path degrades to the keyword fallback.
type Engine struct {
	provider  llm.Provider
	logger    *zap.Logger
	fallbacks prometheus.Counter
}

// New creates an Engine. provider may be nil, in which case free-text
// answers always use the fallback. fallbacks, when set, counts fallback use.
func New(provider llm.Provider, logger *zap.Logger, fallbacks prometheus.Counter) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{provider: provider, logger: logger, fallbacks: fallbacks}
}

// GradeAnswer grades a single answer.
func (e *Engine) GradeAnswer(ctx context.Context, q Question, answer string) Result {
	if strings.TrimSpace(answer) == "" {
		return Result{Score: 0, Feedback: FeedbackEmpty, Method: MethodEmpty}
	}

	if q.Format.ExactMatch() {
		return ExactMatch(q.ModelAnswer, answer)
	}

	res, err := e.gradeWithLLM(ctx, q, answer)
	if err != nil {
		e.logger.Warn("llm grading failed, using keyword fallback",
			zap.String("format", string(q.Format)),
			zap.Error(err),
		)
		if e.fallbacks != nil {
			e.fallbacks.Inc()
		}
		return KeywordFallback(q.ModelAnswer, answer)
	}
	return res
}

// GradeProblem grades every step of a decomposition problem independently
// and aggregates them. answers is keyed by step number; missing steps are
// graded as empty answers.
func (e *Engine) GradeProblem(ctx context.Context, p *exercise.Problem, answers map[int]string) ProblemResult {
	out := ProblemResult{Steps: make([]exercise.StepResult, 0, len(p.Steps))}

	total := 0
	passed := 0
	for _, step := range p.Steps {
		model := step.CorrectAnswer
		if strings.TrimSpace(model) == "" {
			model = step.Description
		}
		answer := answers[step.StepNumber]
		r := e.GradeAnswer(ctx, Question{
			Text:        step.Title + "\n" + step.Description,
			ModelAnswer: model,
			Format:      p.Format,
		}, answer)

		total += r.Score
		if r.IsCorrect {
			passed++
		}
		out.Steps = append(out.Steps, exercise.StepResult{
			StepNumber: step.StepNumber,
			Answer:     answer,
			IsCorrect:  r.IsCorrect,
			Score:      r.Score,
			Feedback:   r.Feedback,
			Reasoning:  r.Reasoning,
			Method:     string(r.Method),
		})
	}

	if n := len(p.Steps); n > 0 {
		out.Score = roundDiv(total, n)
	}
	out.IsCorrect = len(p.Steps) > 0 && out.Score >= PassScore
	out.Method = MethodSteps
	out.Feedback = fmt.Sprintf("%d단계 중 %d단계를 통과했어요. 평균 %d점입니다.", len(p.Steps), passed, out.Score)
	return out
}

// ExactMatch compares trimmed answers case-insensitively.
func ExactMatch(want, got string) Result {
	ok := strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(got))
	r := Result{Reasoning: ReasoningExact, Method: MethodExact, IsCorrect: ok}
	if ok {
		r.Score = 100
		r.Feedback = FeedbackCorrect
	} else {
		r.Feedback = FeedbackWrong
	}
	return r
}

// KeywordFallback scores an answer by the share of model-answer keywords
// (whitespace-separated words longer than two characters) it contains.
func KeywordFallback(modelAnswer, answer string) Result {
	haystack := strings.ToLower(strings.TrimSpace(answer))

	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(modelAnswer)) {
		if utf8.RuneCountInString(w) > 2 {
			keywords = append(keywords, w)
		}
	}

	matched := 0
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			matched++
		}
	}

	score := 0
	if len(keywords) > 0 {
		score = roundDiv(100*matched, len(keywords))
	}
	// Pass on the exact fraction; the rounded score can reach 60 from below.
	r := Result{
		Score:     score,
		IsCorrect: len(keywords) > 0 && 100*matched >= PassScore*len(keywords),
		Reasoning: ReasoningFallbackMarker,
		Method:    MethodFallback,
	}
	if r.IsCorrect {
		r.Feedback = FeedbackFallbackPass
	} else {
		r.Feedback = FeedbackFallbackFail
	}
	return r
}

// roundDiv returns a/b rounded half up for non-negative a and positive b.
func roundDiv(a, b int) int {
	return (2*a + b) / (2 * b)
}

var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// reply is the grading JSON the LLM is asked for.
type reply struct {
	Score     *json.Number `json:"score"`
	IsCorrect *bool        `json:"isCorrect"`
	Feedback  string       `json:"feedback"`
	Reasoning string       `json:"reasoning"`
}

func (e *Engine) gradeWithLLM(ctx context.Context, q Question, answer string) (Result, error) {
	if e.provider == nil {
		return Result{}, errors.New("no grading provider configured")
	}

	req := llm.Prompt(buildPrompt(q, answer))
	req.Temperature = 0.2
	req.MaxTokens = 500

	resp, err := e.provider.Generate(llm.WithPurpose(ctx, llm.PurposeGrading), req)
	if err != nil {
		return Result{}, fmt.Errorf("grading call: %w", err)
	}
	return ParseReply(resp.Text)
}

// ParseReply extracts the first JSON object from an LLM grading reply.
// score and isCorrect pass through unchanged; a missing isCorrect is derived
// from PassScore. Scores outside 0-100 are rejected.
func ParseReply(text string) (Result, error) {
	raw := jsonObject.FindString(text)
	if raw == "" {
		return Result{}, fmt.Errorf("no JSON object in grading reply %q", llm.Truncate(text, 200))
	}

	var r reply
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		return Result{}, fmt.Errorf("decode grading reply: %w", err)
	}
	if r.Score == nil {
		return Result{}, errors.New("grading reply has no score")
	}
	f, err := strconv.ParseFloat(r.Score.String(), 64)
	if err != nil {
		return Result{}, fmt.Errorf("grading score %q: %w", r.Score.String(), err)
	}
	score := int(math.Round(f))
	if score < 0 || score > 100 {
		return Result{}, fmt.Errorf("grading score %d out of range", score)
	}

	correct := score >= PassScore
	if r.IsCorrect != nil {
		correct = *r.IsCorrect
	}
	return Result{
		IsCorrect: correct,
		Score:     score,
		Feedback:  r.Feedback,
		Reasoning: r.Reasoning,
		Method:    MethodLLM,
	}, nil
}

func buildPrompt(q Question, answer string) string {
	var b strings.Builder
	b.WriteString("You are a kind teacher grading an elementary school student's answer.\n\n")
	b.WriteString("Question:\n")
	b.WriteString(q.Text)
	b.WriteString("\n\nModel answer:\n")
	b.WriteString(q.ModelAnswer)
	b.WriteString("\n\nStudent answer:\n")
	b.WriteString(answer)
	b.WriteString("\n\nJudge whether the student understands the core idea, whether the answer is logical, and whether it means the same as the model answer.\n\n")
	b.WriteString("Rubric:\n")
	b.WriteString("- 100: equivalent to the model answer or better\n")
	b.WriteString("- 80-90: the core is correct with minor gaps or different wording\n")
	b.WriteString("- 60-70: partially correct, important content missing\n")
	b.WriteString("- 40-50: only a small part is correct\n")
	b.WriteString("- 0-30: mostly wrong or unrelated\n\n")
	b.WriteString("Reply with JSON only, written in the language of the question:\n")
	b.WriteString(`{"score": <0-100>, "isCorrect": <true if score >= 60>, "feedback": "<1-2 kind sentences for the student>", "reasoning": "<why this score>"}`)
	return b.String()
}
