package practice

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/grading"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

type fixture struct {
	st       *store.Store
	svc      *Service
	mock     *llm.MockProvider
	observed map[string]int
}

func (f *fixture) ObserveSubmission(problemType string, correct bool) {
	f.observed[fmt.Sprintf("%s/%t", problemType, correct)]++
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	f := &fixture{st: st, mock: llm.NewMockProvider(), observed: map[string]int{}}
	engine := grading.New(f.mock, zap.NewNop(), nil)
	f.svc = New(st, engine, f, Config{FreeDailyLimit: 3}, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2026, 3, 2, 23, 30, 0, 0, time.UTC) }
	return f
}

func (f *fixture) user(t *testing.T, sub exercise.Subscription) *exercise.User {
	t.Helper()
	u, err := f.st.Users().Create(context.Background(), &exercise.User{
		Email:        uuid.NewString() + "@example.com",
		Name:         "Lee",
		Subscription: sub,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) problem(t *testing.T, p *exercise.Problem) *exercise.Problem {
	t.Helper()
	created, err := f.st.Problems().Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func multipleChoice(visible bool) *exercise.Problem {
	return &exercise.Problem{
		Type:          exercise.TypeVerification,
		Format:        exercise.FormatMultipleChoice,
		Difficulty:    exercise.DifficultyEasy,
		Title:         "Find the wrong sentence",
		Content:       "Whales are fish. They breathe air.",
		CorrectAnswer: "A",
		Explanation:   "Whales are mammals.",
		Subject:       "animals",
		Grade:         3,
		Options:       []string{"A. Whales are fish", "B. They breathe air", "C. They swim", "D. They are large"},
		GeneratedBy:   exercise.SourceTeacher,
		Reviewed:      visible,
		Active:        visible,
	}
}

func TestSubmit_ExactMatch(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionPremium)
	p := f.problem(t, multipleChoice(true))

	res, err := f.svc.Submit(context.Background(), SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "a", TimeSpent: 40})
	require.NoError(t, err)

	assert.True(t, res.IsCorrect)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, "exact", res.Method)
	assert.Equal(t, "A", res.CorrectAnswer)
	assert.Equal(t, "Whales are mammals.", res.Explanation)
	assert.Nil(t, res.RemainingToday)
	assert.Equal(t, store.ProblemStats{TotalAttempts: 1, CorrectAttempts: 1, CorrectRate: 100}, res.Stats)
	assert.Zero(t, f.mock.CallCount())
	assert.Equal(t, 1, f.observed["AI_VERIFICATION/true"])

	stored, err := f.st.Problems().Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.TotalAttempts)
	assert.Equal(t, 100, stored.CorrectRate)
}

func TestSubmit_FreeDailyLimit(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionFree)
	p := f.problem(t, multipleChoice(true))
	ctx := context.Background()

	for i, want := range []int{2, 1, 0} {
		res, err := f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "B"})
		require.NoError(t, err, "submission %d", i+1)
		require.NotNil(t, res.RemainingToday)
		assert.Equal(t, want, *res.RemainingToday)
		assert.False(t, res.IsCorrect)
	}

	_, err := f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "A"})
	assert.ErrorIs(t, err, ErrDailyLimitReached)

	stored, err := f.st.Problems().Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.TotalAttempts)

	// A new UTC day resets the count.
	f.svc.now = func() time.Time { return time.Date(2026, 3, 3, 0, 5, 0, 0, time.UTC) }
	_, err = f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "A"})
	assert.NoError(t, err)
}

func TestSubmit_ProblemErrors(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionPremium)
	hidden := f.problem(t, multipleChoice(false))
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: uuid.New(), Answer: "A"})
	assert.ErrorIs(t, err, ErrProblemNotFound)

	_, err = f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: hidden.ID, Answer: "A"})
	assert.ErrorIs(t, err, ErrProblemUnavailable)

	_, err = f.svc.Submit(ctx, SubmitInput{UserID: uuid.New(), ProblemID: hidden.ID, Answer: "A"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSubmit_Decomposition(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionPremium)
	p := f.problem(t, &exercise.Problem{
		Type:        exercise.TypeDecomposition,
		Format:      exercise.FormatTrueFalse,
		Difficulty:  exercise.DifficultyEasy,
		Title:       "Cleaning the classroom",
		Content:     "Decide whether each step is right.",
		Subject:     "classroom",
		Grade:       2,
		GeneratedBy: exercise.SourceTeacher,
		Reviewed:    true,
		Active:      true,
		Steps: []exercise.Step{
			{StepNumber: 1, Title: "Pick up trash first", Description: "Is this right?", CorrectAnswer: "O"},
			{StepNumber: 2, Title: "Mop before sweeping", Description: "Is this right?", CorrectAnswer: "X"},
			{StepNumber: 3, Title: "Open the window", Description: "Is this right?", CorrectAnswer: "O"},
		},
	})
	ctx := context.Background()

	res, err := f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: `{"1":"O","2":"X"}`})
	require.NoError(t, err)
	assert.Equal(t, 67, res.Score)
	assert.True(t, res.IsCorrect)
	assert.Equal(t, "steps", res.Method)
	require.Len(t, res.StepResults, 3)
	assert.Equal(t, "empty", res.StepResults[2].Method)

	recent, err := f.st.Attempts().Recent(ctx, u.ID, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Len(t, recent[0].StepResults, 3)

	_, err = f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "free text"})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestSubmit_ShortAnswerUsesLLM(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionPremium)
	p := multipleChoice(true)
	p.Format = exercise.FormatShortAnswer
	p.Options = nil
	p.CorrectAnswer = "Whales are mammals"
	p = f.problem(t, p)

	f.mock.AddResponse(llm.MockResponse{Text: `{"score": 85, "isCorrect": true, "feedback": "Good", "reasoning": "r"}`})
	res, err := f.svc.Submit(context.Background(), SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "whales are not fish"})
	require.NoError(t, err)
	assert.Equal(t, 85, res.Score)
	assert.Equal(t, "llm", res.Method)
	assert.Contains(t, f.mock.LastPrompt(), "Find the wrong sentence\nWhales are fish.")
}

func TestToday(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, exercise.SubscriptionFree)
	p := f.problem(t, multipleChoice(true))
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, SubmitInput{UserID: u.ID, ProblemID: p.ID, Answer: "A", TimeSpent: 30})
	require.NoError(t, err)

	today, err := f.svc.Today(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", today.Day)
	assert.Equal(t, 1, today.Used)
	assert.Equal(t, 1, today.Correct)
	assert.Equal(t, 30, today.TotalTime)
	require.NotNil(t, today.Limit)
	assert.Equal(t, 3, *today.Limit)
	assert.Equal(t, 2, *today.Remaining)
	require.Len(t, today.Recent, 1)
	assert.Equal(t, "Find the wrong sentence", today.Recent[0].ProblemTitle)
}
