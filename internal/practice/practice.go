// Package practice runs the student submission flow: daily limits,
// grading and persistence of the attempt.
package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/grading"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

var (
	ErrDailyLimitReached  = errors.New("daily attempt limit reached")
	ErrProblemNotFound    = errors.New("problem not found")
	ErrProblemUnavailable = errors.New("problem is not available")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidAnswer      = errors.New("invalid answer")
)

// DefaultFreeDailyLimit is the number of attempts a FREE user gets per UTC day.
const DefaultFreeDailyLimit = 3

// recentLimit is the number of attempts shown in the today summary.
const recentLimit = 5

// Grader grades answers. *grading.Engine implements it.
type Grader interface {
	GradeAnswer(ctx context.Context, q grading.Question, answer string) grading.Result
	GradeProblem(ctx context.Context, p *exercise.Problem, answers map[int]string) grading.ProblemResult
}

// Observer receives one call per recorded submission.
type Observer interface {
	ObserveSubmission(problemType string, correct bool)
}

// Config tunes the service.
type Config struct {
	FreeDailyLimit int
}

// Service runs submissions.
type Service struct {
	users    store.UserRepo
	problems store.ProblemRepo
	attempts store.AttemptRepo
	progress store.ProgressRepo
	grader   Grader
	observer Observer
	limit    int
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a Service. observer may be nil.
func New(st *store.Store, grader Grader, observer Observer, cfg Config, logger *zap.Logger) *Service {
	if cfg.FreeDailyLimit <= 0 {
		cfg.FreeDailyLimit = DefaultFreeDailyLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		users:    st.Users(),
		problems: st.Problems(),
		attempts: st.Attempts(),
		progress: st.Progress(),
		grader:   grader,
		observer: observer,
		limit:    cfg.FreeDailyLimit,
		logger:   logger,
		now:      time.Now,
	}
}

// SubmitInput is one student submission.
type SubmitInput struct {
	UserID    uuid.UUID
	ProblemID uuid.UUID
	Answer    string
	TimeSpent int // seconds
	HintUsed  bool
}

// SubmitResult is returned to the student after grading.
type SubmitResult struct {
	AttemptID     uuid.UUID             `json:"attemptId"`
	IsCorrect     bool                  `json:"isCorrect"`
	Score         int                   `json:"score"`
	Feedback      string                `json:"feedback"`
	Reasoning     string                `json:"reasoning,omitempty"`
	Explanation   string                `json:"explanation"`
	CorrectAnswer string                `json:"correctAnswer"`
	StepResults   []exercise.StepResult `json:"stepResults,omitempty"`
	Method        string                `json:"method"`
	Stats         store.ProblemStats    `json:"problemStats"`
	// RemainingToday is nil for users without a daily limit.
	RemainingToday *int `json:"remainingToday,omitempty"`
}

// Submit grades and records an answer.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	u, err := s.users.Get(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	day := s.day()
	var used int
	if limited(u) {
		p, err := s.progress.ForDay(ctx, u.ID, day)
		if err != nil {
			return nil, fmt.Errorf("load progress: %w", err)
		}
		used = p.ProblemsSolved
		if used >= s.limit {
			return nil, ErrDailyLimitReached
		}
	}

	p, err := s.problems.Get(ctx, in.ProblemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProblemNotFound
		}
		return nil, fmt.Errorf("load problem: %w", err)
	}
	if !p.Visible() {
		return nil, ErrProblemUnavailable
	}

	res, steps, err := s.grade(ctx, p, in.Answer)
	if err != nil {
		return nil, err
	}

	if in.TimeSpent < 0 {
		in.TimeSpent = 0
	}
	a, stats, err := s.attempts.Record(ctx, store.AttemptRecord{
		UserID:      u.ID,
		ProblemID:   p.ID,
		Answer:      in.Answer,
		IsCorrect:   res.IsCorrect,
		Score:       res.Score,
		Feedback:    res.Feedback,
		StepResults: steps,
		Method:      string(res.Method),
		TimeSpent:   in.TimeSpent,
		HintUsed:    in.HintUsed,
		Day:         day,
	})
	if err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	if s.observer != nil {
		s.observer.ObserveSubmission(string(p.Type), res.IsCorrect)
	}
	s.logger.Info("attempt recorded",
		zap.String("user", u.ID.String()),
		zap.String("problem", p.ID.String()),
		zap.Bool("correct", res.IsCorrect),
		zap.Int("score", res.Score),
		zap.String("method", string(res.Method)),
	)

	out := &SubmitResult{
		AttemptID:     a.ID,
		IsCorrect:     res.IsCorrect,
		Score:         res.Score,
		Feedback:      res.Feedback,
		Reasoning:     res.Reasoning,
		Explanation:   p.Explanation,
		CorrectAnswer: p.CorrectAnswer,
		StepResults:   steps,
		Method:        string(res.Method),
		Stats:         stats,
	}
	if limited(u) {
		remaining := max(s.limit-used-1, 0)
		out.RemainingToday = &remaining
	}
	return out, nil
}

func (s *Service) grade(ctx context.Context, p *exercise.Problem, answer string) (grading.Result, []exercise.StepResult, error) {
	if p.Type == exercise.TypeDecomposition && len(p.Steps) > 0 {
		answers, err := grading.ParseStepAnswers(answer)
		if err != nil {
			return grading.Result{}, nil, fmt.Errorf("%w: %v", ErrInvalidAnswer, err)
		}
		pr := s.grader.GradeProblem(ctx, p, answers)
		return pr.Result, pr.Steps, nil
	}

	r := s.grader.GradeAnswer(ctx, grading.Question{
		Text:        p.Title + "\n" + p.Content,
		ModelAnswer: p.CorrectAnswer,
		Format:      p.Format,
	}, answer)
	return r, nil, nil
}

// Today summarizes the user's activity for the current UTC day.
type Today struct {
	Day       string              `json:"day"`
	Limit     *int                `json:"dailyLimit,omitempty"`
	Used      int                 `json:"used"`
	Remaining *int                `json:"remaining,omitempty"`
	Correct   int                 `json:"correct"`
	TotalTime int                 `json:"totalTime"`
	Recent    []*exercise.Attempt `json:"recentAttempts"`
}

// Today returns the daily limit, used and remaining counts, and the most
// recent attempts.
func (s *Service) Today(ctx context.Context, userID uuid.UUID) (*Today, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}

	day := s.day()
	p, err := s.progress.ForDay(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	recent, err := s.attempts.Recent(ctx, userID, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}

	out := &Today{
		Day:       day,
		Used:      p.ProblemsSolved,
		Correct:   p.CorrectAnswers,
		TotalTime: p.TotalTime,
		Recent:    recent,
	}
	if limited(u) {
		limit := s.limit
		remaining := max(limit-p.ProblemsSolved, 0)
		out.Limit = &limit
		out.Remaining = &remaining
	}
	return out, nil
}

func (s *Service) day() string {
	return s.now().UTC().Format(time.DateOnly)
}

func limited(u *exercise.User) bool {
	return u.Subscription == exercise.SubscriptionFree
}
