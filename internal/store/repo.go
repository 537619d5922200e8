package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ProblemFilter narrows problem listings. Nil pointers mean "any".
type ProblemFilter struct {
	Type       exercise.Type
	Difficulty exercise.Difficulty
	Grade      int
	Reviewed   *bool
	Active     *bool
	WithSteps  bool
	Limit      int
	Offset     int
}

// VisibleOnly returns a filter restricted to problems students may see.
func VisibleOnly(f ProblemFilter) ProblemFilter {
	t := true
	f.Reviewed = &t
	f.Active = &t
	return f
}

// ProblemPatch carries a partial admin update. Nil fields are left as-is.
type ProblemPatch struct {
	Title         *string
	Content       *string
	CorrectAnswer *string
	Explanation   *string
	Subject       *string
	Difficulty    *exercise.Difficulty
	Grade         *int
	Options       *[]string
	Hints         *[]string
	Reviewed      *bool
	Active        *bool
}

// ProblemRepo manages problems and their steps.
type ProblemRepo interface {
	// Create stores a problem and its steps in one transaction. The returned
	// problem carries generated IDs and timestamps.
	Create(ctx context.Context, p *exercise.Problem) (*exercise.Problem, error)

	// Get returns the problem with its steps ordered by step number.
	Get(ctx context.Context, id uuid.UUID) (*exercise.Problem, error)

	// List returns problems newest first.
	List(ctx context.Context, f ProblemFilter) ([]*exercise.Problem, error)

	// Update applies a partial update.
	Update(ctx context.Context, id uuid.UUID, patch ProblemPatch) (*exercise.Problem, error)

	// Delete removes the problem together with its steps and attempts.
	Delete(ctx context.Context, id uuid.UUID) error
}

// AttemptRecord is the input for recording a graded submission.
type AttemptRecord struct {
	UserID      uuid.UUID
	ProblemID   uuid.UUID
	Answer      string
	IsCorrect   bool
	Score       int
	Feedback    string
	StepResults []exercise.StepResult
	Method      string
	TimeSpent   int
	HintUsed    bool
	Day         string // UTC day the attempt counts toward, YYYY-MM-DD
}

// ProblemStats is the rolling statistics of one problem after an attempt.
type ProblemStats struct {
	TotalAttempts   int `json:"totalAttempts"`
	CorrectAttempts int `json:"correctAttempts"`
	CorrectRate     int `json:"correctRate"`
}

// AttemptRepo records and reads attempts.
type AttemptRepo interface {
	// Record inserts the attempt, increments the problem counters, recomputes
	// the correct rate and upserts the user's daily progress, all in one
	// transaction.
	Record(ctx context.Context, rec AttemptRecord) (*exercise.Attempt, ProblemStats, error)

	// Recent returns the user's latest attempts with problem titles.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*exercise.Attempt, error)

	// ForUser returns every attempt of the user, oldest first, with problem types.
	ForUser(ctx context.Context, userID uuid.UUID) ([]*exercise.Attempt, error)
}

// DailyProgress is one user's activity rollup for one UTC day.
type DailyProgress struct {
	UserID         uuid.UUID
	Day            string
	ProblemsSolved int
	CorrectAnswers int
	TotalTime      int
}

// ProgressRepo reads daily rollups.
type ProgressRepo interface {
	// ForDay returns the rollup, or a zero rollup when none exists.
	ForDay(ctx context.Context, userID uuid.UUID, day string) (DailyProgress, error)
}

// UserFilter narrows user listings.
type UserFilter struct {
	Role         exercise.Role
	Subscription exercise.Subscription
	Search       string // substring of email or name
	Limit        int
	Offset       int
}

// UserRepo manages accounts.
type UserRepo interface {
	Create(ctx context.Context, u *exercise.User) (*exercise.User, error)
	Get(ctx context.Context, id uuid.UUID) (*exercise.User, error)
	GetByEmail(ctx context.Context, email string) (*exercise.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role exercise.Role) (*exercise.User, error)
	// List returns a page of users and the total matching count.
	List(ctx context.Context, f UserFilter) ([]*exercise.User, int, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// GenerationLogData captures one problem generation outcome.
type GenerationLogData struct {
	ProblemType  exercise.Type
	Model        string
	Success      bool
	ErrorMessage string
	ProblemID    *uuid.UUID
	InputTokens  int
	OutputTokens int
	Cost         float64
}

// GenerationLog is a stored generation audit record.
type GenerationLog struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GenerationLogData
}

// EventRepo provides append and query access to the audit logs.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by ID, or nil when it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// AppendGeneration records a problem generation outcome.
	AppendGeneration(ctx context.Context, data GenerationLogData) error

	// QueryGenerations returns generation records newest first.
	QueryGenerations(ctx context.Context, opts QueryOpts) ([]GenerationLog, error)

	// LLMUsageByPurpose aggregates LLM calls per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates LLM calls per served model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// PurposeUsage is the token usage of one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage is the token usage of one model.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}
