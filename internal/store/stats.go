package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/ent"
	"github.com/thinkwise-edu/thinkwise/ent/aigenerationlog"
	"github.com/thinkwise-edu/thinkwise/ent/attempt"
	"github.com/thinkwise-edu/thinkwise/ent/problem"
	"github.com/thinkwise-edu/thinkwise/ent/user"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

// UserCounts groups accounts by role and subscription.
type UserCounts struct {
	Total          int            `json:"total"`
	ByRole         map[string]int `json:"byRole"`
	BySubscription map[string]int `json:"bySubscription"`
}

// ProblemCounts summarizes the problem bank.
type ProblemCounts struct {
	Total        int            `json:"total"`
	Active       int            `json:"active"`
	Reviewed     int            `json:"reviewed"`
	Pending      int            `json:"pendingReview"`
	ByType       map[string]int `json:"byType"`
	ByFormat     map[string]int `json:"byFormat"`
	ByDifficulty map[string]int `json:"byDifficulty"`
}

// AttemptTotals summarizes attempts.
type AttemptTotals struct {
	Total     int `json:"total"`
	Correct   int `json:"correct"`
	TotalTime int `json:"totalTime"`
}

// StudentSummary is one student's attempt tally.
type StudentSummary struct {
	UserID   uuid.UUID `json:"userId"`
	Name     string    `json:"name,omitempty"`
	Email    string    `json:"email,omitempty"`
	Attempts int       `json:"attempts"`
	Correct  int       `json:"correct"`
}

// GenerationTotals summarizes the AI generation audit log.
type GenerationTotals struct {
	Total     int            `json:"total"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	ByType    map[string]int `json:"byType"`
	TotalCost float64        `json:"totalCost"`
}

// StatsRepo answers the aggregate queries behind the admin dashboard.
type StatsRepo interface {
	Users(ctx context.Context) (UserCounts, error)
	Problems(ctx context.Context) (ProblemCounts, error)
	Attempts(ctx context.Context) (AttemptTotals, error)
	// AttemptsSince returns attempts created at or after since, oldest first.
	AttemptsSince(ctx context.Context, since time.Time) ([]*exercise.Attempt, error)
	// RankedProblems returns problems with at least minAttempts attempts,
	// ordered by correct rate (descending when best is set).
	RankedProblems(ctx context.Context, minAttempts, limit int, best bool) ([]*exercise.Problem, error)
	// TopStudents ranks students by correct attempts.
	TopStudents(ctx context.Context, limit int) ([]StudentSummary, error)
	// Summaries returns attempt tallies for the given users.
	Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]StudentSummary, error)
	Generations(ctx context.Context) (GenerationTotals, error)
}

type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Users(ctx context.Context) (UserCounts, error) {
	out := UserCounts{ByRole: map[string]int{}, BySubscription: map[string]int{}}

	var byRole []struct {
		Role  string `json:"role"`
		Count int    `json:"count"`
	}
	if err := r.client.User.Query().
		GroupBy(user.FieldRole).
		Aggregate(ent.Count()).
		Scan(ctx, &byRole); err != nil {
		return out, fmt.Errorf("users by role: %w", err)
	}
	for _, row := range byRole {
		out.ByRole[row.Role] = row.Count
		out.Total += row.Count
	}

	var bySub []struct {
		Subscription string `json:"subscription"`
		Count        int    `json:"count"`
	}
	if err := r.client.User.Query().
		GroupBy(user.FieldSubscription).
		Aggregate(ent.Count()).
		Scan(ctx, &bySub); err != nil {
		return out, fmt.Errorf("users by subscription: %w", err)
	}
	for _, row := range bySub {
		out.BySubscription[row.Subscription] = row.Count
	}
	return out, nil
}

func (r *statsRepo) Problems(ctx context.Context) (ProblemCounts, error) {
	out := ProblemCounts{
		ByType:       map[string]int{},
		ByFormat:     map[string]int{},
		ByDifficulty: map[string]int{},
	}

	var err error
	if out.Total, err = r.client.Problem.Query().Count(ctx); err != nil {
		return out, fmt.Errorf("count problems: %w", err)
	}
	if out.Active, err = r.client.Problem.Query().Where(problem.Active(true)).Count(ctx); err != nil {
		return out, fmt.Errorf("count active problems: %w", err)
	}
	if out.Reviewed, err = r.client.Problem.Query().Where(problem.Reviewed(true)).Count(ctx); err != nil {
		return out, fmt.Errorf("count reviewed problems: %w", err)
	}
	out.Pending = out.Total - out.Reviewed

	rows, err := r.client.Problem.Query().
		Select(problem.FieldProblemType, problem.FieldAnswerFormat, problem.FieldDifficulty).
		All(ctx)
	if err != nil {
		return out, fmt.Errorf("problem breakdown: %w", err)
	}
	for _, p := range rows {
		out.ByType[string(p.ProblemType)]++
		out.ByFormat[string(p.AnswerFormat)]++
		out.ByDifficulty[string(p.Difficulty)]++
	}
	return out, nil
}

func (r *statsRepo) Attempts(ctx context.Context) (AttemptTotals, error) {
	var out AttemptTotals
	var err error
	if out.Total, err = r.client.Attempt.Query().Count(ctx); err != nil {
		return out, fmt.Errorf("count attempts: %w", err)
	}
	if out.Correct, err = r.client.Attempt.Query().Where(attempt.IsCorrect(true)).Count(ctx); err != nil {
		return out, fmt.Errorf("count correct attempts: %w", err)
	}
	times, err := r.client.Attempt.Query().Select(attempt.FieldTimeSpent).Ints(ctx)
	if err != nil {
		return out, fmt.Errorf("attempt times: %w", err)
	}
	for _, t := range times {
		out.TotalTime += t
	}
	return out, nil
}

func (r *statsRepo) AttemptsSince(ctx context.Context, since time.Time) ([]*exercise.Attempt, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.CreatedAtGTE(since)).
		Order(ent.Asc(attempt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("attempts since %s: %w", since.Format(time.RFC3339), err)
	}
	return attemptsFromEnt(rows), nil
}

func (r *statsRepo) RankedProblems(ctx context.Context, minAttempts, limit int, best bool) ([]*exercise.Problem, error) {
	order := ent.Asc(problem.FieldCorrectRate)
	if best {
		order = ent.Desc(problem.FieldCorrectRate)
	}
	rows, err := r.client.Problem.Query().
		Where(problem.TotalAttemptsGTE(minAttempts)).
		Order(order, ent.Desc(problem.FieldTotalAttempts)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("ranked problems: %w", err)
	}
	out := make([]*exercise.Problem, len(rows))
	for i, p := range rows {
		out[i] = problemFromEnt(p)
	}
	return out, nil
}

func (r *statsRepo) TopStudents(ctx context.Context, limit int) ([]StudentSummary, error) {
	students, err := r.client.User.Query().
		Where(user.RoleEQ(user.Role(exercise.RoleStudent))).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("student ids: %w", err)
	}
	if len(students) == 0 {
		return nil, nil
	}

	byUser, err := r.Summaries(ctx, students)
	if err != nil {
		return nil, err
	}

	out := make([]StudentSummary, 0, len(byUser))
	for _, s := range byUser {
		if s.Attempts > 0 {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Correct != out[j].Correct {
			return out[i].Correct > out[j].Correct
		}
		return out[i].Attempts < out[j].Attempts
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *statsRepo) Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]StudentSummary, error) {
	out := make(map[uuid.UUID]StudentSummary, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	users, err := r.client.User.Query().Where(user.IDIn(ids...)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		out[u.ID] = StudentSummary{UserID: u.ID, Name: u.Name, Email: u.Email}
	}

	rows, err := r.client.Attempt.Query().
		Where(attempt.UserIDIn(ids...)).
		Select(attempt.FieldUserID, attempt.FieldIsCorrect).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("attempt tallies: %w", err)
	}
	for _, a := range rows {
		s := out[a.UserID]
		s.UserID = a.UserID
		s.Attempts++
		if a.IsCorrect {
			s.Correct++
		}
		out[a.UserID] = s
	}
	return out, nil
}

func (r *statsRepo) Generations(ctx context.Context) (GenerationTotals, error) {
	out := GenerationTotals{ByType: map[string]int{}}

	var err error
	if out.Total, err = r.client.AIGenerationLog.Query().Count(ctx); err != nil {
		return out, fmt.Errorf("count generations: %w", err)
	}
	if out.Succeeded, err = r.client.AIGenerationLog.Query().Where(aigenerationlog.Success(true)).Count(ctx); err != nil {
		return out, fmt.Errorf("count successful generations: %w", err)
	}
	out.Failed = out.Total - out.Succeeded

	var byType []struct {
		ProblemType string `json:"problem_type"`
		Count       int    `json:"count"`
	}
	if err := r.client.AIGenerationLog.Query().
		GroupBy(aigenerationlog.FieldProblemType).
		Aggregate(ent.Count()).
		Scan(ctx, &byType); err != nil {
		return out, fmt.Errorf("generations by type: %w", err)
	}
	for _, row := range byType {
		out.ByType[row.ProblemType] = row.Count
	}

	costs, err := r.client.AIGenerationLog.Query().Select(aigenerationlog.FieldCost).Float64s(ctx)
	if err != nil {
		return out, fmt.Errorf("generation costs: %w", err)
	}
	for _, c := range costs {
		out.TotalCost += c
	}
	return out, nil
}
