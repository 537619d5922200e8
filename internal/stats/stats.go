// Package stats computes the student and admin dashboards.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

const (
	// seriesDays is the length of the daily activity series.
	seriesDays = 7
	// rankMinAttempts is the attempt count a problem needs before it is ranked.
	rankMinAttempts = 5
	rankLimit       = 5
)

// Day is one bucket of the daily activity series.
type Day struct {
	Date     string `json:"date"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

// TypeStats is a per problem type breakdown.
type TypeStats struct {
	Type     exercise.Type `json:"type"`
	Attempts int           `json:"attempts"`
	Correct  int           `json:"correct"`
	Accuracy int           `json:"accuracy"`
}

// Student is one student's dashboard.
type Student struct {
	TotalAttempts int         `json:"totalAttempts"`
	Correct       int         `json:"correctAttempts"`
	Accuracy      int         `json:"accuracy"`
	TotalMinutes  int         `json:"totalMinutes"`
	Streak        int         `json:"streak"`
	Daily         []Day       `json:"dailyStats"`
	ByType        []TypeStats `json:"byType"`
}

// AttemptSummary is the attempt block of the admin dashboard.
type AttemptSummary struct {
	Total          int `json:"total"`
	Correct        int `json:"correct"`
	Accuracy       int `json:"accuracy"`
	AverageSeconds int `json:"averageTime"`
}

// Admin is the admin dashboard.
type Admin struct {
	Users        store.UserCounts       `json:"users"`
	Problems     store.ProblemCounts    `json:"problems"`
	Attempts     AttemptSummary         `json:"attempts"`
	Daily        []Day                  `json:"dailyStats"`
	TopProblems  []*exercise.Problem    `json:"topProblems"`
	HardProblems []*exercise.Problem    `json:"hardProblems"`
	TopStudents  []store.StudentSummary `json:"topStudents"`
	AIGeneration store.GenerationTotals `json:"aiGeneration"`
}

// Service reads statistics from the store.
type Service struct {
	attempts store.AttemptRepo
	stats    store.StatsRepo
	now      func() time.Time
}

// New creates a Service.
func New(st *store.Store) *Service {
	return &Service{attempts: st.Attempts(), stats: st.Stats(), now: time.Now}
}

// Student returns the dashboard for one user.
func (s *Service) Student(ctx context.Context, userID uuid.UUID) (*Student, error) {
	attempts, err := s.attempts.ForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("student stats: %w", err)
	}
	return StudentFrom(attempts, s.now()), nil
}

// StudentFrom builds a student dashboard from the user's attempts.
func StudentFrom(attempts []*exercise.Attempt, now time.Time) *Student {
	out := &Student{TotalAttempts: len(attempts)}

	seconds := 0
	days := map[string]bool{}
	byType := map[exercise.Type]*TypeStats{}
	for _, a := range attempts {
		if a.IsCorrect {
			out.Correct++
		}
		seconds += a.TimeSpent
		days[dayOf(a.CreatedAt)] = true

		if a.ProblemType != "" {
			ts := byType[a.ProblemType]
			if ts == nil {
				ts = &TypeStats{Type: a.ProblemType}
				byType[a.ProblemType] = ts
			}
			ts.Attempts++
			if a.IsCorrect {
				ts.Correct++
			}
		}
	}

	out.Accuracy = Accuracy(out.Correct, out.TotalAttempts)
	out.TotalMinutes = seconds / 60
	out.Streak = Streak(days, now)
	out.Daily = DayBuckets(attempts, now, seriesDays)

	out.ByType = make([]TypeStats, 0, len(byType))
	for _, t := range exercise.Types {
		if ts := byType[t]; ts != nil {
			ts.Accuracy = Accuracy(ts.Correct, ts.Attempts)
			out.ByType = append(out.ByType, *ts)
		}
	}
	return out
}

// Admin returns the platform dashboard.
func (s *Service) Admin(ctx context.Context) (*Admin, error) {
	out := &Admin{}
	var err error

	if out.Users, err = s.stats.Users(ctx); err != nil {
		return nil, err
	}
	if out.Problems, err = s.stats.Problems(ctx); err != nil {
		return nil, err
	}

	totals, err := s.stats.Attempts(ctx)
	if err != nil {
		return nil, err
	}
	out.Attempts = AttemptSummary{
		Total:    totals.Total,
		Correct:  totals.Correct,
		Accuracy: Accuracy(totals.Correct, totals.Total),
	}
	if totals.Total > 0 {
		out.Attempts.AverageSeconds = totals.TotalTime / totals.Total
	}

	now := s.now()
	recent, err := s.stats.AttemptsSince(ctx, startOfDay(now).AddDate(0, 0, -(seriesDays-1)))
	if err != nil {
		return nil, err
	}
	out.Daily = DayBuckets(recent, now, seriesDays)

	if out.TopProblems, err = s.stats.RankedProblems(ctx, rankMinAttempts, rankLimit, true); err != nil {
		return nil, err
	}
	if out.HardProblems, err = s.stats.RankedProblems(ctx, rankMinAttempts, rankLimit, false); err != nil {
		return nil, err
	}
	if out.TopStudents, err = s.stats.TopStudents(ctx, rankLimit); err != nil {
		return nil, err
	}
	if out.AIGeneration, err = s.stats.Generations(ctx); err != nil {
		return nil, err
	}
	return out, nil
}

// Accuracy returns correct/total as a rounded percentage, 0 when total is 0.
func Accuracy(correct, total int) int {
	return store.CorrectRate(correct, total)
}

// Streak counts consecutive UTC days with activity, ending today or
// yesterday. days holds YYYY-MM-DD keys.
func Streak(days map[string]bool, now time.Time) int {
	d := startOfDay(now)
	if !days[dayOf(d)] {
		d = d.AddDate(0, 0, -1)
	}
	n := 0
	for days[dayOf(d)] {
		n++
		d = d.AddDate(0, 0, -1)
	}
	return n
}

// DayBuckets tallies attempts into the last n UTC days, oldest first.
// Attempts outside the window are ignored.
func DayBuckets(attempts []*exercise.Attempt, now time.Time, n int) []Day {
	start := startOfDay(now).AddDate(0, 0, -(n - 1))
	out := make([]Day, n)
	index := make(map[string]int, n)
	for i := range out {
		out[i].Date = dayOf(start.AddDate(0, 0, i))
		index[out[i].Date] = i
	}
	for _, a := range attempts {
		i, ok := index[dayOf(a.CreatedAt)]
		if !ok {
			continue
		}
		out[i].Attempts++
		if a.IsCorrect {
			out[i].Correct++
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func dayOf(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
