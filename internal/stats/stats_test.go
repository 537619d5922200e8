package stats

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

var now = time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)

func at(daysAgo int, correct bool, typ exercise.Type, seconds int) *exercise.Attempt {
	return &exercise.Attempt{
		CreatedAt:   now.AddDate(0, 0, -daysAgo),
		IsCorrect:   correct,
		ProblemType: typ,
		TimeSpent:   seconds,
	}
}

func TestAccuracy(t *testing.T) {
	tests := []struct{ correct, total, want int }{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := Accuracy(tt.correct, tt.total); got != tt.want {
			t.Errorf("Accuracy(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestStreak(t *testing.T) {
	day := func(daysAgo int) string { return now.AddDate(0, 0, -daysAgo).Format(time.DateOnly) }
	set := func(ago ...int) map[string]bool {
		m := map[string]bool{}
		for _, a := range ago {
			m[day(a)] = true
		}
		return m
	}

	tests := []struct {
		name string
		days map[string]bool
		want int
	}{
		{"no activity", set(), 0},
		{"today only", set(0), 1},
		{"ending today", set(0, 1, 2), 3},
		{"ending yesterday", set(1, 2), 2},
		{"gap breaks streak", set(0, 1, 3, 4), 2},
		{"stale", set(2, 3), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.days, now); got != tt.want {
				t.Errorf("Streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDayBuckets(t *testing.T) {
	attempts := []*exercise.Attempt{
		at(0, true, exercise.TypeVerification, 0),
		at(0, false, exercise.TypeVerification, 0),
		at(6, true, exercise.TypeVerification, 0),
		at(7, true, exercise.TypeVerification, 0), // outside the window
	}
	got := DayBuckets(attempts, now, 7)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	if got[0].Date != "2026-05-04" || got[6].Date != "2026-05-10" {
		t.Errorf("window = %s..%s", got[0].Date, got[6].Date)
	}
	if got[6].Attempts != 2 || got[6].Correct != 1 {
		t.Errorf("today = %+v", got[6])
	}
	if got[0].Attempts != 1 {
		t.Errorf("oldest = %+v", got[0])
	}
	total := 0
	for _, d := range got {
		total += d.Attempts
	}
	if total != 3 {
		t.Errorf("bucketed %d attempts, want 3", total)
	}
}

func TestStudentFrom(t *testing.T) {
	attempts := []*exercise.Attempt{
		at(1, true, exercise.TypeVerification, 90),
		at(1, false, exercise.TypeDecomposition, 60),
		at(0, true, exercise.TypeDecomposition, 45),
	}
	s := StudentFrom(attempts, now)

	if s.TotalAttempts != 3 || s.Correct != 2 || s.Accuracy != 67 {
		t.Errorf("totals = %+v", s)
	}
	if s.TotalMinutes != 3 {
		t.Errorf("minutes = %d, want 3", s.TotalMinutes)
	}
	if s.Streak != 2 {
		t.Errorf("streak = %d, want 2", s.Streak)
	}
	if len(s.ByType) != 2 {
		t.Fatalf("by type = %+v", s.ByType)
	}
	if s.ByType[0].Type != exercise.TypeVerification || s.ByType[0].Accuracy != 100 {
		t.Errorf("verification = %+v", s.ByType[0])
	}
	if s.ByType[1].Attempts != 2 || s.ByType[1].Accuracy != 50 {
		t.Errorf("decomposition = %+v", s.ByType[1])
	}
}

func TestStudentFrom_Empty(t *testing.T) {
	s := StudentFrom(nil, now)
	if s.TotalAttempts != 0 || s.Accuracy != 0 || s.Streak != 0 {
		t.Errorf("empty = %+v", s)
	}
	if len(s.Daily) != 7 {
		t.Errorf("daily len = %d", len(s.Daily))
	}
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAdmin(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	u, err := st.Users().Create(ctx, &exercise.User{Email: "a@example.com", Name: "Park"})
	if err != nil {
		t.Fatal(err)
	}
	p, err := st.Problems().Create(ctx, &exercise.Problem{
		Type:          exercise.TypeVerification,
		Format:        exercise.FormatTrueFalse,
		Difficulty:    exercise.DifficultyMedium,
		Title:         "Is the moon a planet?",
		Content:       "The moon is a planet that orbits Earth.",
		CorrectAnswer: "X",
		Subject:       "space",
		Grade:         4,
		GeneratedBy:   exercise.SourceTeacher,
		Reviewed:      true,
		Active:        true,
	})
	if err != nil {
		t.Fatal(err)
	}

	day := time.Now().UTC().Format(time.DateOnly)
	for i := range 5 {
		_, _, err := st.Attempts().Record(ctx, store.AttemptRecord{
			UserID: u.ID, ProblemID: p.ID, Answer: "X",
			IsCorrect: i < 4, Score: 100, Method: "exact", TimeSpent: 20, Day: day,
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	pid := p.ID
	if err := st.EventRepo().AppendGeneration(ctx, store.GenerationLogData{
		ProblemType: exercise.TypeVerification, Model: "mock", Success: true, ProblemID: &pid, Cost: 0.25,
	}); err != nil {
		t.Fatal(err)
	}

	svc := New(st)
	a, err := svc.Admin(ctx)
	if err != nil {
		t.Fatalf("Admin: %v", err)
	}

	if a.Users.Total != 1 || a.Users.ByRole["STUDENT"] != 1 {
		t.Errorf("users = %+v", a.Users)
	}
	if a.Problems.Total != 1 || a.Problems.Active != 1 || a.Problems.ByFormat["TRUE_FALSE"] != 1 {
		t.Errorf("problems = %+v", a.Problems)
	}
	if a.Attempts.Total != 5 || a.Attempts.Accuracy != 80 || a.Attempts.AverageSeconds != 20 {
		t.Errorf("attempts = %+v", a.Attempts)
	}
	if len(a.TopProblems) != 1 || a.TopProblems[0].CorrectRate != 80 {
		t.Errorf("top problems = %+v", a.TopProblems)
	}
	if len(a.TopStudents) != 1 || a.TopStudents[0].Correct != 4 {
		t.Errorf("top students = %+v", a.TopStudents)
	}
	if a.AIGeneration.Total != 1 || a.AIGeneration.TotalCost != 0.25 {
		t.Errorf("generation = %+v", a.AIGeneration)
	}
	if a.Daily[len(a.Daily)-1].Attempts != 5 {
		t.Errorf("today = %+v", a.Daily[len(a.Daily)-1])
	}

	s, err := svc.Student(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalAttempts != 5 || s.Streak != 1 || s.TotalMinutes != 1 {
		t.Errorf("student = %+v", s)
	}

	if _, err := svc.Student(ctx, uuid.New()); err != nil {
		t.Errorf("unknown student: %v", err)
	}
}
