package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createUser(t *testing.T, s *Store, email string) *exercise.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &exercise.User{Email: email, Name: "Kim"})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func sampleDecomposition() *exercise.Problem {
	return &exercise.Problem{
		Type:          exercise.TypeDecomposition,
		Format:        exercise.FormatShortAnswer,
		Difficulty:    exercise.DifficultyEasy,
		Title:         "Plan a birthday party",
		Content:       "Minji wants to throw a party for her friend.",
		CorrectAnswer: "Budget, invite, prepare",
		Subject:       "birthday party",
		Grade:         3,
		GeneratedBy:   exercise.SourceAI,
		Model:         "gemini-2.0-flash",
		Steps: []exercise.Step{
			{StepNumber: 2, Title: "Invite", Description: "Decide who to invite"},
			{StepNumber: 1, Title: "Budget", Description: "Check the allowance"},
			{StepNumber: 3, Title: "Prepare", Description: "Buy snacks"},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestWithConnPragmas(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"/tmp/a.db", "/tmp/a.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
		{"file:x?mode=memory", "file:x?mode=memory&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"},
	}
	for _, tt := range tests {
		if got := withConnPragmas(tt.dsn); got != tt.want {
			t.Errorf("withConnPragmas(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("seq[%d] = %d, not greater than %d", i, seq, prev)
		}
		prev = seq
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"problems", "problem_steps", "attempts", "users"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestProblemCreateGetOrdersSteps(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected generated ID")
	}
	if created.Reviewed || created.Active {
		t.Error("AI problem should start unreviewed and inactive")
	}
	if len(created.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(created.Steps))
	}
	for i, st := range created.Steps {
		if st.StepNumber != i+1 {
			t.Errorf("step[%d].StepNumber = %d, want %d", i, st.StepNumber, i+1)
		}
	}
	if created.Steps[0].Title != "Budget" {
		t.Errorf("first step = %q, want Budget", created.Steps[0].Title)
	}
}

func TestProblemGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Problems().Get(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProblemListFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Problems()

	hidden, err := repo.Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create hidden: %v", err)
	}

	visible := &exercise.Problem{
		Type:          exercise.TypeVerification,
		Format:        exercise.FormatMultipleChoice,
		Difficulty:    exercise.DifficultyMedium,
		Title:         "Whales",
		Content:       "Whales are fish.",
		CorrectAnswer: "B",
		Options:       []string{"A. True", "B. Whales are mammals", "C. Sharks", "D. None"},
		Grade:         4,
		GeneratedBy:   exercise.SourceTeacher,
		Reviewed:      true,
		Active:        true,
	}
	if _, err := repo.Create(ctx, visible); err != nil {
		t.Fatalf("create visible: %v", err)
	}

	got, err := repo.List(ctx, VisibleOnly(ProblemFilter{}))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Whales" {
		t.Fatalf("visible list = %+v, want only Whales", got)
	}
	if len(got[0].Options) != 4 {
		t.Errorf("options = %v, want 4 entries", got[0].Options)
	}

	pending := false
	got, err = repo.List(ctx, ProblemFilter{Reviewed: &pending, WithSteps: true})
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(got) != 1 || got[0].ID != hidden.ID {
		t.Fatalf("pending list = %+v, want the AI problem", got)
	}
	if len(got[0].Steps) != 3 {
		t.Errorf("pending steps = %d, want 3", len(got[0].Steps))
	}

	got, err = repo.List(ctx, ProblemFilter{Type: exercise.TypeVerification, Grade: 3})
	if err != nil {
		t.Fatalf("list by grade: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("grade 3 verification = %d, want 0", len(got))
	}
}

func TestProblemUpdateApprove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	yes := true
	title := "Plan a surprise party"
	updated, err := s.Problems().Update(ctx, p.ID, ProblemPatch{Reviewed: &yes, Active: &yes, Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Visible() {
		t.Error("approved problem should be visible")
	}
	if updated.Title != title {
		t.Errorf("title = %q, want %q", updated.Title, title)
	}

	_, err = s.Problems().Update(ctx, uuid.New(), ProblemPatch{Active: &yes})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("update missing err = %v, want ErrNotFound", err)
	}
}

func TestProblemDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createUser(t, s, "kim@example.com")
	p, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, _, err = s.Attempts().Record(ctx, AttemptRecord{
		UserID: u.ID, ProblemID: p.ID, Answer: "{}", Day: "2026-03-02",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := s.Problems().Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := s.Client().ProblemStep.Query().CountX(ctx); n != 0 {
		t.Errorf("steps left = %d, want 0", n)
	}
	if n := s.Client().Attempt.Query().CountX(ctx); n != 0 {
		t.Errorf("attempts left = %d, want 0", n)
	}
	if err := s.Problems().Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestCorrectRate(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds half up
		{5, 5, 100},
	}
	for _, tt := range tests {
		if got := CorrectRate(tt.correct, tt.total); got != tt.want {
			t.Errorf("CorrectRate(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestAttemptRecordUpdatesStatsAndProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createUser(t, s, "lee@example.com")
	p, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	outcomes := []bool{true, false, true}
	var stats ProblemStats
	for i, ok := range outcomes {
		var a *exercise.Attempt
		a, stats, err = s.Attempts().Record(ctx, AttemptRecord{
			UserID:    u.ID,
			ProblemID: p.ID,
			Answer:    fmt.Sprintf(`{"1":"answer %d"}`, i),
			IsCorrect: ok,
			Score:     map[bool]int{true: 80, false: 20}[ok],
			StepResults: []exercise.StepResult{
				{StepNumber: 1, Score: 80, IsCorrect: true, Method: "llm"},
			},
			Method:    "llm",
			TimeSpent: 30,
			Day:       "2026-03-02",
		})
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if len(a.StepResults) != 1 {
			t.Errorf("attempt %d step results = %d, want 1", i, len(a.StepResults))
		}
	}

	if stats.TotalAttempts != 3 || stats.CorrectAttempts != 2 || stats.CorrectRate != 67 {
		t.Errorf("stats = %+v, want 3/2/67", stats)
	}

	got, err := s.Problems().Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalAttempts != 3 || got.CorrectRate != 67 {
		t.Errorf("persisted stats = %d/%d, want 3/67", got.TotalAttempts, got.CorrectRate)
	}

	prog, err := s.Progress().ForDay(ctx, u.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if prog.ProblemsSolved != 3 || prog.CorrectAnswers != 2 || prog.TotalTime != 90 {
		t.Errorf("progress = %+v, want 3 solved, 2 correct, 90s", prog)
	}

	empty, err := s.Progress().ForDay(ctx, u.ID, "2026-03-03")
	if err != nil {
		t.Fatalf("progress empty: %v", err)
	}
	if empty.ProblemsSolved != 0 {
		t.Errorf("next day solved = %d, want 0", empty.ProblemsSolved)
	}

	recent, err := s.Attempts().Recent(ctx, u.ID, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d, want 2", len(recent))
	}
	if recent[0].ProblemTitle != p.Title {
		t.Errorf("recent problem title = %q, want %q", recent[0].ProblemTitle, p.Title)
	}
}

func TestAttemptRecordConcurrent(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "concurrent.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	u := createUser(t, s, "park@example.com")
	p, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := s.Attempts().Record(ctx, AttemptRecord{
				UserID:    u.ID,
				ProblemID: p.ID,
				Answer:    "x",
				IsCorrect: i%2 == 0,
				Day:       "2026-03-02",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := s.Problems().Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalAttempts != n || got.CorrectAttempts != n/2 || got.CorrectRate != 50 {
		t.Errorf("stats = %d/%d/%d, want %d/%d/50", got.TotalAttempts, got.CorrectAttempts, got.CorrectRate, n, n/2)
	}
	prog, err := s.Progress().ForDay(ctx, u.ID, "2026-03-02")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if prog.ProblemsSolved != n {
		t.Errorf("progress solved = %d, want %d", prog.ProblemsSolved, n)
	}
}

func TestUserRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Users()

	u := createUser(t, s, "  Choi@Example.com ")
	if u.Email != "choi@example.com" {
		t.Errorf("email = %q, want normalized", u.Email)
	}
	if u.Role != exercise.RoleStudent || u.Subscription != exercise.SubscriptionFree {
		t.Errorf("defaults = %s/%s, want STUDENT/FREE", u.Role, u.Subscription)
	}

	if _, err := repo.Create(ctx, &exercise.User{Email: "choi@example.com"}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate err = %v, want ErrConflict", err)
	}

	byEmail, err := repo.GetByEmail(ctx, "CHOI@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Error("get by email returned a different user")
	}

	admin, err := repo.SetRole(ctx, u.ID, exercise.RoleAdmin)
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if admin.Role != exercise.RoleAdmin {
		t.Errorf("role = %s, want ADMIN", admin.Role)
	}

	createUser(t, s, "jung@example.com")
	list, total, err := repo.List(ctx, UserFilter{Role: exercise.RoleStudent})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].Email != "jung@example.com" {
		t.Errorf("students = %d (%v), want only jung", total, list)
	}

	_, total, err = repo.List(ctx, UserFilter{Search: "CHOI"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 {
		t.Errorf("search total = %d, want 1", total)
	}
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for _, purpose := range []string{"problem-gen", "grading"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "gemini", Model: "gemini-2.0-flash", Purpose: purpose,
			InputTokens: 100, OutputTokens: 50, Success: true,
			RequestBody: "[user]\nhello", ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Purpose != "grading" {
		t.Errorf("newest purpose = %q, want grading", events[0].Purpose)
	}

	one, err := repo.GetLLMEvent(ctx, events[1].ID)
	if err != nil || one == nil {
		t.Fatalf("get: %v %v", one, err)
	}
	if one.RequestBody != "[user]\nhello" {
		t.Errorf("request body = %q", one.RequestBody)
	}
	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil || missing != nil {
		t.Errorf("missing = %v, %v; want nil, nil", missing, err)
	}

	pid := uuid.New()
	if err := repo.AppendGeneration(ctx, GenerationLogData{
		ProblemType: exercise.TypeVerification, Model: "gemini-2.0-flash",
		Success: true, ProblemID: &pid, Cost: 0.0002,
	}); err != nil {
		t.Fatalf("append generation: %v", err)
	}
	if err := repo.AppendGeneration(ctx, GenerationLogData{
		ProblemType: exercise.TypeVerification, Model: "gemini-2.0-flash",
		ErrorMessage: "upstream 500",
	}); err != nil {
		t.Fatalf("append failed generation: %v", err)
	}

	logs, err := repo.QueryGenerations(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query generations: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("generation logs = %d, want 2", len(logs))
	}
	if logs[0].Success || logs[0].ProblemID != nil {
		t.Errorf("newest log = %+v, want the failure", logs[0])
	}
	if logs[1].ProblemID == nil || *logs[1].ProblemID != pid {
		t.Errorf("problem id not round-tripped")
	}
	if logs[0].Sequence <= events[0].Sequence {
		t.Error("generation sequence should follow LLM event sequence")
	}
}

func TestStatsRepo(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	kim := createUser(t, s, "kim@example.com")
	lee := createUser(t, s, "lee@example.com")
	p, err := s.Problems().Create(ctx, sampleDecomposition())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	record := func(u *exercise.User, ok bool) {
		t.Helper()
		if _, _, err := s.Attempts().Record(ctx, AttemptRecord{
			UserID: u.ID, ProblemID: p.ID, IsCorrect: ok, TimeSpent: 60, Day: "2026-03-02",
		}); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		record(kim, true)
	}
	record(lee, true)
	record(lee, false)

	stats := s.Stats()

	users, err := stats.Users(ctx)
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if users.Total != 2 || users.ByRole["STUDENT"] != 2 || users.BySubscription["FREE"] != 2 {
		t.Errorf("users = %+v", users)
	}

	problems, err := stats.Problems(ctx)
	if err != nil {
		t.Fatalf("problems: %v", err)
	}
	if problems.Total != 1 || problems.Pending != 1 || problems.ByType["PROBLEM_DECOMPOSITION"] != 1 {
		t.Errorf("problems = %+v", problems)
	}

	totals, err := stats.Attempts(ctx)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if totals.Total != 5 || totals.Correct != 4 || totals.TotalTime != 300 {
		t.Errorf("attempt totals = %+v", totals)
	}

	ranked, err := stats.RankedProblems(ctx, 5, 5, true)
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}
	if len(ranked) != 1 || ranked[0].CorrectRate != 80 {
		t.Errorf("ranked = %+v", ranked)
	}
	ranked, err = stats.RankedProblems(ctx, 6, 5, true)
	if err != nil {
		t.Fatalf("ranked: %v", err)
	}
	if len(ranked) != 0 {
		t.Errorf("ranked above threshold = %d, want 0", len(ranked))
	}

	top, err := stats.TopStudents(ctx, 5)
	if err != nil {
		t.Fatalf("top students: %v", err)
	}
	if len(top) != 2 || top[0].UserID != kim.ID || top[0].Correct != 3 {
		t.Errorf("top students = %+v", top)
	}

	since, err := stats.AttemptsSince(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("since: %v", err)
	}
	if len(since) != 5 {
		t.Errorf("attempts since = %d, want 5", len(since))
	}

	gens, err := stats.Generations(ctx)
	if err != nil {
		t.Fatalf("generations: %v", err)
	}
	if gens.Total != 0 {
		t.Errorf("generations = %+v, want empty", gens)
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for _, e := range []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "problem-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "grading", InputTokens: 50, OutputTokens: 20, LatencyMs: 200, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "grading", InputTokens: 60, OutputTokens: 30, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "grading", InputTokens: 10, OutputTokens: 0, LatencyMs: 0},
	} {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatal(err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %+v", byPurpose)
	}
	g := byPurpose[0]
	if g.Purpose != "grading" || g.Calls != 3 || g.InputTokens != 120 || g.OutputTokens != 50 || g.AvgLatencyMs != 200 {
		t.Errorf("grading usage = %+v", g)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "gemini-2.0-flash" || byModel[0].Calls != 3 || byModel[0].OutputTokens != 450 {
		t.Errorf("model usage = %+v", byModel)
	}
}
