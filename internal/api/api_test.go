package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/auth"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/grading"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/metrics"
	"github.com/thinkwise-edu/thinkwise/internal/practice"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/stats"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

const generatedReply = `{
	"title": "AI가 알려준 공룡 정보",
	"content": "공룡은 약 6600만 년 전에 멸종했으며 티라노사우루스는 초식 공룡이었습니다.",
	"correctAnswer": "티라노사우루스는 육식 공룡입니다.",
	"explanation": "티라노사우루스는 날카로운 이빨을 가진 육식 공룡이에요."
}`

type env struct {
	t       *testing.T
	st      *store.Store
	router  *gin.Engine
	gen     *llm.MockProvider
	issuer  *auth.Issuer
	student string
	admin   string
}

func newEnv(t *testing.T, withBatch bool) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	issuer, err := auth.NewIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	logger := zap.NewNop()
	m := metrics.New()
	engine := grading.New(nil, logger, m.GradingFallbacks)

	e := &env{t: t, st: st, issuer: issuer, gen: llm.NewMockProvider()}
	deps := Deps{
		Store:    st,
		Practice: practice.New(st, engine, m, practice.Config{FreeDailyLimit: 3}, logger),
		Stats:    stats.New(st),
		Issuer:   issuer,
		Metrics:  m,
		Logger:   logger,
	}
	if withBatch {
		cfg := problemgen.DefaultConfig()
		cfg.Throttle = 0
		gen := problemgen.New(e.gen, problemgen.NewPromptBuilder(rand.New(rand.NewPCG(1, 2))), cfg, logger)
		deps.Batch = problemgen.NewBatch(gen, st.Problems(), st.EventRepo(), cfg, logger)
		deps.Batch.SetObserver(m)
	} else {
		deps.GenerationErr = &llm.ErrConfiguration{Provider: "gemini", Setting: "GEMINI_API_KEY"}
	}
	e.router = NewRouter(deps)

	e.student = e.token(exercise.RoleStudent, exercise.SubscriptionFree)
	e.admin = e.token(exercise.RoleAdmin, exercise.SubscriptionPremium)
	return e
}

func (e *env) token(role exercise.Role, sub exercise.Subscription) string {
	e.t.Helper()
	u, err := e.st.Users().Create(context.Background(), &exercise.User{
		Email:        uuid.NewString() + "@example.com",
		Name:         string(role),
		Role:         role,
		Subscription: sub,
	})
	require.NoError(e.t, err)
	tok, err := e.issuer.Issue(u)
	require.NoError(e.t, err)
	return tok
}

func (e *env) do(method, path, token string, body any) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func (e *env) createProblem(p *exercise.Problem) *exercise.Problem {
	e.t.Helper()
	created, err := e.st.Problems().Create(context.Background(), p)
	require.NoError(e.t, err)
	return created
}

func trueFalse(visible bool) *exercise.Problem {
	return &exercise.Problem{
		Type:          exercise.TypeVerification,
		Format:        exercise.FormatTrueFalse,
		Difficulty:    exercise.DifficultyEasy,
		Title:         "Is the sun a planet?",
		Content:       "The sun is the biggest planet.",
		CorrectAnswer: "X",
		Explanation:   "The sun is a star.",
		Subject:       "space",
		Grade:         3,
		GeneratedBy:   exercise.SourceTeacher,
		Reviewed:      visible,
		Active:        visible,
	}
}

func TestHealthAndMetrics(t *testing.T) {
	e := newEnv(t, false)

	w := e.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = e.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "thinkwise_http_requests_total")
}

func TestAuthRequired(t *testing.T) {
	e := newEnv(t, false)

	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/problems", "", nil).Code)
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, "/api/admin/problems", e.student, nil).Code)
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/admin/problems", e.admin, nil).Code)
}

func TestListProblems_HidesAnswersAndUnreviewed(t *testing.T) {
	e := newEnv(t, false)
	e.createProblem(trueFalse(true))
	e.createProblem(trueFalse(false))

	w := e.do(http.MethodGet, "/api/problems", e.student, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string][]map[string]any](t, w)
	require.Len(t, body["problems"], 1)
	p := body["problems"][0]
	assert.Equal(t, "Is the sun a planet?", p["title"])
	assert.NotContains(t, p, "correctAnswer")
	assert.NotContains(t, p, "explanation")

	w = e.do(http.MethodGet, "/api/problems?type=PROBLEM_DECOMPOSITION", e.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[map[string][]map[string]any](t, w)["problems"])

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/problems?grade=9", e.student, nil).Code)
}

func TestGetProblem(t *testing.T) {
	e := newEnv(t, false)
	visible := e.createProblem(trueFalse(true))
	hidden := e.createProblem(trueFalse(false))

	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/problems/"+visible.ID.String(), e.student, nil).Code)
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, "/api/problems/"+hidden.ID.String(), e.student, nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/api/problems/"+uuid.NewString(), e.student, nil).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/problems/nope", e.student, nil).Code)
}

func TestSubmit_LimitReached(t *testing.T) {
	e := newEnv(t, false)
	p := e.createProblem(trueFalse(true))
	path := "/api/problems/" + p.ID.String() + "/submit"

	for range 3 {
		w := e.do(http.MethodPost, path, e.student, gin.H{"answer": "x", "timeSpent": 12})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		res := decode[practice.SubmitResult](t, w)
		assert.True(t, res.IsCorrect)
		assert.Equal(t, "exact", res.Method)
		assert.Equal(t, "The sun is a star.", res.Explanation)
	}

	w := e.do(http.MethodPost, path, e.student, gin.H{"answer": "X"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"daily attempt limit reached","limitReached":true}`, w.Body.String())

	w = e.do(http.MethodGet, "/api/stats/today", e.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	today := decode[practice.Today](t, w)
	assert.Equal(t, 3, today.Used)
	assert.Equal(t, 0, *today.Remaining)
	assert.Len(t, today.Recent, 3)

	w = e.do(http.MethodGet, "/api/stats/me", e.student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode[stats.Student](t, w)
	assert.Equal(t, 3, me.TotalAttempts)
	assert.Equal(t, 100, me.Accuracy)
}

func TestSubmit_ShortAnswerFallsBackWithoutProvider(t *testing.T) {
	e := newEnv(t, false)
	p := trueFalse(true)
	p.Format = exercise.FormatShortAnswer
	p.CorrectAnswer = "the sun is a star"
	p = e.createProblem(p)

	w := e.do(http.MethodPost, "/api/problems/"+p.ID.String()+"/submit", e.admin, gin.H{"answer": "The Sun is a STAR"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[practice.SubmitResult](t, w)
	assert.Equal(t, "fallback", res.Method)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, grading.ReasoningFallbackMarker, res.Reasoning)
}

func TestAdminLifecycle(t *testing.T) {
	e := newEnv(t, false)

	create := gin.H{
		"type":          "AI_VERIFICATION",
		"answerFormat":  "MULTIPLE_CHOICE",
		"difficulty":    "MEDIUM",
		"title":         "Which sentence is wrong?",
		"content":       "Bees make honey. Spiders are insects.",
		"correctAnswer": "B",
		"subject":       "animals",
		"grade":         4,
		"options":       []string{"A. Bees make honey", "B. Spiders are insects", "C. Bees fly", "D. Spiders spin webs"},
		"reviewed":      false,
		"active":        false,
	}
	w := e.do(http.MethodPost, "/api/admin/problems", e.admin, create)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	p := decode[exercise.Problem](t, w)
	assert.Equal(t, exercise.SourceTeacher, p.GeneratedBy)
	assert.False(t, p.Visible())
	id := p.ID.String()

	w = e.do(http.MethodGet, "/api/admin/problems?reviewed=false", e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[map[string][]exercise.Problem](t, w)["problems"], 1)

	w = e.do(http.MethodPost, "/api/admin/problems/"+id+"/approve", e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	p = decode[exercise.Problem](t, w)
	assert.True(t, p.Reviewed)
	assert.True(t, p.Active)

	w = e.do(http.MethodPatch, "/api/admin/problems/"+id, e.admin, gin.H{"title": "Find the wrong sentence", "grade": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	p = decode[exercise.Problem](t, w)
	assert.Equal(t, "Find the wrong sentence", p.Title)
	assert.Equal(t, 5, p.Grade)

	w = e.do(http.MethodPost, "/api/admin/problems/"+id+"/reject", e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	p = decode[exercise.Problem](t, w)
	assert.True(t, p.Reviewed)
	assert.False(t, p.Active)

	assert.Equal(t, http.StatusOK, e.do(http.MethodDelete, "/api/admin/problems/"+id, e.admin, nil).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/admin/problems/"+id, e.admin, nil).Code)
}

func TestUpdateProblem_KeepsAnswerConventions(t *testing.T) {
	e := newEnv(t, false)
	mc := trueFalse(true)
	mc.Format = exercise.FormatMultipleChoice
	mc.CorrectAnswer = "A"
	mc.Options = []string{"A. star", "B. planet", "C. moon", "D. comet"}
	mcID := e.createProblem(mc).ID
	tfID := e.createProblem(trueFalse(true)).ID

	tests := []struct {
		name   string
		id     uuid.UUID
		body   gin.H
		status int
	}{
		{"mc answer outside labels", mcID, gin.H{"correctAnswer": "Z"}, http.StatusBadRequest},
		{"mc lowercase label", mcID, gin.H{"correctAnswer": "a"}, http.StatusBadRequest},
		{"tf answer not O or X", tfID, gin.H{"correctAnswer": "yes"}, http.StatusBadRequest},
		{"mc options without answer change", mcID, gin.H{"options": []string{"A", "B", "C", "D"}}, http.StatusOK},
		{"mc valid label", mcID, gin.H{"correctAnswer": "C"}, http.StatusOK},
		{"tf valid flip", tfID, gin.H{"correctAnswer": "O"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := e.st.Problems().Get(context.Background(), tt.id)
			require.NoError(t, err)

			w := e.do(http.MethodPatch, "/api/admin/problems/"+tt.id.String(), e.admin, tt.body)
			require.Equal(t, tt.status, w.Code, w.Body.String())

			after, err := e.st.Problems().Get(context.Background(), tt.id)
			require.NoError(t, err)
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, before.CorrectAnswer, after.CorrectAnswer)
			} else if a, ok := tt.body["correctAnswer"]; ok {
				assert.Equal(t, a, after.CorrectAnswer)
			}
		})
	}

	assert.Equal(t, http.StatusNotFound,
		e.do(http.MethodPatch, "/api/admin/problems/"+uuid.New().String(), e.admin, gin.H{"correctAnswer": "A"}).Code)
}

func TestCreateProblem_Validation(t *testing.T) {
	e := newEnv(t, false)
	base := func() gin.H {
		return gin.H{
			"type": "AI_VERIFICATION", "answerFormat": "TRUE_FALSE", "difficulty": "EASY",
			"title": "t", "content": "c", "correctAnswer": "O", "subject": "s", "grade": 2,
		}
	}
	tests := map[string]func(gin.H){
		"missing title":  func(b gin.H) { delete(b, "title") },
		"grade too high": func(b gin.H) { b["grade"] = 7 },
		"bad type":       func(b gin.H) { b["type"] = "ESSAY" },
		"bad tf answer":  func(b gin.H) { b["correctAnswer"] = "yes" },
		"mc with 3 opts": func(b gin.H) { b["answerFormat"] = "MULTIPLE_CHOICE"; b["correctAnswer"] = "A"; b["options"] = []string{"a", "b", "c"} },
		"mc bad answer":  func(b gin.H) { b["answerFormat"] = "MULTIPLE_CHOICE"; b["correctAnswer"] = "E"; b["options"] = []string{"a", "b", "c", "d"} },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			b := base()
			mutate(b)
			w := e.do(http.MethodPost, "/api/admin/problems", e.admin, b)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	assert.Equal(t, http.StatusCreated, e.do(http.MethodPost, "/api/admin/problems", e.admin, base()).Code)
}

func TestGenerate_NotConfigured(t *testing.T) {
	e := newEnv(t, false)
	w := e.do(http.MethodPost, "/api/admin/problems/generate", e.admin, gin.H{"type": "AI_VERIFICATION", "count": 1, "grade": 3})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[map[string]string](t, w)
	assert.Contains(t, body["hint"], "GEMINI_API_KEY")
}

func TestGenerate(t *testing.T) {
	e := newEnv(t, true)
	e.gen.AddResponse(llm.MockResponse{Text: generatedReply})
	e.gen.AddResponse(llm.MockResponse{Text: "not json"})

	w := e.do(http.MethodPost, "/api/admin/problems/generate", e.admin, gin.H{"type": "AI_VERIFICATION", "count": 2, "grade": 3})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	res := decode[generateResponse](t, w)
	assert.Equal(t, 1, res.Created)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 1, res.Errors[0].Index)
	assert.False(t, res.Problems[0].Reviewed)
	assert.False(t, res.Problems[0].Active)

	// Generated problems stay hidden from students until approved.
	w = e.do(http.MethodGet, "/api/problems", e.student, nil)
	assert.Empty(t, decode[map[string][]map[string]any](t, w)["problems"])
}

func TestGenerate_AllFail(t *testing.T) {
	e := newEnv(t, true)
	for range 5 {
		e.gen.AddResponse(llm.MockResponse{Err: &llm.ErrUpstream{StatusCode: 500, Body: "boom"}})
	}

	w := e.do(http.MethodPost, "/api/admin/problems/generate", e.admin, gin.H{"type": "PROBLEM_DECOMPOSITION", "count": 5, "grade": 5})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	res := decode[batchFailedResponse](t, w)
	assert.Len(t, res.Errors, 5)

	n, err := e.st.Problems().List(context.Background(), store.ProblemFilter{Type: exercise.TypeDecomposition})
	require.NoError(t, err)
	assert.Empty(t, n)
}

func TestGenerate_BadRequest(t *testing.T) {
	e := newEnv(t, true)
	for _, body := range []gin.H{
		{"type": "AI_VERIFICATION", "count": 0, "grade": 3},
		{"type": "AI_VERIFICATION", "count": 11, "grade": 3},
		{"type": "AI_VERIFICATION", "count": 1, "grade": 3, "language": "fr"},
	} {
		w := e.do(http.MethodPost, "/api/admin/problems/generate", e.admin, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%v: %s", body, w.Body.String())
	}
	assert.Zero(t, e.gen.CallCount())
}

func TestAdminStatsAndUsers(t *testing.T) {
	e := newEnv(t, false)
	p := e.createProblem(trueFalse(true))
	w := e.do(http.MethodPost, "/api/problems/"+p.ID.String()+"/submit", e.student, gin.H{"answer": "O"})
	require.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/admin/stats", e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	a := decode[stats.Admin](t, w)
	assert.Equal(t, 2, a.Users.Total)
	assert.Equal(t, 1, a.Attempts.Total)

	w = e.do(http.MethodGet, "/api/admin/users?role=STUDENT", e.admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Users []struct {
			Email    string `json:"email"`
			Attempts int    `json:"attempts"`
		} `json:"users"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Users, 1)
	assert.Equal(t, 1, body.Users[0].Attempts)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/api/admin/users?role=KING", e.admin, nil).Code)
}
