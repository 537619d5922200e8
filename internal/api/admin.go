package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

var validate = validator.New()

func (s *Server) adminListProblems(c *gin.Context) {
	f := store.ProblemFilter{WithSteps: true}
	if v := c.Query("reviewed"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, fmt.Errorf("reviewed must be true or false"))
			return
		}
		f.Reviewed = &b
	}
	if v := c.Query("type"); v != "" {
		t, err := exercise.ParseType(v)
		if err != nil {
			badRequest(c, err)
			return
		}
		f.Type = t
	}
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	f.Limit, f.Offset = limit, offset

	problems, err := s.store.Problems().List(c.Request.Context(), f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"problems": problems})
}

type stepRequest struct {
	StepNumber    int      `json:"stepNumber"`
	Title         string   `json:"title" validate:"required,max=200"`
	Description   string   `json:"description" validate:"required"`
	Hint          string   `json:"hint"`
	Options       []string `json:"options" validate:"omitempty,len=4,dive,required"`
	CorrectAnswer string   `json:"correctAnswer"`
}

type createProblemRequest struct {
	Type          string        `json:"type" validate:"required,oneof=AI_VERIFICATION PROBLEM_DECOMPOSITION"`
	AnswerFormat  string        `json:"answerFormat" validate:"omitempty,oneof=SHORT_ANSWER MULTIPLE_CHOICE TRUE_FALSE"`
	Difficulty    string        `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Title         string        `json:"title" validate:"required,max=200"`
	Content       string        `json:"content" validate:"required"`
	CorrectAnswer string        `json:"correctAnswer"`
	Explanation   string        `json:"explanation"`
	Subject       string        `json:"subject" validate:"required,max=50"`
	Grade         int           `json:"grade" validate:"required,min=1,max=6"`
	Options       []string      `json:"options" validate:"omitempty,len=4,dive,required"`
	Hints         []string      `json:"hints" validate:"omitempty,dive,required"`
	Steps         []stepRequest `json:"steps" validate:"omitempty,dive"`
	Reviewed      *bool         `json:"reviewed"`
	Active        *bool         `json:"active"`
}

func (r createProblemRequest) toProblem() (*exercise.Problem, error) {
	p := &exercise.Problem{
		Type:          exercise.Type(r.Type),
		Format:        exercise.AnswerFormat(r.AnswerFormat),
		Difficulty:    exercise.Difficulty(r.Difficulty),
		Title:         r.Title,
		Content:       r.Content,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Subject:       r.Subject,
		Grade:         r.Grade,
		Options:       r.Options,
		Hints:         r.Hints,
		GeneratedBy:   exercise.SourceTeacher,
		Reviewed:      true,
		Active:        true,
	}
	if p.Format == "" {
		p.Format = exercise.FormatShortAnswer
	}
	if r.Reviewed != nil {
		p.Reviewed = *r.Reviewed
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	for i, st := range r.Steps {
		p.Steps = append(p.Steps, exercise.Step{
			StepNumber:    i + 1,
			Title:         st.Title,
			Description:   st.Description,
			Hint:          st.Hint,
			Options:       st.Options,
			CorrectAnswer: st.CorrectAnswer,
		})
	}
	if err := checkAnswers(p); err != nil {
		return nil, err
	}
	return p, nil
}

// checkAnswers enforces the answer conventions of the exact-match formats.
func checkAnswers(p *exercise.Problem) error {
	if p.Type == exercise.TypeDecomposition && len(p.Steps) > 0 {
		for _, st := range p.Steps {
			if err := checkAnswer(p.Format, st.CorrectAnswer, st.Options); err != nil {
				return fmt.Errorf("step %d: %w", st.StepNumber, err)
			}
		}
		return nil
	}
	return checkAnswer(p.Format, p.CorrectAnswer, p.Options)
}

func checkAnswer(f exercise.AnswerFormat, answer string, options []string) error {
	switch f {
	case exercise.FormatMultipleChoice:
		if len(options) != len(exercise.ChoiceLabels) {
			return fmt.Errorf("%w: multiple choice needs exactly %d options", errInvalidProblem, len(exercise.ChoiceLabels))
		}
		for _, l := range exercise.ChoiceLabels {
			if answer == l {
				return nil
			}
		}
		return fmt.Errorf("%w: correct answer must be one of A, B, C, D", errInvalidProblem)
	case exercise.FormatTrueFalse:
		if answer != exercise.AnswerTrue && answer != exercise.AnswerFalse {
			return fmt.Errorf("%w: correct answer must be %s or %s", errInvalidProblem, exercise.AnswerTrue, exercise.AnswerFalse)
		}
	}
	return nil
}

var errInvalidProblem = errors.New("invalid problem")

func (s *Server) createProblem(c *gin.Context) {
	var req createProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(c, err)
		return
	}
	p, err := req.toProblem()
	if err != nil {
		badRequest(c, err)
		return
	}
	created, err := s.store.Problems().Create(c.Request.Context(), p)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type updateProblemRequest struct {
	Title         *string   `json:"title" validate:"omitempty,min=1,max=200"`
	Content       *string   `json:"content" validate:"omitempty,min=1"`
	CorrectAnswer *string   `json:"correctAnswer"`
	Explanation   *string   `json:"explanation"`
	Subject       *string   `json:"subject" validate:"omitempty,min=1,max=50"`
	Difficulty    *string   `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Grade         *int      `json:"grade" validate:"omitempty,min=1,max=6"`
	Options       *[]string `json:"options" validate:"omitempty,len=4,dive,required"`
	Hints         *[]string `json:"hints"`
	Reviewed      *bool     `json:"reviewed"`
	Active        *bool     `json:"active"`
}

func (r updateProblemRequest) toPatch() store.ProblemPatch {
	patch := store.ProblemPatch{
		Title:         r.Title,
		Content:       r.Content,
		CorrectAnswer: r.CorrectAnswer,
		Explanation:   r.Explanation,
		Subject:       r.Subject,
		Grade:         r.Grade,
		Options:       r.Options,
		Hints:         r.Hints,
		Reviewed:      r.Reviewed,
		Active:        r.Active,
	}
	if r.Difficulty != nil {
		d := exercise.Difficulty(*r.Difficulty)
		patch.Difficulty = &d
	}
	return patch
}

func (s *Server) updateProblem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req updateProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(c, err)
		return
	}
	if req.CorrectAnswer != nil || req.Options != nil {
		current, err := s.store.Problems().Get(c.Request.Context(), id)
		if err != nil {
			s.writeError(c, err)
			return
		}
		if err := checkAnswers(req.answerView(current)); err != nil {
			badRequest(c, err)
			return
		}
	}
	s.patch(c, id, req.toPatch())
}

// answerView returns a copy of p with the patched answer and options, for
// checking the result against the format's answer conventions.
func (r updateProblemRequest) answerView(p *exercise.Problem) *exercise.Problem {
	view := *p
	if r.CorrectAnswer != nil {
		view.CorrectAnswer = *r.CorrectAnswer
	}
	if r.Options != nil {
		view.Options = *r.Options
	}
	return &view
}

func (s *Server) approve(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	t := true
	s.patch(c, id, store.ProblemPatch{Reviewed: &t, Active: &t})
}

func (s *Server) reject(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	t, f := true, false
	s.patch(c, id, store.ProblemPatch{Reviewed: &t, Active: &f})
}

func (s *Server) patch(c *gin.Context, id uuid.UUID, patch store.ProblemPatch) {
	p, err := s.store.Problems().Update(c.Request.Context(), id, patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProblem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if err := s.store.Problems().Delete(c.Request.Context(), id); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

type generateRequest struct {
	Type         string `json:"type" validate:"required,oneof=AI_VERIFICATION PROBLEM_DECOMPOSITION"`
	Count        int    `json:"count" validate:"required,min=1,max=10"`
	Difficulty   string `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Grade        int    `json:"grade" validate:"required,min=1,max=6"`
	Subject      string `json:"subject" validate:"omitempty,max=50"`
	AnswerFormat string `json:"answerFormat" validate:"omitempty,oneof=SHORT_ANSWER MULTIPLE_CHOICE TRUE_FALSE"`
	Language     string `json:"language" validate:"omitempty,oneof=ko en"`
}

type generateResponse struct {
	Created  int                    `json:"created"`
	Problems []*exercise.Problem    `json:"problems"`
	Errors   []problemgen.ItemError `json:"errors,omitempty"`
}

type batchFailedResponse struct {
	Error  string                 `json:"error"`
	Errors []problemgen.ItemError `json:"errors"`
}

func (s *Server) generate(c *gin.Context) {
	if s.batch == nil {
		s.writeError(c, s.genErr)
		return
	}

	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(c, err)
		return
	}

	res, err := s.batch.Run(c.Request.Context(), problemgen.BatchRequest{
		Count: req.Count,
		Input: problemgen.GenerateInput{
			Type:       exercise.Type(req.Type),
			Difficulty: exercise.Difficulty(req.Difficulty),
			Grade:      req.Grade,
			Subject:    req.Subject,
			Format:     exercise.AnswerFormat(req.AnswerFormat),
			Language:   exercise.Language(req.Language),
		},
	})
	switch {
	case errors.Is(err, problemgen.ErrBatchFailed):
		c.JSON(http.StatusInternalServerError, batchFailedResponse{Error: err.Error(), Errors: res.Errors})
		return
	case err != nil:
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, generateResponse{Created: len(res.Created), Problems: res.Created, Errors: res.Errors})
}

func (s *Server) adminStats(c *gin.Context) {
	a, err := s.stats.Admin(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type userView struct {
	*exercise.User
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
	Accuracy int `json:"accuracy"`
}

func (s *Server) listUsers(c *gin.Context) {
	f := store.UserFilter{Search: c.Query("search")}
	if v := c.Query("role"); v != "" {
		r, err := exercise.ParseRole(v)
		if err != nil {
			badRequest(c, err)
			return
		}
		f.Role = r
	}
	if v := c.Query("subscription"); v != "" {
		sub := exercise.Subscription(v)
		if !sub.Valid() {
			badRequest(c, fmt.Errorf("unknown subscription %q", v))
			return
		}
		f.Subscription = sub
	}
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	f.Limit, f.Offset = limit, offset

	ctx := c.Request.Context()
	users, total, err := s.store.Users().List(ctx, f)
	if err != nil {
		s.writeError(c, err)
		return
	}
	ids := make([]uuid.UUID, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	summaries, err := s.store.Stats().Summaries(ctx, ids)
	if err != nil {
		s.writeError(c, err)
		return
	}

	out := make([]userView, len(users))
	for i, u := range users {
		sum := summaries[u.ID]
		out[i] = userView{
			User:     u,
			Attempts: sum.Attempts,
			Correct:  sum.Correct,
			Accuracy: store.CorrectRate(sum.Correct, sum.Attempts),
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"users":  out,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}
