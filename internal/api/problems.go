package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thinkwise-edu/thinkwise/internal/auth"
	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/practice"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// studentStep is a step without its answer.
type studentStep struct {
	StepNumber  int      `json:"stepNumber"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Hint        string   `json:"hint"`
	Options     []string `json:"options,omitempty"`
}

// studentProblem is a problem as students see it: no answer, no
// explanation and no step answers.
type studentProblem struct {
	ID          uuid.UUID             `json:"id"`
	Type        exercise.Type         `json:"type"`
	Format      exercise.AnswerFormat `json:"answerFormat"`
	Difficulty  exercise.Difficulty   `json:"difficulty"`
	Title       string                `json:"title"`
	Content     string                `json:"content"`
	Subject     string                `json:"subject"`
	Grade       int                   `json:"grade"`
	Options     []string              `json:"options,omitempty"`
	Hints       []string              `json:"hints,omitempty"`
	Steps       []studentStep         `json:"steps,omitempty"`
	CorrectRate int                   `json:"correctRate"`
	CreatedAt   time.Time             `json:"createdAt"`
}

func toStudent(p *exercise.Problem) studentProblem {
	out := studentProblem{
		ID:          p.ID,
		Type:        p.Type,
		Format:      p.Format,
		Difficulty:  p.Difficulty,
		Title:       p.Title,
		Content:     p.Content,
		Subject:     p.Subject,
		Grade:       p.Grade,
		Options:     p.Options,
		Hints:       p.Hints,
		CorrectRate: p.CorrectRate,
		CreatedAt:   p.CreatedAt,
	}
	for _, s := range p.Steps {
		out.Steps = append(out.Steps, studentStep{
			StepNumber:  s.StepNumber,
			Title:       s.Title,
			Description: s.Description,
			Hint:        s.Hint,
			Options:     s.Options,
		})
	}
	return out
}

func (s *Server) listProblems(c *gin.Context) {
	f := store.ProblemFilter{Type: exercise.TypeVerification, WithSteps: true}
	if v := c.Query("type"); v != "" {
		t, err := exercise.ParseType(v)
		if err != nil {
			badRequest(c, err)
			return
		}
		f.Type = t
	}
	if v := c.Query("difficulty"); v != "" {
		d, err := exercise.ParseDifficulty(v)
		if err != nil {
			badRequest(c, err)
			return
		}
		f.Difficulty = d
	}
	if v := c.Query("grade"); v != "" {
		g, err := strconv.Atoi(v)
		if err != nil || g < exercise.MinGrade || g > exercise.MaxGrade {
			badRequest(c, fmt.Errorf("grade must be between %d and %d", exercise.MinGrade, exercise.MaxGrade))
			return
		}
		f.Grade = g
	}
	limit, offset, err := page(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	f.Limit, f.Offset = limit, offset

	problems, err := s.store.Problems().List(c.Request.Context(), store.VisibleOnly(f))
	if err != nil {
		s.writeError(c, err)
		return
	}
	out := make([]studentProblem, len(problems))
	for i, p := range problems {
		out[i] = toStudent(p)
	}
	c.JSON(http.StatusOK, gin.H{"problems": out})
}

func (s *Server) getProblem(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	p, err := s.store.Problems().Get(c.Request.Context(), id)
	if err != nil {
		s.writeError(c, err)
		return
	}
	if !p.Visible() {
		s.writeError(c, practice.ErrProblemUnavailable)
		return
	}
	c.JSON(http.StatusOK, toStudent(p))
}

type submitRequest struct {
	Answer    string `json:"answer"`
	TimeSpent int    `json:"timeSpent" validate:"min=0"`
	HintUsed  bool   `json:"hintUsed"`
}

func (s *Server) submit(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		s.writeError(c, err)
		return
	}
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		s.writeError(c, err)
		return
	}

	res, err := s.practice.Submit(c.Request.Context(), practice.SubmitInput{
		UserID:    auth.FromContext(c).UserID,
		ProblemID: id,
		Answer:    req.Answer,
		TimeSpent: req.TimeSpent,
		HintUsed:  req.HintUsed,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) myStats(c *gin.Context) {
	st, err := s.stats.Student(c.Request.Context(), auth.FromContext(c).UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (s *Server) today(c *gin.Context) {
	t, err := s.practice.Today(c.Request.Context(), auth.FromContext(c).UserID)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", errBadID, c.Param("id"))
	}
	return id, nil
}

// page reads limit and offset, or page and limit, from the query string.
func page(c *gin.Context) (limit, offset int, err error) {
	limit = defaultPageSize
	if v := c.Query("limit"); v != "" {
		if limit, err = strconv.Atoi(v); err != nil || limit < 1 || limit > maxPageSize {
			return 0, 0, fmt.Errorf("limit must be between 1 and %d", maxPageSize)
		}
	}
	if v := c.Query("offset"); v != "" {
		if offset, err = strconv.Atoi(v); err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("offset must not be negative")
		}
	}
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			return 0, 0, fmt.Errorf("page must be at least 1")
		}
		offset = (p - 1) * limit
	}
	return limit, offset, nil
}
