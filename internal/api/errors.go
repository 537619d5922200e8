package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/practice"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type limitResponse struct {
	Error        string `json:"error"`
	LimitReached bool   `json:"limitReached"`
}

type configResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint"`
}

var errBadID = errors.New("invalid id")

// writeError maps err to a status code and writes the JSON body.
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		cfgErr *llm.ErrConfiguration
		verr   validator.ValidationErrors
	)
	switch {
	case errors.Is(err, practice.ErrDailyLimitReached):
		c.JSON(http.StatusForbidden, limitResponse{Error: err.Error(), LimitReached: true})
	case errors.Is(err, practice.ErrProblemUnavailable):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, practice.ErrProblemNotFound),
		errors.Is(err, practice.ErrUserNotFound),
		errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &verr),
		errors.Is(err, errBadID),
		errors.Is(err, practice.ErrInvalidAnswer),
		errors.Is(err, problemgen.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &cfgErr):
		c.JSON(http.StatusInternalServerError, configResponse{Error: err.Error(), Hint: configHint(cfgErr)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func configHint(e *llm.ErrConfiguration) string {
	if e.Setting != "" {
		return "Set " + e.Setting + " in the environment or the config file and restart the server."
	}
	return "Check llm.provider in the config file; supported providers are gemini, gemini-rest, openai, openrouter, anthropic and mock."
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
