// Package api exposes ThinkWise over HTTP.
package api

import (
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/auth"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/metrics"
	"github.com/thinkwise-edu/thinkwise/internal/practice"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/stats"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

// Deps are the services behind the API.
type Deps struct {
	Store    *store.Store
	Practice *practice.Service
	Stats    *stats.Service
	Issuer   *auth.Issuer
	Metrics  *metrics.Metrics
	Logger   *zap.Logger

	// Batch is nil when no LLM provider is configured; GenerationErr then
	// explains why.
	Batch         *problemgen.Batch
	GenerationErr error

	AllowedOrigins []string
}

// Server holds the handlers.
type Server struct {
	store    *store.Store
	practice *practice.Service
	stats    *stats.Service
	batch    *problemgen.Batch
	genErr   error
	logger   *zap.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	genErr := d.GenerationErr
	if d.Batch == nil && genErr == nil {
		genErr = &llm.ErrConfiguration{Provider: "none", Err: errors.New("no LLM provider configured")}
	}
	s := &Server{
		store:    d.Store,
		practice: d.Practice,
		stats:    d.Stats,
		batch:    d.Batch,
		genErr:   genErr,
		logger:   logger,
	}

	r := gin.New()
	r.Use(requestLogger(logger), gin.CustomRecovery(func(c *gin.Context, v any) {
		logger.Error("panic in handler", zap.Any("panic", v), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", d.Metrics.Handler())
	}
	r.Use(cors.New(corsConfig(d.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(auth.Middleware(d.Issuer))
	{
		api.GET("/problems", s.listProblems)
		api.GET("/problems/:id", s.getProblem)
		api.POST("/problems/:id/submit", s.submit)
		api.GET("/stats/me", s.myStats)
		api.GET("/stats/today", s.today)
	}

	admin := api.Group("/admin")
	admin.Use(auth.RequireStaff())
	{
		admin.GET("/problems", s.adminListProblems)
		admin.POST("/problems", s.createProblem)
		admin.POST("/problems/generate", s.generate)
		admin.PATCH("/problems/:id", s.updateProblem)
		admin.DELETE("/problems/:id", s.deleteProblem)
		admin.POST("/problems/:id/approve", s.approve)
		admin.POST("/problems/:id/reject", s.reject)
		admin.GET("/stats", s.adminStats)
		admin.GET("/users", s.listUsers)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// requestLogger logs one line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", fields...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}
	}
}
