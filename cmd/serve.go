package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/api"
	"github.com/thinkwise-edu/thinkwise/internal/auth"
	"github.com/thinkwise-edu/thinkwise/internal/grading"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/metrics"
	"github.com/thinkwise-edu/thinkwise/internal/practice"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/stats"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		defer a.Close()
		defer a.logger.Sync()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			a.cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		issuer, err := auth.NewIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
		if err != nil {
			return fmt.Errorf("auth: %w (set JWT_SECRET)", err)
		}

		m := metrics.New()

		// Without a provider, grading still works through the keyword
		// fallback; only generation is unavailable.
		var (
			batch  *problemgen.Batch
			genErr error
		)
		provider, err := a.provider(ctx)
		if err != nil {
			a.logger.Warn("LLM provider unavailable, generation disabled", zap.Error(err))
			genErr = err
			provider = nil
		} else {
			batch = a.batch(provider)
			batch.SetObserver(m)
		}

		grader := grading.New(provider, a.logger.Named("grading"), m.GradingFallbacks)
		svc := practice.New(a.store, grader, m, practice.Config{
			FreeDailyLimit: a.cfg.Practice.FreeDailyLimit,
		}, a.logger.Named("practice"))

		gin.SetMode(a.cfg.Server.Mode)
		router := api.NewRouter(api.Deps{
			Store:          a.store,
			Practice:       svc,
			Stats:          stats.New(a.store),
			Issuer:         issuer,
			Metrics:        m,
			Logger:         a.logger.Named("api"),
			Batch:          batch,
			GenerationErr:  genErr,
			AllowedOrigins: a.cfg.Server.AllowedOrigins,
		})

		srv := &http.Server{
			Addr:         a.cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  a.cfg.Server.ReadTimeout,
			WriteTimeout: a.cfg.Server.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			a.logger.Info("listening",
				zap.String("addr", srv.Addr),
				zap.String("mode", a.cfg.Server.Mode),
				zap.String("llm", providerName(provider)),
			)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		a.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

// providerName is used in startup logs.
func providerName(p llm.Provider) string {
	if p == nil {
		return "none"
	}
	return p.ModelID()
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
