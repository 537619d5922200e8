package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/config"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
	"github.com/thinkwise-edu/thinkwise/internal/logging"
	"github.com/thinkwise-edu/thinkwise/internal/problemgen"
	"github.com/thinkwise-edu/thinkwise/internal/store"
)

// app bundles what every command needs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store

	closeLog io.Closer
}

// setup loads config, builds the logger and opens the database.
func setup(cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, os.ExpandEnv(cfg.Database.Path))
	if err != nil {
		closeLog.Close()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		closeLog.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	logger.Debug("database opened", zap.String("path", dbPath))

	return &app{cfg: cfg, logger: logger, store: s, closeLog: closeLog}, nil
}

func (a *app) Close() {
	a.store.Close()
	a.closeLog.Close()
}

// provider builds the configured LLM provider stack.
func (a *app) provider(ctx context.Context) (llm.Provider, error) {
	return llm.NewProvider(ctx, a.cfg.LLM, a.store.EventRepo(), a.logger)
}

// batch wires a generator and batch runner around p.
func (a *app) batch(p llm.Provider) *problemgen.Batch {
	gen := problemgen.New(p, problemgen.NewPromptBuilder(nil), a.cfg.Generation, a.logger)
	return problemgen.NewBatch(gen, a.store.Problems(), a.store.EventRepo(), a.cfg.Generation, a.logger)
}
