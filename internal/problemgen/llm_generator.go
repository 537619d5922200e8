package problemgen

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/exercise"
	"github.com/thinkwise-edu/thinkwise/internal/llm"
)

// Result is one generated problem with the call's accounting.
type Result struct {
	Problem *GeneratedProblem
	Prompt  Prompt
	Usage   llm.Usage
	Model   string
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	prompts  *PromptBuilder
	config   Config
	logger   *zap.Logger
}

// New creates a new LLMGenerator. A nil prompts builder uses the global
// random source.
func New(provider llm.Provider, prompts *PromptBuilder, cfg Config, logger *zap.Logger) *LLMGenerator {
	if prompts == nil {
		prompts = NewPromptBuilder(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMGenerator{provider: provider, prompts: prompts, config: cfg, logger: logger}
}

func (g *LLMGenerator) ModelID() string {
	return g.provider.ModelID()
}

// Generate validates the input, prompts the LLM and normalizes the reply.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Result, error) {
	if input.Language == "" {
		input.Language = exercise.Language(g.config.Language)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prompt := g.prompts.Build(input)

	req := llm.Prompt(prompt.Text)
	req.Schema = prompt.Shape.Schema()
	req.MaxTokens = g.config.MaxTokens
	req.Temperature = g.config.Temperature

	resp, err := g.provider.Generate(llm.WithPurpose(ctx, llm.PurposeProblemGen), req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	problem, err := Normalize(resp.Text, prompt.Shape)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			g.logger.Warn("unparseable generation reply",
				zap.String("shape", prompt.Shape.Name),
				zap.String("text", llm.Truncate(pe.Text, 500)),
			)
		} else {
			g.logger.Warn("generation reply failed schema",
				zap.String("shape", prompt.Shape.Name),
				zap.Error(err),
			)
		}
		return nil, err
	}

	return &Result{
		Problem: problem,
		Prompt:  prompt,
		Usage:   resp.Usage,
		Model:   resp.Model,
	}, nil
}
