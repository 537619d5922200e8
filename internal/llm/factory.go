package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/thinkwise-edu/thinkwise/internal/store"
)

// NewProvider creates a Provider from configuration.
// The base provider is wrapped as retry → timeout → logging → base, so every
// attempt is logged and bounded separately.
//
// Missing credentials yield *ErrConfiguration. The mock provider is returned
// bare so tests can queue responses on it.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderGeminiREST:
		base, err = NewGeminiRESTProvider(cfg.Gemini, cfg.Timeout)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, eventRepo, logger)
	bounded := WithTimeout(logged, cfg.Timeout)
	return WithRetry(bounded, cfg.Retry), nil
}
