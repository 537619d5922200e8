package llm

import (
	"fmt"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderGemini     = "gemini"
	ProviderGeminiREST = "gemini-rest"
	ProviderOpenAI     = "openai"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderMock       = "mock"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "gemini-rest", "openai", "openrouter", "anthropic", "mock"
	Provider string `mapstructure:"provider"`

	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Retry      RetryConfig      `mapstructure:"retry"`

	// Timeout bounds a single LLM request attempt. Default: 30s.
	Timeout time.Duration `mapstructure:"timeout"`
}

// GeminiConfig configures both the SDK and the REST Gemini providers.
type GeminiConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "gemini-2.0-flash"
	BaseURL string `mapstructure:"base_url"` // REST only. Default: Google's v1beta endpoint.
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "gpt-4o-mini"
	BaseURL string `mapstructure:"base_url"` // Optional. Override for compatible APIs.
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "google/gemini-2.0-flash-001"
	BaseURL string `mapstructure:"base_url"` // Default: "https://openrouter.ai/api/v1"

	// AppName and SiteURL are sent as OpenRouter attribution headers.
	AppName string `mapstructure:"app_name"` // Default: "ThinkWise"
	SiteURL string `mapstructure:"site_url"`
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`    // Default: "claude-haiku"
	BaseURL string `mapstructure:"base_url"` // Optional.
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderGemini,
		Gemini: GeminiConfig{
			Model: "gemini-2.0-flash",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		OpenRouter: OpenRouterConfig{
			Model:   "google/gemini-2.0-flash-001",
			AppName: "ThinkWise",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// Validate checks that the selected provider has its required API key set.
// Missing credentials are reported as *ErrConfiguration.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderGeminiREST:
		if c.Gemini.APIKey == "" {
			return &ErrConfiguration{Provider: c.Provider, Setting: "GEMINI_API_KEY"}
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return &ErrConfiguration{Provider: c.Provider, Setting: "OPENAI_API_KEY"}
		}
	case ProviderOpenRouter:
		if c.OpenRouter.APIKey == "" {
			return &ErrConfiguration{Provider: c.Provider, Setting: "OPENROUTER_API_KEY"}
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return &ErrConfiguration{Provider: c.Provider, Setting: "ANTHROPIC_API_KEY"}
		}
	case ProviderMock:
		// No API key needed.
	default:
		return &ErrConfiguration{
			Provider: c.Provider,
			Err:      fmt.Errorf("unknown LLM provider %q", c.Provider),
		}
	}
	return nil
}
