package problemgen

import "time"

// Config controls the behavior of the LLMGenerator and Batch.
type Config struct {
	// MaxTokens is the token budget for one generated problem.
	MaxTokens int `mapstructure:"max_tokens"`

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64 `mapstructure:"temperature"`

	// Throttle is the minimum spacing between batch items. Zero disables it.
	Throttle time.Duration `mapstructure:"throttle"`

	// MaxBatch caps the number of problems per batch request.
	MaxBatch int `mapstructure:"max_batch"`

	// Language is used when a request leaves it empty.
	Language string `mapstructure:"default_language"`
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.8,
		Throttle:    500 * time.Millisecond,
		MaxBatch:    10,
		Language:    "ko",
	}
}
