package problemgen

import "context"

// Generator produces problems using an LLM provider.
type Generator interface {
	// Generate produces a single normalized problem for the given input.
	Generate(ctx context.Context, input GenerateInput) (*Result, error)

	// ModelID names the model recorded on generated problems.
	ModelID() string
}
