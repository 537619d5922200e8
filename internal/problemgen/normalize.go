package problemgen

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ParseError means the reply was not valid JSON after fence stripping.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("AI produced invalid output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError means the reply parsed but does not match the requested shape.
type SchemaError struct {
	Shape string
	Err   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("AI output does not match %s: %v", e.Shape, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// StripFences removes a surrounding markdown code fence and whitespace.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if len(s) >= 4 && strings.EqualFold(s[:4], "json") {
			s = s[4:]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Normalize turns a raw LLM reply into a GeneratedProblem that satisfies
// shape. It has no side effects, so the same text always yields the same
// result.
func Normalize(text string, shape Shape) (*GeneratedProblem, error) {
	cleaned := StripFences(text)

	var doc any
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, &ParseError{Text: cleaned, Err: err}
	}

	compiled, err := compiledSchema(shape)
	if err != nil {
		return nil, &SchemaError{Shape: shape.Name, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, &SchemaError{Shape: shape.Name, Err: err}
	}

	var out GeneratedProblem
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return nil, &ParseError{Text: cleaned, Err: err}
	}
	return &out, nil
}

// schemaCache caches compiled JSON schemas by shape name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(shape Shape) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(shape.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain JSON values, not Go maps with typed slices.
	defBytes, err := json.Marshal(shape.Schema().Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", shape.Name)
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(shape.Name, compiled)
	return compiled, nil
}
