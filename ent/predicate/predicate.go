// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIGenerationLog is the predicate function for aigenerationlog builders.
type AIGenerationLog func(*sql.Selector)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Problem is the predicate function for problem builders.
type Problem func(*sql.Selector)

// ProblemStep is the predicate function for problemstep builders.
type ProblemStep func(*sql.Selector)

// Progress is the predicate function for progress builders.
type Progress func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
