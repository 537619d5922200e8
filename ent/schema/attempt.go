package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Attempt is one student's submission against one problem. Append-only.
type Attempt struct {
	ent.Schema
}

// StepOutcome is the serialized grading result of one decomposition step.
type StepOutcome struct {
	StepNumber int    `json:"step_number"`
	Answer     string `json:"answer"`
	IsCorrect  bool   `json:"is_correct"`
	Score      int    `json:"score"`
	Feedback   string `json:"feedback"`
	Reasoning  string `json:"reasoning,omitempty"`
	Method     string `json:"method"`
}

func (Attempt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.UUID("problem_id", uuid.UUID{}).
			Immutable(),
		field.Text("answer").
			Immutable().
			Comment("Free-form answer; JSON object keyed by step number for decomposition"),
		field.Bool("is_correct").
			Immutable(),
		field.Int("score").
			Immutable().
			Range(0, 100),
		field.Text("feedback").
			Default("").
			Immutable(),
		field.JSON("step_results", []StepOutcome{}).
			Optional().
			Immutable(),
		field.String("grading_method").
			Default("").
			Immutable().
			Comment("exact, llm, fallback, empty or mixed"),
		field.Int("time_spent").
			Default(0).
			NonNegative().
			Immutable().
			Comment("Seconds"),
		field.Bool("hint_used").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Attempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("problem", Problem.Type).
			Ref("attempts").
			Field("problem_id").
			Unique().
			Required().
			Immutable(),
		edge.From("user", User.Type).
			Ref("attempts").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Attempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("problem_id"),
	}
}
