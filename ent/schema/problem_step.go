package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ProblemStep is one ordered step of a PROBLEM_DECOMPOSITION problem.
type ProblemStep struct {
	ent.Schema
}

func (ProblemStep) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("problem_id", uuid.UUID{}),
		field.Int("step_number").
			Positive(),
		field.String("title"),
		field.Text("description"),
		field.Text("hint").
			Default(""),
		field.JSON("options", []string{}).
			Optional(),
		field.Text("correct_answer").
			Default("").
			Comment("Set when the parent uses a non-free-text answer format"),
	}
}

func (ProblemStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("problem", Problem.Type).
			Ref("steps").
			Field("problem_id").
			Unique().
			Required(),
	}
}

func (ProblemStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_id", "step_number").Unique(),
	}
}
