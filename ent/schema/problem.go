package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Problem is a single critical-thinking exercise.
type Problem struct {
	ent.Schema
}

func (Problem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.Enum("problem_type").
			Values("AI_VERIFICATION", "PROBLEM_DECOMPOSITION").
			Comment("Cognitive task: spot planted errors or decompose a scenario"),
		field.Enum("answer_format").
			Values("SHORT_ANSWER", "MULTIPLE_CHOICE", "TRUE_FALSE").
			Default("SHORT_ANSWER"),
		field.Enum("difficulty").
			Values("EASY", "MEDIUM", "HARD"),
		field.String("title").
			NotEmpty(),
		field.Text("content"),
		field.Text("correct_answer"),
		field.Text("explanation").
			Default(""),
		field.String("subject").
			Default(""),
		field.Int("grade").
			Range(1, 6),
		field.JSON("options", []string{}).
			Optional().
			Comment("Four labeled options for MULTIPLE_CHOICE"),
		field.JSON("hints", []string{}).
			Optional(),
		field.Enum("generated_by").
			Values("AI", "TEACHER"),
		field.String("generator_model").
			Default("").
			Comment("Model that produced an AI-generated problem"),
		field.Bool("reviewed").
			Default(false),
		field.Bool("active").
			Default(false),
		field.Int("total_attempts").
			Default(0),
		field.Int("correct_attempts").
			Default(0),
		field.Int("correct_rate").
			Default(0).
			Comment("round(100 * correct_attempts / total_attempts)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Problem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("steps", ProblemStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("attempts", Attempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Problem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_type", "active", "reviewed"),
		index.Fields("created_at"),
	}
}
