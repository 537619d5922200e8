package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// AIGenerationLog is the append-only audit record of one problem generation.
type AIGenerationLog struct {
	ent.Schema
}

func (AIGenerationLog) Mixin() []ent.Mixin {
	return []ent.Mixin{AuditMixin{}}
}

func (AIGenerationLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("problem_type").
			Immutable(),
		field.String("model").
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Text("error_message").
			Default("").
			Immutable(),
		field.UUID("problem_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("Created problem; nil when generation failed"),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Float("cost").
			Default(0).
			Immutable().
			Comment("Estimated USD"),
	}
}

func (AIGenerationLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("problem_type"),
		index.Fields("success"),
	}
}
