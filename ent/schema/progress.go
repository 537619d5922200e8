package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Progress is a per-user, per-day rollup of practice activity.
type Progress struct {
	ent.Schema
}

func (Progress) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.String("day").
			NotEmpty().
			Comment("UTC calendar day, YYYY-MM-DD"),
		field.Int("problems_solved").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.Int("total_time").
			Default(0).
			Comment("Seconds"),
	}
}

func (Progress) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("progress").
			Field("user_id").
			Unique().
			Required(),
	}
}

func (Progress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "day").Unique(),
	}
}
