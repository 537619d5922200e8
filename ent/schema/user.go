package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User is a student, teacher or admin account.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("email").
			NotEmpty().
			Unique(),
		field.String("name").
			Default(""),
		field.Enum("role").
			Values("STUDENT", "TEACHER", "ADMIN").
			Default("STUDENT"),
		field.Enum("subscription").
			Values("FREE", "PREMIUM").
			Default("FREE"),
		field.Int("grade").
			Optional().
			Nillable().
			Range(1, 6),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("attempts", Attempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("progress", Progress.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
