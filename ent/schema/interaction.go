package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction holds the schema definition for the Interaction entity.
// One question and its streamed answer inside a chat session.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("chat_session_id").
			NotEmpty().
			Immutable(),
		field.Text("question").
			NotEmpty().
			Immutable(),
		field.Text("answer").
			Default("").
			Comment("Full accumulated answer; replaced, never appended to"),
		field.String("execution_id").
			Default(""),
		field.String("input_trigger_id").
			Default("").
			Immutable(),
		field.Bool("completed").
			Default(false).
			Comment("One-way: false -> true"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sources", Source.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("steps", InteractionStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		// Session listing, oldest first
		index.Fields("chat_session_id", "created_at"),
	}
}
