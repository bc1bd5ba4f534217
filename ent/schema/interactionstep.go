package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InteractionStep holds the schema definition for the InteractionStep entity.
// A status update persisted because the worker flagged it with create_event.
type InteractionStep struct {
	ent.Schema
}

// Fields of the InteractionStep.
func (InteractionStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("interaction_id").
			Immutable(),
		field.Int("sequence_number").
			Immutable().
			Comment("Order within the interaction, starting at 1"),
		field.String("source").
			Default("").
			Immutable(),
		field.Text("message").
			Immutable(),
		field.Bool("is_significant").
			Default(false).
			Immutable(),
		field.JSON("metadata", map[string]any{}).
			Optional().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the InteractionStep.
func (InteractionStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("steps").
			Field("interaction_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the InteractionStep.
func (InteractionStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("interaction_id", "sequence_number").
			Unique(),
	}
}
