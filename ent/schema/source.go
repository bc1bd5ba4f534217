package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Source holds the schema definition for the Source entity.
// A web page cited while answering an interaction.
type Source struct {
	ent.Schema
}

// Fields of the Source.
func (Source) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("chat_interaction_id").
			Immutable(),
		field.Text("url").
			Immutable(),
		field.String("url_hash").
			Immutable().
			Comment("First 16 hex chars of sha256(url)"),
		field.String("title").
			Default(""),
		field.String("domain").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Source.
func (Source) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("interaction", Interaction.Type).
			Ref("sources").
			Field("chat_interaction_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Source.
func (Source) Indexes() []ent.Index {
	return []ent.Index{
		// One row per URL per interaction
		index.Fields("chat_interaction_id", "url_hash").
			Unique(),
	}
}
