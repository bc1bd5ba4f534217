package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact holds the schema definition for the Artifact entity.
// Artifacts belong to a session; chat_interaction_id is informational.
type Artifact struct {
	ent.Schema
}

// Fields of the Artifact.
func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("chat_interaction_id").
			Default(""),
		field.String("artifact_key").
			NotEmpty().
			Immutable(),
		field.String("title").
			Default(""),
		field.String("content_type").
			Default(""),
		field.Text("content").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Artifact.
func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "artifact_key").
			Unique(),
	}
}
