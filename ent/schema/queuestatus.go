package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// QueueStatus holds the schema definition for the QueueStatus entity.
// The latest job-queue snapshot of an interaction, replaced wholesale.
type QueueStatus struct {
	ent.Schema
}

// Annotations of the QueueStatus.
func (QueueStatus) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "queue_status"},
	}
}

// Fields of the QueueStatus.
func (QueueStatus) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable().
			Comment("Interaction id; one snapshot per interaction"),
		field.JSON("job_data", map[string]any{}),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
