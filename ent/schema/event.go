package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persisted broadcast events, replayed to WebSocket clients on catchup.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("scope_id").
			Immutable().
			Comment("Interaction or session id the channel belongs to"),
		field.String("channel").
			Immutable(),
		field.JSON("payload", map[string]any{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catchup by channel; the migration adds id as the second key column
		index.Fields("channel"),
		index.Fields("scope_id"),
		// TTL cleanup
		index.Fields("created_at"),
	}
}
