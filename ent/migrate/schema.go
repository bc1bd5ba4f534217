// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "chat_interaction_id", Type: field.TypeString, Default: ""},
		{Name: "artifact_key", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "content_type", Type: field.TypeString, Default: ""},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_session_id_artifact_key",
				Unique:  true,
				Columns: []*schema.Column{ArtifactsColumns[1], ArtifactsColumns[3]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "scope_id", Type: field.TypeString},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[2]},
			},
			{
				Name:    "event_scope_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[4]},
			},
		},
	}
	// InteractionsColumns holds the columns for the "interactions" table.
	InteractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "chat_session_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "execution_id", Type: field.TypeString, Default: ""},
		{Name: "input_trigger_id", Type: field.TypeString, Default: ""},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// InteractionsTable holds the schema information for the "interactions" table.
	InteractionsTable = &schema.Table{
		Name:       "interactions",
		Columns:    InteractionsColumns,
		PrimaryKey: []*schema.Column{InteractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interaction_chat_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InteractionsColumns[1], InteractionsColumns[7]},
			},
		},
	}
	// InteractionStepsColumns holds the columns for the "interaction_steps" table.
	InteractionStepsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence_number", Type: field.TypeInt},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "is_significant", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interaction_id", Type: field.TypeString},
	}
	// InteractionStepsTable holds the schema information for the "interaction_steps" table.
	InteractionStepsTable = &schema.Table{
		Name:       "interaction_steps",
		Columns:    InteractionStepsColumns,
		PrimaryKey: []*schema.Column{InteractionStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "interaction_steps_interactions_steps",
				Columns:    []*schema.Column{InteractionStepsColumns[7]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "interactionstep_interaction_id_sequence_number",
				Unique:  true,
				Columns: []*schema.Column{InteractionStepsColumns[7], InteractionStepsColumns[1]},
			},
		},
	}
	// QueueStatusColumns holds the columns for the "queue_status" table.
	QueueStatusColumns = []*schema.Column{
		{Name: "interaction_id", Type: field.TypeString, Unique: true},
		{Name: "job_data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// QueueStatusTable holds the schema information for the "queue_status" table.
	QueueStatusTable = &schema.Table{
		Name:       "queue_status",
		Columns:    QueueStatusColumns,
		PrimaryKey: []*schema.Column{QueueStatusColumns[0]},
	}
	// SourcesColumns holds the columns for the "sources" table.
	SourcesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString, Size: 2147483647},
		{Name: "url_hash", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "domain", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "chat_interaction_id", Type: field.TypeString},
	}
	// SourcesTable holds the schema information for the "sources" table.
	SourcesTable = &schema.Table{
		Name:       "sources",
		Columns:    SourcesColumns,
		PrimaryKey: []*schema.Column{SourcesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sources_interactions_sources",
				Columns:    []*schema.Column{SourcesColumns[6]},
				RefColumns: []*schema.Column{InteractionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "source_chat_interaction_id_url_hash",
				Unique:  true,
				Columns: []*schema.Column{SourcesColumns[6], SourcesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		EventsTable,
		InteractionsTable,
		InteractionStepsTable,
		QueueStatusTable,
		SourcesTable,
	}
)

func init() {
	InteractionStepsTable.ForeignKeys[0].RefTable = InteractionsTable
	QueueStatusTable.Annotation = &entsql.Annotation{
		Table: "queue_status",
	}
	SourcesTable.ForeignKeys[0].RefTable = InteractionsTable
}
