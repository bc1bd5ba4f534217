// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Artifact is the predicate function for artifact builders.
type Artifact func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Interaction is the predicate function for interaction builders.
type Interaction func(*sql.Selector)

// InteractionStep is the predicate function for interactionstep builders.
type InteractionStep func(*sql.Selector)

// QueueStatus is the predicate function for queuestatus builders.
type QueueStatus func(*sql.Selector)

// Source is the predicate function for source builders.
type Source func(*sql.Selector)
