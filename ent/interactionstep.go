// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/chatstream/ent/interaction"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
)

// InteractionStep is the model entity for the InteractionStep schema.
type InteractionStep struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// InteractionID holds the value of the "interaction_id" field.
	InteractionID string `json:"interaction_id,omitempty"`
	// Order within the interaction, starting at 1
	SequenceNumber int `json:"sequence_number,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// IsSignificant holds the value of the "is_significant" field.
	IsSignificant bool `json:"is_significant,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionStepQuery when eager-loading is set.
	Edges        InteractionStepEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionStepEdges holds the relations/edges for other nodes in the graph.
type InteractionStepEdges struct {
	// Interaction holds the value of the interaction edge.
	Interaction *Interaction `json:"interaction,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InteractionOrErr returns the Interaction value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionStepEdges) InteractionOrErr() (*Interaction, error) {
	if e.Interaction != nil {
		return e.Interaction, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: interaction.Label}
	}
	return nil, &NotLoadedError{edge: "interaction"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InteractionStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interactionstep.FieldMetadata:
			values[i] = new([]byte)
		case interactionstep.FieldIsSignificant:
			values[i] = new(sql.NullBool)
		case interactionstep.FieldID, interactionstep.FieldSequenceNumber:
			values[i] = new(sql.NullInt64)
		case interactionstep.FieldInteractionID, interactionstep.FieldSource, interactionstep.FieldMessage:
			values[i] = new(sql.NullString)
		case interactionstep.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InteractionStep fields.
func (_m *InteractionStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interactionstep.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interactionstep.FieldInteractionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_id", values[i])
			} else if value.Valid {
				_m.InteractionID = value.String
			}
		case interactionstep.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case interactionstep.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case interactionstep.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case interactionstep.FieldIsSignificant:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_significant", values[i])
			} else if value.Valid {
				_m.IsSignificant = value.Bool
			}
		case interactionstep.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case interactionstep.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the InteractionStep.
// This includes values selected through modifiers, order, etc.
func (_m *InteractionStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInteraction queries the "interaction" edge of the InteractionStep entity.
func (_m *InteractionStep) QueryInteraction() *InteractionQuery {
	return NewInteractionStepClient(_m.config).QueryInteraction(_m)
}

// Update returns a builder for updating this InteractionStep.
// Note that you need to call InteractionStep.Unwrap() before calling this method if this InteractionStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InteractionStep) Update() *InteractionStepUpdateOne {
	return NewInteractionStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InteractionStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InteractionStep) Unwrap() *InteractionStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InteractionStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InteractionStep) String() string {
	var builder strings.Builder
	builder.WriteString("InteractionStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("interaction_id=")
	builder.WriteString(_m.InteractionID)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("is_significant=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsSignificant))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InteractionSteps is a parsable slice of InteractionStep.
type InteractionSteps []*InteractionStep
