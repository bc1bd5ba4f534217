// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codeready-toolchain/chatstream/ent/queuestatus"
)

// QueueStatus is the model entity for the QueueStatus schema.
type QueueStatus struct {
	config `json:"-"`
	// ID of the ent.
	// Interaction id; one snapshot per interaction
	ID string `json:"id,omitempty"`
	// JobData holds the value of the "job_data" field.
	JobData map[string]interface{} `json:"job_data,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueueStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queuestatus.FieldJobData:
			values[i] = new([]byte)
		case queuestatus.FieldID:
			values[i] = new(sql.NullString)
		case queuestatus.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueueStatus fields.
func (_m *QueueStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queuestatus.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case queuestatus.FieldJobData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field job_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.JobData); err != nil {
					return fmt.Errorf("unmarshal field job_data: %w", err)
				}
			}
		case queuestatus.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueueStatus.
// This includes values selected through modifiers, order, etc.
func (_m *QueueStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueueStatus.
// Note that you need to call QueueStatus.Unwrap() before calling this method if this QueueStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueueStatus) Update() *QueueStatusUpdateOne {
	return NewQueueStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueueStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueueStatus) Unwrap() *QueueStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueueStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueueStatus) String() string {
	var builder strings.Builder
	builder.WriteString("QueueStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobData))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QueueStatusSlice is a parsable slice of QueueStatus.
type QueueStatusSlice []*QueueStatus
