// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/chatstream/ent/predicate"
	"github.com/codeready-toolchain/chatstream/ent/queuestatus"
)

// QueueStatusUpdate is the builder for updating QueueStatus entities.
type QueueStatusUpdate struct {
	config
	hooks    []Hook
	mutation *QueueStatusMutation
}

// Where appends a list predicates to the QueueStatusUpdate builder.
func (_u *QueueStatusUpdate) Where(ps ...predicate.QueueStatus) *QueueStatusUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobData sets the "job_data" field.
func (_u *QueueStatusUpdate) SetJobData(v map[string]interface{}) *QueueStatusUpdate {
	_u.mutation.SetJobData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueStatusUpdate) SetUpdatedAt(v time.Time) *QueueStatusUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueStatusMutation object of the builder.
func (_u *QueueStatusUpdate) Mutation() *QueueStatusMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueStatusUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueStatusUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueStatusUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueStatusUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueStatusUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuestatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueueStatusUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuestatus.Table, queuestatus.Columns, sqlgraph.NewFieldSpec(queuestatus.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobData(); ok {
		_spec.SetField(queuestatus.FieldJobData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestatus.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueStatusUpdateOne is the builder for updating a single QueueStatus entity.
type QueueStatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueStatusMutation
}

// SetJobData sets the "job_data" field.
func (_u *QueueStatusUpdateOne) SetJobData(v map[string]interface{}) *QueueStatusUpdateOne {
	_u.mutation.SetJobData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueueStatusUpdateOne) SetUpdatedAt(v time.Time) *QueueStatusUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueueStatusMutation object of the builder.
func (_u *QueueStatusUpdateOne) Mutation() *QueueStatusMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueStatusUpdate builder.
func (_u *QueueStatusUpdateOne) Where(ps ...predicate.QueueStatus) *QueueStatusUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueStatusUpdateOne) Select(field string, fields ...string) *QueueStatusUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueStatus entity.
func (_u *QueueStatusUpdateOne) Save(ctx context.Context) (*QueueStatus, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueStatusUpdateOne) SaveX(ctx context.Context) *QueueStatus {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueStatusUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueStatusUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueueStatusUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := queuestatus.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *QueueStatusUpdateOne) sqlSave(ctx context.Context) (_node *QueueStatus, err error) {
	_spec := sqlgraph.NewUpdateSpec(queuestatus.Table, queuestatus.Columns, sqlgraph.NewFieldSpec(queuestatus.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueStatus.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queuestatus.FieldID)
		for _, f := range fields {
			if !queuestatus.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queuestatus.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JobData(); ok {
		_spec.SetField(queuestatus.FieldJobData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestatus.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueueStatus{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queuestatus.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
