// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
	"github.com/codeready-toolchain/chatstream/ent/predicate"
)

// InteractionStepUpdate is the builder for updating InteractionStep entities.
type InteractionStepUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionStepMutation
}

// Where appends a list predicates to the InteractionStepUpdate builder.
func (_u *InteractionStepUpdate) Where(ps ...predicate.InteractionStep) *InteractionStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the InteractionStepMutation object of the builder.
func (_u *InteractionStepUpdate) Mutation() *InteractionStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionStepUpdate) check() error {
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionStep.interaction"`)
	}
	return nil
}

func (_u *InteractionStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionstep.Table, interactionstep.Columns, sqlgraph.NewFieldSpec(interactionstep.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(interactionstep.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionStepUpdateOne is the builder for updating a single InteractionStep entity.
type InteractionStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionStepMutation
}

// Mutation returns the InteractionStepMutation object of the builder.
func (_u *InteractionStepUpdateOne) Mutation() *InteractionStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionStepUpdate builder.
func (_u *InteractionStepUpdateOne) Where(ps ...predicate.InteractionStep) *InteractionStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionStepUpdateOne) Select(field string, fields ...string) *InteractionStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionStep entity.
func (_u *InteractionStepUpdateOne) Save(ctx context.Context) (*InteractionStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionStepUpdateOne) SaveX(ctx context.Context) *InteractionStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionStepUpdateOne) check() error {
	if _u.mutation.InteractionCleared() && len(_u.mutation.InteractionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InteractionStep.interaction"`)
	}
	return nil
}

func (_u *InteractionStepUpdateOne) sqlSave(ctx context.Context) (_node *InteractionStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionstep.Table, interactionstep.Columns, sqlgraph.NewFieldSpec(interactionstep.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionstep.FieldID)
		for _, f := range fields {
			if !interactionstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionstep.FieldID {
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
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(interactionstep.FieldMetadata, field.TypeJSON)
	}
	_node = &InteractionStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
