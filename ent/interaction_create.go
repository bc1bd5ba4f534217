// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/chatstream/ent/interaction"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
	"github.com/codeready-toolchain/chatstream/ent/source"
)

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatSessionID sets the "chat_session_id" field.
func (_c *InteractionCreate) SetChatSessionID(v string) *InteractionCreate {
	_c.mutation.SetChatSessionID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *InteractionCreate) SetQuestion(v string) *InteractionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *InteractionCreate) SetAnswer(v string) *InteractionCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableAnswer(v *string) *InteractionCreate {
	if v != nil {
		_c.SetAnswer(*v)
	}
	return _c
}

// SetExecutionID sets the "execution_id" field.
func (_c *InteractionCreate) SetExecutionID(v string) *InteractionCreate {
	_c.mutation.SetExecutionID(v)
	return _c
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableExecutionID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetExecutionID(*v)
	}
	return _c
}

// SetInputTriggerID sets the "input_trigger_id" field.
func (_c *InteractionCreate) SetInputTriggerID(v string) *InteractionCreate {
	_c.mutation.SetInputTriggerID(v)
	return _c
}

// SetNillableInputTriggerID sets the "input_trigger_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableInputTriggerID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetInputTriggerID(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *InteractionCreate) SetCompleted(v bool) *InteractionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCompleted(v *bool) *InteractionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionCreate) SetCreatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCreatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InteractionCreate) SetUpdatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableUpdatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InteractionCreate) SetCompletedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCompletedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionCreate) SetID(v string) *InteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddSourceIDs adds the "sources" edge to the Source entity by IDs.
func (_c *InteractionCreate) AddSourceIDs(ids ...string) *InteractionCreate {
	_c.mutation.AddSourceIDs(ids...)
	return _c
}

// AddSources adds the "sources" edges to the Source entity.
func (_c *InteractionCreate) AddSources(v ...*Source) *InteractionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the InteractionStep entity by IDs.
func (_c *InteractionCreate) AddStepIDs(ids ...int) *InteractionCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the InteractionStep entity.
func (_c *InteractionCreate) AddSteps(v ...*InteractionStep) *InteractionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.Answer(); !ok {
		v := interaction.DefaultAnswer
		_c.mutation.SetAnswer(v)
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		v := interaction.DefaultExecutionID
		_c.mutation.SetExecutionID(v)
	}
	if _, ok := _c.mutation.InputTriggerID(); !ok {
		v := interaction.DefaultInputTriggerID
		_c.mutation.SetInputTriggerID(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := interaction.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.ChatSessionID(); !ok {
		return &ValidationError{Name: "chat_session_id", err: errors.New(`ent: missing required field "Interaction.chat_session_id"`)}
	}
	if v, ok := _c.mutation.ChatSessionID(); ok {
		if err := interaction.ChatSessionIDValidator(v); err != nil {
			return &ValidationError{Name: "chat_session_id", err: fmt.Errorf(`ent: validator failed for field "Interaction.chat_session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Interaction.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := interaction.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Interaction.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Interaction.answer"`)}
	}
	if _, ok := _c.mutation.ExecutionID(); !ok {
		return &ValidationError{Name: "execution_id", err: errors.New(`ent: missing required field "Interaction.execution_id"`)}
	}
	if _, ok := _c.mutation.InputTriggerID(); !ok {
		return &ValidationError{Name: "input_trigger_id", err: errors.New(`ent: missing required field "Interaction.input_trigger_id"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Interaction.completed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interaction.updated_at"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Interaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChatSessionID(); ok {
		_spec.SetField(interaction.FieldChatSessionID, field.TypeString, value)
		_node.ChatSessionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(interaction.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(interaction.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.ExecutionID(); ok {
		_spec.SetField(interaction.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = value
	}
	if value, ok := _c.mutation.InputTriggerID(); ok {
		_spec.SetField(interaction.FieldInputTriggerID, field.TypeString, value)
		_node.InputTriggerID = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(interaction.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(interaction.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if nodes := _c.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.SourcesTable,
			Columns: []string{interaction.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(source.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   interaction.StepsTable,
			Columns: []string{interaction.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interactionstep.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interaction.Create().
//		SetChatSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionUpsert) {
//			SetChatSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionCreate) OnConflict(opts ...sql.ConflictOption) *InteractionUpsertOne {
	_c.conflict = opts
	return &InteractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionCreate) OnConflictColumns(columns ...string) *InteractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionUpsertOne{
		create: _c,
	}
}

type (
	// InteractionUpsertOne is the builder for "upsert"-ing
	//  one Interaction node.
	InteractionUpsertOne struct {
		create *InteractionCreate
	}

	// InteractionUpsert is the "OnConflict" setter.
	InteractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAnswer sets the "answer" field.
func (u *InteractionUpsert) SetAnswer(v string) *InteractionUpsert {
	u.Set(interaction.FieldAnswer, v)
	return u
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateAnswer() *InteractionUpsert {
	u.SetExcluded(interaction.FieldAnswer)
	return u
}

// SetExecutionID sets the "execution_id" field.
func (u *InteractionUpsert) SetExecutionID(v string) *InteractionUpsert {
	u.Set(interaction.FieldExecutionID, v)
	return u
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateExecutionID() *InteractionUpsert {
	u.SetExcluded(interaction.FieldExecutionID)
	return u
}

// SetCompleted sets the "completed" field.
func (u *InteractionUpsert) SetCompleted(v bool) *InteractionUpsert {
	u.Set(interaction.FieldCompleted, v)
	return u
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateCompleted() *InteractionUpsert {
	u.SetExcluded(interaction.FieldCompleted)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsert) SetUpdatedAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateUpdatedAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *InteractionUpsert) SetCompletedAt(v time.Time) *InteractionUpsert {
	u.Set(interaction.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InteractionUpsert) UpdateCompletedAt() *InteractionUpsert {
	u.SetExcluded(interaction.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InteractionUpsert) ClearCompletedAt() *InteractionUpsert {
	u.SetNull(interaction.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionUpsertOne) UpdateNewValues() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(interaction.FieldID)
		}
		if _, exists := u.create.mutation.ChatSessionID(); exists {
			s.SetIgnore(interaction.FieldChatSessionID)
		}
		if _, exists := u.create.mutation.Question(); exists {
			s.SetIgnore(interaction.FieldQuestion)
		}
		if _, exists := u.create.mutation.InputTriggerID(); exists {
			s.SetIgnore(interaction.FieldInputTriggerID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interaction.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InteractionUpsertOne) Ignore() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionUpsertOne) DoNothing() *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionCreate.OnConflict
// documentation for more info.
func (u *InteractionUpsertOne) Update(set func(*InteractionUpsert)) *InteractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAnswer sets the "answer" field.
func (u *InteractionUpsertOne) SetAnswer(v string) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateAnswer() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateAnswer()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *InteractionUpsertOne) SetExecutionID(v string) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateExecutionID() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateExecutionID()
	})
}

// SetCompleted sets the "completed" field.
func (u *InteractionUpsertOne) SetCompleted(v bool) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateCompleted() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateCompleted()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsertOne) SetUpdatedAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateUpdatedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InteractionUpsertOne) SetCompletedAt(v time.Time) *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InteractionUpsertOne) UpdateCompletedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InteractionUpsertOne) ClearCompletedAt() *InteractionUpsertOne {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *InteractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InteractionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InteractionUpsertOne.ID is not supported by MySQL driver. Use InteractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InteractionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Interaction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionUpsert) {
//			SetChatSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *InteractionUpsertBulk {
	_c.conflict = opts
	return &InteractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionCreateBulk) OnConflictColumns(columns ...string) *InteractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionUpsertBulk{
		create: _c,
	}
}

// InteractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Interaction nodes.
type InteractionUpsertBulk struct {
	create *InteractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(interaction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InteractionUpsertBulk) UpdateNewValues() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(interaction.FieldID)
			}
			if _, exists := b.mutation.ChatSessionID(); exists {
				s.SetIgnore(interaction.FieldChatSessionID)
			}
			if _, exists := b.mutation.Question(); exists {
				s.SetIgnore(interaction.FieldQuestion)
			}
			if _, exists := b.mutation.InputTriggerID(); exists {
				s.SetIgnore(interaction.FieldInputTriggerID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interaction.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Interaction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InteractionUpsertBulk) Ignore() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionUpsertBulk) DoNothing() *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionCreateBulk.OnConflict
// documentation for more info.
func (u *InteractionUpsertBulk) Update(set func(*InteractionUpsert)) *InteractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAnswer sets the "answer" field.
func (u *InteractionUpsertBulk) SetAnswer(v string) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetAnswer(v)
	})
}

// UpdateAnswer sets the "answer" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateAnswer() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateAnswer()
	})
}

// SetExecutionID sets the "execution_id" field.
func (u *InteractionUpsertBulk) SetExecutionID(v string) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetExecutionID(v)
	})
}

// UpdateExecutionID sets the "execution_id" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateExecutionID() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateExecutionID()
	})
}

// SetCompleted sets the "completed" field.
func (u *InteractionUpsertBulk) SetCompleted(v bool) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetCompleted(v)
	})
}

// UpdateCompleted sets the "completed" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateCompleted() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateCompleted()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InteractionUpsertBulk) SetUpdatedAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateUpdatedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InteractionUpsertBulk) SetCompletedAt(v time.Time) *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InteractionUpsertBulk) UpdateCompletedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InteractionUpsertBulk) ClearCompletedAt() *InteractionUpsertBulk {
	return u.Update(func(s *InteractionUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *InteractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InteractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
