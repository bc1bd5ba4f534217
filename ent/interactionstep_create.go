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
	"github.com/codeready-toolchain/chatstream/ent/interaction"
	"github.com/codeready-toolchain/chatstream/ent/interactionstep"
)

// InteractionStepCreate is the builder for creating a InteractionStep entity.
type InteractionStepCreate struct {
	config
	mutation *InteractionStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInteractionID sets the "interaction_id" field.
func (_c *InteractionStepCreate) SetInteractionID(v string) *InteractionStepCreate {
	_c.mutation.SetInteractionID(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *InteractionStepCreate) SetSequenceNumber(v int) *InteractionStepCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *InteractionStepCreate) SetSource(v string) *InteractionStepCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *InteractionStepCreate) SetNillableSource(v *string) *InteractionStepCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *InteractionStepCreate) SetMessage(v string) *InteractionStepCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetIsSignificant sets the "is_significant" field.
func (_c *InteractionStepCreate) SetIsSignificant(v bool) *InteractionStepCreate {
	_c.mutation.SetIsSignificant(v)
	return _c
}

// SetNillableIsSignificant sets the "is_significant" field if the given value is not nil.
func (_c *InteractionStepCreate) SetNillableIsSignificant(v *bool) *InteractionStepCreate {
	if v != nil {
		_c.SetIsSignificant(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *InteractionStepCreate) SetMetadata(v map[string]interface{}) *InteractionStepCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionStepCreate) SetCreatedAt(v time.Time) *InteractionStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionStepCreate) SetNillableCreatedAt(v *time.Time) *InteractionStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetInteraction sets the "interaction" edge to the Interaction entity.
func (_c *InteractionStepCreate) SetInteraction(v *Interaction) *InteractionStepCreate {
	return _c.SetInteractionID(v.ID)
}

// Mutation returns the InteractionStepMutation object of the builder.
func (_c *InteractionStepCreate) Mutation() *InteractionStepMutation {
	return _c.mutation
}

// Save creates the InteractionStep in the database.
func (_c *InteractionStepCreate) Save(ctx context.Context) (*InteractionStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionStepCreate) SaveX(ctx context.Context) *InteractionStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionStepCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := interactionstep.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.IsSignificant(); !ok {
		v := interactionstep.DefaultIsSignificant
		_c.mutation.SetIsSignificant(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interactionstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionStepCreate) check() error {
	if _, ok := _c.mutation.InteractionID(); !ok {
		return &ValidationError{Name: "interaction_id", err: errors.New(`ent: missing required field "InteractionStep.interaction_id"`)}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "InteractionStep.sequence_number"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "InteractionStep.source"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "InteractionStep.message"`)}
	}
	if _, ok := _c.mutation.IsSignificant(); !ok {
		return &ValidationError{Name: "is_significant", err: errors.New(`ent: missing required field "InteractionStep.is_significant"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "InteractionStep.created_at"`)}
	}
	if len(_c.mutation.InteractionIDs()) == 0 {
		return &ValidationError{Name: "interaction", err: errors.New(`ent: missing required edge "InteractionStep.interaction"`)}
	}
	return nil
}

func (_c *InteractionStepCreate) sqlSave(ctx context.Context) (*InteractionStep, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionStepCreate) createSpec() (*InteractionStep, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionstep.Table, sqlgraph.NewFieldSpec(interactionstep.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(interactionstep.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(interactionstep.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(interactionstep.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.IsSignificant(); ok {
		_spec.SetField(interactionstep.FieldIsSignificant, field.TypeBool, value)
		_node.IsSignificant = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(interactionstep.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interactionstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InteractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interactionstep.InteractionTable,
			Columns: []string{interactionstep.InteractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InteractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InteractionStep.Create().
//		SetInteractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionStepUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionStepCreate) OnConflict(opts ...sql.ConflictOption) *InteractionStepUpsertOne {
	_c.conflict = opts
	return &InteractionStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionStepCreate) OnConflictColumns(columns ...string) *InteractionStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionStepUpsertOne{
		create: _c,
	}
}

type (
	// InteractionStepUpsertOne is the builder for "upsert"-ing
	//  one InteractionStep node.
	InteractionStepUpsertOne struct {
		create *InteractionStepCreate
	}

	// InteractionStepUpsert is the "OnConflict" setter.
	InteractionStepUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InteractionStepUpsertOne) UpdateNewValues() *InteractionStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.InteractionID(); exists {
			s.SetIgnore(interactionstep.FieldInteractionID)
		}
		if _, exists := u.create.mutation.SequenceNumber(); exists {
			s.SetIgnore(interactionstep.FieldSequenceNumber)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(interactionstep.FieldSource)
		}
		if _, exists := u.create.mutation.Message(); exists {
			s.SetIgnore(interactionstep.FieldMessage)
		}
		if _, exists := u.create.mutation.IsSignificant(); exists {
			s.SetIgnore(interactionstep.FieldIsSignificant)
		}
		if _, exists := u.create.mutation.Metadata(); exists {
			s.SetIgnore(interactionstep.FieldMetadata)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(interactionstep.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InteractionStepUpsertOne) Ignore() *InteractionStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionStepUpsertOne) DoNothing() *InteractionStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionStepCreate.OnConflict
// documentation for more info.
func (u *InteractionStepUpsertOne) Update(set func(*InteractionStepUpsert)) *InteractionStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionStepUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *InteractionStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InteractionStepUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InteractionStepUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InteractionStepCreateBulk is the builder for creating many InteractionStep entities in bulk.
type InteractionStepCreateBulk struct {
	config
	err      error
	builders []*InteractionStepCreate
	conflict []sql.ConflictOption
}

// Save creates the InteractionStep entities in the database.
func (_c *InteractionStepCreateBulk) Save(ctx context.Context) ([]*InteractionStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionStepMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *InteractionStepCreateBulk) SaveX(ctx context.Context) []*InteractionStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InteractionStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InteractionStepUpsert) {
//			SetInteractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InteractionStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *InteractionStepUpsertBulk {
	_c.conflict = opts
	return &InteractionStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InteractionStepCreateBulk) OnConflictColumns(columns ...string) *InteractionStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InteractionStepUpsertBulk{
		create: _c,
	}
}

// InteractionStepUpsertBulk is the builder for "upsert"-ing
// a bulk of InteractionStep nodes.
type InteractionStepUpsertBulk struct {
	create *InteractionStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *InteractionStepUpsertBulk) UpdateNewValues() *InteractionStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.InteractionID(); exists {
				s.SetIgnore(interactionstep.FieldInteractionID)
			}
			if _, exists := b.mutation.SequenceNumber(); exists {
				s.SetIgnore(interactionstep.FieldSequenceNumber)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(interactionstep.FieldSource)
			}
			if _, exists := b.mutation.Message(); exists {
				s.SetIgnore(interactionstep.FieldMessage)
			}
			if _, exists := b.mutation.IsSignificant(); exists {
				s.SetIgnore(interactionstep.FieldIsSignificant)
			}
			if _, exists := b.mutation.Metadata(); exists {
				s.SetIgnore(interactionstep.FieldMetadata)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(interactionstep.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InteractionStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InteractionStepUpsertBulk) Ignore() *InteractionStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InteractionStepUpsertBulk) DoNothing() *InteractionStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InteractionStepCreateBulk.OnConflict
// documentation for more info.
func (u *InteractionStepUpsertBulk) Update(set func(*InteractionStepUpsert)) *InteractionStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InteractionStepUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *InteractionStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InteractionStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InteractionStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InteractionStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
