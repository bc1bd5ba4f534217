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
	"github.com/codeready-toolchain/chatstream/ent/queuestatus"
)

// QueueStatusCreate is the builder for creating a QueueStatus entity.
type QueueStatusCreate struct {
	config
	mutation *QueueStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetJobData sets the "job_data" field.
func (_c *QueueStatusCreate) SetJobData(v map[string]interface{}) *QueueStatusCreate {
	_c.mutation.SetJobData(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueueStatusCreate) SetUpdatedAt(v time.Time) *QueueStatusCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueueStatusCreate) SetNillableUpdatedAt(v *time.Time) *QueueStatusCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueStatusCreate) SetID(v string) *QueueStatusCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueStatusMutation object of the builder.
func (_c *QueueStatusCreate) Mutation() *QueueStatusMutation {
	return _c.mutation
}

// Save creates the QueueStatus in the database.
func (_c *QueueStatusCreate) Save(ctx context.Context) (*QueueStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueStatusCreate) SaveX(ctx context.Context) *QueueStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueStatusCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := queuestatus.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueStatusCreate) check() error {
	if _, ok := _c.mutation.JobData(); !ok {
		return &ValidationError{Name: "job_data", err: errors.New(`ent: missing required field "QueueStatus.job_data"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueueStatus.updated_at"`)}
	}
	return nil
}

func (_c *QueueStatusCreate) sqlSave(ctx context.Context) (*QueueStatus, error) {
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
			return nil, fmt.Errorf("unexpected QueueStatus.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueStatusCreate) createSpec() (*QueueStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queuestatus.Table, sqlgraph.NewFieldSpec(queuestatus.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobData(); ok {
		_spec.SetField(queuestatus.FieldJobData, field.TypeJSON, value)
		_node.JobData = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(queuestatus.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueStatus.Create().
//		SetJobData(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueStatusUpsert) {
//			SetJobData(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueStatusCreate) OnConflict(opts ...sql.ConflictOption) *QueueStatusUpsertOne {
	_c.conflict = opts
	return &QueueStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueStatusCreate) OnConflictColumns(columns ...string) *QueueStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueStatusUpsertOne{
		create: _c,
	}
}

type (
	// QueueStatusUpsertOne is the builder for "upsert"-ing
	//  one QueueStatus node.
	QueueStatusUpsertOne struct {
		create *QueueStatusCreate
	}

	// QueueStatusUpsert is the "OnConflict" setter.
	QueueStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetJobData sets the "job_data" field.
func (u *QueueStatusUpsert) SetJobData(v map[string]interface{}) *QueueStatusUpsert {
	u.Set(queuestatus.FieldJobData, v)
	return u
}

// UpdateJobData sets the "job_data" field to the value that was provided on create.
func (u *QueueStatusUpsert) UpdateJobData() *QueueStatusUpsert {
	u.SetExcluded(queuestatus.FieldJobData)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStatusUpsert) SetUpdatedAt(v time.Time) *QueueStatusUpsert {
	u.Set(queuestatus.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStatusUpsert) UpdateUpdatedAt() *QueueStatusUpsert {
	u.SetExcluded(queuestatus.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuestatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueStatusUpsertOne) UpdateNewValues() *QueueStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(queuestatus.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QueueStatusUpsertOne) Ignore() *QueueStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueStatusUpsertOne) DoNothing() *QueueStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueStatusCreate.OnConflict
// documentation for more info.
func (u *QueueStatusUpsertOne) Update(set func(*QueueStatusUpsert)) *QueueStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobData sets the "job_data" field.
func (u *QueueStatusUpsertOne) SetJobData(v map[string]interface{}) *QueueStatusUpsertOne {
	return u.Update(func(s *QueueStatusUpsert) {
		s.SetJobData(v)
	})
}

// UpdateJobData sets the "job_data" field to the value that was provided on create.
func (u *QueueStatusUpsertOne) UpdateJobData() *QueueStatusUpsertOne {
	return u.Update(func(s *QueueStatusUpsert) {
		s.UpdateJobData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStatusUpsertOne) SetUpdatedAt(v time.Time) *QueueStatusUpsertOne {
	return u.Update(func(s *QueueStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStatusUpsertOne) UpdateUpdatedAt() *QueueStatusUpsertOne {
	return u.Update(func(s *QueueStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QueueStatusUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: QueueStatusUpsertOne.ID is not supported by MySQL driver. Use QueueStatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QueueStatusUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QueueStatusCreateBulk is the builder for creating many QueueStatus entities in bulk.
type QueueStatusCreateBulk struct {
	config
	err      error
	builders []*QueueStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the QueueStatus entities in the database.
func (_c *QueueStatusCreateBulk) Save(ctx context.Context) ([]*QueueStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueStatusMutation)
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
func (_c *QueueStatusCreateBulk) SaveX(ctx context.Context) []*QueueStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QueueStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QueueStatusUpsert) {
//			SetJobData(v+v).
//		}).
//		Exec(ctx)
func (_c *QueueStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *QueueStatusUpsertBulk {
	_c.conflict = opts
	return &QueueStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QueueStatusCreateBulk) OnConflictColumns(columns ...string) *QueueStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QueueStatusUpsertBulk{
		create: _c,
	}
}

// QueueStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of QueueStatus nodes.
type QueueStatusUpsertBulk struct {
	create *QueueStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(queuestatus.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *QueueStatusUpsertBulk) UpdateNewValues() *QueueStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(queuestatus.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QueueStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QueueStatusUpsertBulk) Ignore() *QueueStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QueueStatusUpsertBulk) DoNothing() *QueueStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QueueStatusCreateBulk.OnConflict
// documentation for more info.
func (u *QueueStatusUpsertBulk) Update(set func(*QueueStatusUpsert)) *QueueStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QueueStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetJobData sets the "job_data" field.
func (u *QueueStatusUpsertBulk) SetJobData(v map[string]interface{}) *QueueStatusUpsertBulk {
	return u.Update(func(s *QueueStatusUpsert) {
		s.SetJobData(v)
	})
}

// UpdateJobData sets the "job_data" field to the value that was provided on create.
func (u *QueueStatusUpsertBulk) UpdateJobData() *QueueStatusUpsertBulk {
	return u.Update(func(s *QueueStatusUpsert) {
		s.UpdateJobData()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *QueueStatusUpsertBulk) SetUpdatedAt(v time.Time) *QueueStatusUpsertBulk {
	return u.Update(func(s *QueueStatusUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *QueueStatusUpsertBulk) UpdateUpdatedAt() *QueueStatusUpsertBulk {
	return u.Update(func(s *QueueStatusUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *QueueStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QueueStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QueueStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QueueStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
