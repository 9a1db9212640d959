// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/transaction"
)

// TransactionCreate is the builder for creating a Transaction entity.
type TransactionCreate struct {
	config
	mutation *TransactionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *TransactionCreate) SetSessionID(v string) *TransactionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetShortID sets the "short_id" field.
func (_c *TransactionCreate) SetShortID(v string) *TransactionCreate {
	_c.mutation.SetShortID(v)
	return _c
}

// SetProposer sets the "proposer" field.
func (_c *TransactionCreate) SetProposer(v string) *TransactionCreate {
	_c.mutation.SetProposer(v)
	return _c
}

// SetRecipient sets the "recipient" field.
func (_c *TransactionCreate) SetRecipient(v string) *TransactionCreate {
	_c.mutation.SetRecipient(v)
	return _c
}

// SetSeller sets the "seller" field.
func (_c *TransactionCreate) SetSeller(v string) *TransactionCreate {
	_c.mutation.SetSeller(v)
	return _c
}

// SetBuyer sets the "buyer" field.
func (_c *TransactionCreate) SetBuyer(v string) *TransactionCreate {
	_c.mutation.SetBuyer(v)
	return _c
}

// SetOfferType sets the "offer_type" field.
func (_c *TransactionCreate) SetOfferType(v transaction.OfferType) *TransactionCreate {
	_c.mutation.SetOfferType(v)
	return _c
}

// SetShape sets the "shape" field.
func (_c *TransactionCreate) SetShape(v string) *TransactionCreate {
	_c.mutation.SetShape(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *TransactionCreate) SetQuantity(v int) *TransactionCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetPricePerUnit sets the "price_per_unit" field.
func (_c *TransactionCreate) SetPricePerUnit(v int) *TransactionCreate {
	_c.mutation.SetPricePerUnit(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TransactionCreate) SetStatus(v transaction.Status) *TransactionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableStatus(v *transaction.Status) *TransactionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionCreate) SetCreatedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableCreatedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetResolvedAt sets the "resolved_at" field.
func (_c *TransactionCreate) SetResolvedAt(v time.Time) *TransactionCreate {
	_c.mutation.SetResolvedAt(v)
	return _c
}

// SetNillableResolvedAt sets the "resolved_at" field if the given value is not nil.
func (_c *TransactionCreate) SetNillableResolvedAt(v *time.Time) *TransactionCreate {
	if v != nil {
		_c.SetResolvedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionCreate) SetID(v string) *TransactionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *TransactionCreate) SetSession(v *Session) *TransactionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the TransactionMutation object of the builder.
func (_c *TransactionCreate) Mutation() *TransactionMutation {
	return _c.mutation
}

// Save creates the Transaction in the database.
func (_c *TransactionCreate) Save(ctx context.Context) (*Transaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionCreate) SaveX(ctx context.Context) *Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := transaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Transaction.session_id"`)}
	}
	if _, ok := _c.mutation.ShortID(); !ok {
		return &ValidationError{Name: "short_id", err: errors.New(`ent: missing required field "Transaction.short_id"`)}
	}
	if _, ok := _c.mutation.Proposer(); !ok {
		return &ValidationError{Name: "proposer", err: errors.New(`ent: missing required field "Transaction.proposer"`)}
	}
	if _, ok := _c.mutation.Recipient(); !ok {
		return &ValidationError{Name: "recipient", err: errors.New(`ent: missing required field "Transaction.recipient"`)}
	}
	if _, ok := _c.mutation.Seller(); !ok {
		return &ValidationError{Name: "seller", err: errors.New(`ent: missing required field "Transaction.seller"`)}
	}
	if _, ok := _c.mutation.Buyer(); !ok {
		return &ValidationError{Name: "buyer", err: errors.New(`ent: missing required field "Transaction.buyer"`)}
	}
	if _, ok := _c.mutation.OfferType(); !ok {
		return &ValidationError{Name: "offer_type", err: errors.New(`ent: missing required field "Transaction.offer_type"`)}
	}
	if v, ok := _c.mutation.OfferType(); ok {
		if err := transaction.OfferTypeValidator(v); err != nil {
			return &ValidationError{Name: "offer_type", err: fmt.Errorf(`ent: validator failed for field "Transaction.offer_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Shape(); !ok {
		return &ValidationError{Name: "shape", err: errors.New(`ent: missing required field "Transaction.shape"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "Transaction.quantity"`)}
	}
	if _, ok := _c.mutation.PricePerUnit(); !ok {
		return &ValidationError{Name: "price_per_unit", err: errors.New(`ent: missing required field "Transaction.price_per_unit"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Transaction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := transaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Transaction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transaction.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Transaction.session"`)}
	}
	return nil
}

func (_c *TransactionCreate) sqlSave(ctx context.Context) (*Transaction, error) {
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
			return nil, fmt.Errorf("unexpected Transaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransactionCreate) createSpec() (*Transaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Transaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transaction.Table, sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ShortID(); ok {
		_spec.SetField(transaction.FieldShortID, field.TypeString, value)
		_node.ShortID = value
	}
	if value, ok := _c.mutation.Proposer(); ok {
		_spec.SetField(transaction.FieldProposer, field.TypeString, value)
		_node.Proposer = value
	}
	if value, ok := _c.mutation.Recipient(); ok {
		_spec.SetField(transaction.FieldRecipient, field.TypeString, value)
		_node.Recipient = value
	}
	if value, ok := _c.mutation.Seller(); ok {
		_spec.SetField(transaction.FieldSeller, field.TypeString, value)
		_node.Seller = value
	}
	if value, ok := _c.mutation.Buyer(); ok {
		_spec.SetField(transaction.FieldBuyer, field.TypeString, value)
		_node.Buyer = value
	}
	if value, ok := _c.mutation.OfferType(); ok {
		_spec.SetField(transaction.FieldOfferType, field.TypeEnum, value)
		_node.OfferType = value
	}
	if value, ok := _c.mutation.Shape(); ok {
		_spec.SetField(transaction.FieldShape, field.TypeString, value)
		_node.Shape = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(transaction.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.PricePerUnit(); ok {
		_spec.SetField(transaction.FieldPricePerUnit, field.TypeInt, value)
		_node.PricePerUnit = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(transaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ResolvedAt(); ok {
		_spec.SetField(transaction.FieldResolvedAt, field.TypeTime, value)
		_node.ResolvedAt = &value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   transaction.SessionTable,
			Columns: []string{transaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TransactionCreateBulk is the builder for creating many Transaction entities in bulk.
type TransactionCreateBulk struct {
	config
	err      error
	builders []*TransactionCreate
}

// Save creates the Transaction entities in the database.
func (_c *TransactionCreateBulk) Save(ctx context.Context) ([]*Transaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionMutation)
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
func (_c *TransactionCreateBulk) SaveX(ctx context.Context) []*Transaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
