// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/behavelab/parley/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/event"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/ent/wordguess"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// EssayAssignment is the client for interacting with the EssayAssignment builders.
	EssayAssignment *EssayAssignmentClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// Investment is the client for interacting with the Investment builders.
	Investment *InvestmentClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Participant is the client for interacting with the Participant builders.
	Participant *ParticipantClient
	// ProductionQueueEntry is the client for interacting with the ProductionQueueEntry builders.
	ProductionQueueEntry *ProductionQueueEntryClient
	// RankingSubmission is the client for interacting with the RankingSubmission builders.
	RankingSubmission *RankingSubmissionClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
	// ShapeInventory is the client for interacting with the ShapeInventory builders.
	ShapeInventory *ShapeInventoryClient
	// Transaction is the client for interacting with the Transaction builders.
	Transaction *TransactionClient
	// WordGuess is the client for interacting with the WordGuess builders.
	WordGuess *WordGuessClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.EssayAssignment = NewEssayAssignmentClient(c.config)
	c.Event = NewEventClient(c.config)
	c.Investment = NewInvestmentClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Participant = NewParticipantClient(c.config)
	c.ProductionQueueEntry = NewProductionQueueEntryClient(c.config)
	c.RankingSubmission = NewRankingSubmissionClient(c.config)
	c.Session = NewSessionClient(c.config)
	c.ShapeInventory = NewShapeInventoryClient(c.config)
	c.Transaction = NewTransactionClient(c.config)
	c.WordGuess = NewWordGuessClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		EssayAssignment:      NewEssayAssignmentClient(cfg),
		Event:                NewEventClient(cfg),
		Investment:           NewInvestmentClient(cfg),
		Message:              NewMessageClient(cfg),
		Participant:          NewParticipantClient(cfg),
		ProductionQueueEntry: NewProductionQueueEntryClient(cfg),
		RankingSubmission:    NewRankingSubmissionClient(cfg),
		Session:              NewSessionClient(cfg),
		ShapeInventory:       NewShapeInventoryClient(cfg),
		Transaction:          NewTransactionClient(cfg),
		WordGuess:            NewWordGuessClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		EssayAssignment:      NewEssayAssignmentClient(cfg),
		Event:                NewEventClient(cfg),
		Investment:           NewInvestmentClient(cfg),
		Message:              NewMessageClient(cfg),
		Participant:          NewParticipantClient(cfg),
		ProductionQueueEntry: NewProductionQueueEntryClient(cfg),
		RankingSubmission:    NewRankingSubmissionClient(cfg),
		Session:              NewSessionClient(cfg),
		ShapeInventory:       NewShapeInventoryClient(cfg),
		Transaction:          NewTransactionClient(cfg),
		WordGuess:            NewWordGuessClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		EssayAssignment.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.EssayAssignment, c.Event, c.Investment, c.Message, c.Participant,
		c.ProductionQueueEntry, c.RankingSubmission, c.Session, c.ShapeInventory,
		c.Transaction, c.WordGuess,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.EssayAssignment, c.Event, c.Investment, c.Message, c.Participant,
		c.ProductionQueueEntry, c.RankingSubmission, c.Session, c.ShapeInventory,
		c.Transaction, c.WordGuess,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *EssayAssignmentMutation:
		return c.EssayAssignment.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *InvestmentMutation:
		return c.Investment.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *ParticipantMutation:
		return c.Participant.mutate(ctx, m)
	case *ProductionQueueEntryMutation:
		return c.ProductionQueueEntry.mutate(ctx, m)
	case *RankingSubmissionMutation:
		return c.RankingSubmission.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	case *ShapeInventoryMutation:
		return c.ShapeInventory.mutate(ctx, m)
	case *TransactionMutation:
		return c.Transaction.mutate(ctx, m)
	case *WordGuessMutation:
		return c.WordGuess.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// EssayAssignmentClient is a client for the EssayAssignment schema.
type EssayAssignmentClient struct {
	config
}

// NewEssayAssignmentClient returns a client for the EssayAssignment from the given config.
func NewEssayAssignmentClient(c config) *EssayAssignmentClient {
	return &EssayAssignmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `essayassignment.Hooks(f(g(h())))`.
func (c *EssayAssignmentClient) Use(hooks ...Hook) {
	c.hooks.EssayAssignment = append(c.hooks.EssayAssignment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `essayassignment.Intercept(f(g(h())))`.
func (c *EssayAssignmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.EssayAssignment = append(c.inters.EssayAssignment, interceptors...)
}

// Create returns a builder for creating a EssayAssignment entity.
func (c *EssayAssignmentClient) Create() *EssayAssignmentCreate {
	mutation := newEssayAssignmentMutation(c.config, OpCreate)
	return &EssayAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EssayAssignment entities.
func (c *EssayAssignmentClient) CreateBulk(builders ...*EssayAssignmentCreate) *EssayAssignmentCreateBulk {
	return &EssayAssignmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EssayAssignmentClient) MapCreateBulk(slice any, setFunc func(*EssayAssignmentCreate, int)) *EssayAssignmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EssayAssignmentCreateBulk{err: fmt.Errorf("calling to EssayAssignmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EssayAssignmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EssayAssignmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EssayAssignment.
func (c *EssayAssignmentClient) Update() *EssayAssignmentUpdate {
	mutation := newEssayAssignmentMutation(c.config, OpUpdate)
	return &EssayAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EssayAssignmentClient) UpdateOne(_m *EssayAssignment) *EssayAssignmentUpdateOne {
	mutation := newEssayAssignmentMutation(c.config, OpUpdateOne, withEssayAssignment(_m))
	return &EssayAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EssayAssignmentClient) UpdateOneID(id string) *EssayAssignmentUpdateOne {
	mutation := newEssayAssignmentMutation(c.config, OpUpdateOne, withEssayAssignmentID(id))
	return &EssayAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EssayAssignment.
func (c *EssayAssignmentClient) Delete() *EssayAssignmentDelete {
	mutation := newEssayAssignmentMutation(c.config, OpDelete)
	return &EssayAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EssayAssignmentClient) DeleteOne(_m *EssayAssignment) *EssayAssignmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EssayAssignmentClient) DeleteOneID(id string) *EssayAssignmentDeleteOne {
	builder := c.Delete().Where(essayassignment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EssayAssignmentDeleteOne{builder}
}

// Query returns a query builder for EssayAssignment.
func (c *EssayAssignmentClient) Query() *EssayAssignmentQuery {
	return &EssayAssignmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEssayAssignment},
		inters: c.Interceptors(),
	}
}

// Get returns a EssayAssignment entity by its id.
func (c *EssayAssignmentClient) Get(ctx context.Context, id string) (*EssayAssignment, error) {
	return c.Query().Where(essayassignment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EssayAssignmentClient) GetX(ctx context.Context, id string) *EssayAssignment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a EssayAssignment.
func (c *EssayAssignmentClient) QuerySession(_m *EssayAssignment) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(essayassignment.Table, essayassignment.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, essayassignment.SessionTable, essayassignment.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EssayAssignmentClient) Hooks() []Hook {
	return c.hooks.EssayAssignment
}

// Interceptors returns the client interceptors.
func (c *EssayAssignmentClient) Interceptors() []Interceptor {
	return c.inters.EssayAssignment
}

func (c *EssayAssignmentClient) mutate(ctx context.Context, m *EssayAssignmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EssayAssignmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EssayAssignmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EssayAssignmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EssayAssignmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EssayAssignment mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id int) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id int) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id int) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id int) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Event.
func (c *EventClient) QuerySession(_m *Event) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(event.Table, event.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, event.SessionTable, event.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// InvestmentClient is a client for the Investment schema.
type InvestmentClient struct {
	config
}

// NewInvestmentClient returns a client for the Investment from the given config.
func NewInvestmentClient(c config) *InvestmentClient {
	return &InvestmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investment.Hooks(f(g(h())))`.
func (c *InvestmentClient) Use(hooks ...Hook) {
	c.hooks.Investment = append(c.hooks.Investment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investment.Intercept(f(g(h())))`.
func (c *InvestmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Investment = append(c.inters.Investment, interceptors...)
}

// Create returns a builder for creating a Investment entity.
func (c *InvestmentClient) Create() *InvestmentCreate {
	mutation := newInvestmentMutation(c.config, OpCreate)
	return &InvestmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Investment entities.
func (c *InvestmentClient) CreateBulk(builders ...*InvestmentCreate) *InvestmentCreateBulk {
	return &InvestmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestmentClient) MapCreateBulk(slice any, setFunc func(*InvestmentCreate, int)) *InvestmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestmentCreateBulk{err: fmt.Errorf("calling to InvestmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Investment.
func (c *InvestmentClient) Update() *InvestmentUpdate {
	mutation := newInvestmentMutation(c.config, OpUpdate)
	return &InvestmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestmentClient) UpdateOne(_m *Investment) *InvestmentUpdateOne {
	mutation := newInvestmentMutation(c.config, OpUpdateOne, withInvestment(_m))
	return &InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestmentClient) UpdateOneID(id string) *InvestmentUpdateOne {
	mutation := newInvestmentMutation(c.config, OpUpdateOne, withInvestmentID(id))
	return &InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Investment.
func (c *InvestmentClient) Delete() *InvestmentDelete {
	mutation := newInvestmentMutation(c.config, OpDelete)
	return &InvestmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestmentClient) DeleteOne(_m *Investment) *InvestmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestmentClient) DeleteOneID(id string) *InvestmentDeleteOne {
	builder := c.Delete().Where(investment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestmentDeleteOne{builder}
}

// Query returns a query builder for Investment.
func (c *InvestmentClient) Query() *InvestmentQuery {
	return &InvestmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestment},
		inters: c.Interceptors(),
	}
}

// Get returns a Investment entity by its id.
func (c *InvestmentClient) Get(ctx context.Context, id string) (*Investment, error) {
	return c.Query().Where(investment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestmentClient) GetX(ctx context.Context, id string) *Investment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Investment.
func (c *InvestmentClient) QuerySession(_m *Investment) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investment.Table, investment.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investment.SessionTable, investment.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a Investment.
func (c *InvestmentClient) QueryParticipant(_m *Investment) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investment.Table, investment.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, investment.ParticipantTable, investment.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestmentClient) Hooks() []Hook {
	return c.hooks.Investment
}

// Interceptors returns the client interceptors.
func (c *InvestmentClient) Interceptors() []Interceptor {
	return c.inters.Investment
}

func (c *InvestmentClient) mutate(ctx context.Context, m *InvestmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Investment mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Message.
func (c *MessageClient) QuerySession(_m *Message) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(message.Table, message.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, message.SessionTable, message.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// ParticipantClient is a client for the Participant schema.
type ParticipantClient struct {
	config
}

// NewParticipantClient returns a client for the Participant from the given config.
func NewParticipantClient(c config) *ParticipantClient {
	return &ParticipantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `participant.Hooks(f(g(h())))`.
func (c *ParticipantClient) Use(hooks ...Hook) {
	c.hooks.Participant = append(c.hooks.Participant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `participant.Intercept(f(g(h())))`.
func (c *ParticipantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Participant = append(c.inters.Participant, interceptors...)
}

// Create returns a builder for creating a Participant entity.
func (c *ParticipantClient) Create() *ParticipantCreate {
	mutation := newParticipantMutation(c.config, OpCreate)
	return &ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Participant entities.
func (c *ParticipantClient) CreateBulk(builders ...*ParticipantCreate) *ParticipantCreateBulk {
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParticipantClient) MapCreateBulk(slice any, setFunc func(*ParticipantCreate, int)) *ParticipantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParticipantCreateBulk{err: fmt.Errorf("calling to ParticipantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParticipantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParticipantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Participant.
func (c *ParticipantClient) Update() *ParticipantUpdate {
	mutation := newParticipantMutation(c.config, OpUpdate)
	return &ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParticipantClient) UpdateOne(_m *Participant) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipant(_m))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParticipantClient) UpdateOneID(id string) *ParticipantUpdateOne {
	mutation := newParticipantMutation(c.config, OpUpdateOne, withParticipantID(id))
	return &ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Participant.
func (c *ParticipantClient) Delete() *ParticipantDelete {
	mutation := newParticipantMutation(c.config, OpDelete)
	return &ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParticipantClient) DeleteOne(_m *Participant) *ParticipantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParticipantClient) DeleteOneID(id string) *ParticipantDeleteOne {
	builder := c.Delete().Where(participant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParticipantDeleteOne{builder}
}

// Query returns a query builder for Participant.
func (c *ParticipantClient) Query() *ParticipantQuery {
	return &ParticipantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParticipant},
		inters: c.Interceptors(),
	}
}

// Get returns a Participant entity by its id.
func (c *ParticipantClient) Get(ctx context.Context, id string) (*Participant, error) {
	return c.Query().Where(participant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParticipantClient) GetX(ctx context.Context, id string) *Participant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Participant.
func (c *ParticipantClient) QuerySession(_m *Participant) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, participant.SessionTable, participant.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInventory queries the inventory edge of a Participant.
func (c *ParticipantClient) QueryInventory(_m *Participant) *ShapeInventoryQuery {
	query := (&ShapeInventoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(shapeinventory.Table, shapeinventory.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, participant.InventoryTable, participant.InventoryColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProductionEntries queries the production_entries edge of a Participant.
func (c *ParticipantClient) QueryProductionEntries(_m *Participant) *ProductionQueueEntryQuery {
	query := (&ProductionQueueEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(productionqueueentry.Table, productionqueueentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.ProductionEntriesTable, participant.ProductionEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvestments queries the investments edge of a Participant.
func (c *ParticipantClient) QueryInvestments(_m *Participant) *InvestmentQuery {
	query := (&InvestmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(investment.Table, investment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.InvestmentsTable, participant.InvestmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRankingSubmissions queries the ranking_submissions edge of a Participant.
func (c *ParticipantClient) QueryRankingSubmissions(_m *Participant) *RankingSubmissionQuery {
	query := (&RankingSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(rankingsubmission.Table, rankingsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.RankingSubmissionsTable, participant.RankingSubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWordGuesses queries the word_guesses edge of a Participant.
func (c *ParticipantClient) QueryWordGuesses(_m *Participant) *WordGuessQuery {
	query := (&WordGuessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(participant.Table, participant.FieldID, id),
			sqlgraph.To(wordguess.Table, wordguess.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, participant.WordGuessesTable, participant.WordGuessesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParticipantClient) Hooks() []Hook {
	return c.hooks.Participant
}

// Interceptors returns the client interceptors.
func (c *ParticipantClient) Interceptors() []Interceptor {
	return c.inters.Participant
}

func (c *ParticipantClient) mutate(ctx context.Context, m *ParticipantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParticipantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParticipantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParticipantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParticipantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Participant mutation op: %q", m.Op())
	}
}

// ProductionQueueEntryClient is a client for the ProductionQueueEntry schema.
type ProductionQueueEntryClient struct {
	config
}

// NewProductionQueueEntryClient returns a client for the ProductionQueueEntry from the given config.
func NewProductionQueueEntryClient(c config) *ProductionQueueEntryClient {
	return &ProductionQueueEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `productionqueueentry.Hooks(f(g(h())))`.
func (c *ProductionQueueEntryClient) Use(hooks ...Hook) {
	c.hooks.ProductionQueueEntry = append(c.hooks.ProductionQueueEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `productionqueueentry.Intercept(f(g(h())))`.
func (c *ProductionQueueEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProductionQueueEntry = append(c.inters.ProductionQueueEntry, interceptors...)
}

// Create returns a builder for creating a ProductionQueueEntry entity.
func (c *ProductionQueueEntryClient) Create() *ProductionQueueEntryCreate {
	mutation := newProductionQueueEntryMutation(c.config, OpCreate)
	return &ProductionQueueEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProductionQueueEntry entities.
func (c *ProductionQueueEntryClient) CreateBulk(builders ...*ProductionQueueEntryCreate) *ProductionQueueEntryCreateBulk {
	return &ProductionQueueEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProductionQueueEntryClient) MapCreateBulk(slice any, setFunc func(*ProductionQueueEntryCreate, int)) *ProductionQueueEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProductionQueueEntryCreateBulk{err: fmt.Errorf("calling to ProductionQueueEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProductionQueueEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProductionQueueEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProductionQueueEntry.
func (c *ProductionQueueEntryClient) Update() *ProductionQueueEntryUpdate {
	mutation := newProductionQueueEntryMutation(c.config, OpUpdate)
	return &ProductionQueueEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProductionQueueEntryClient) UpdateOne(_m *ProductionQueueEntry) *ProductionQueueEntryUpdateOne {
	mutation := newProductionQueueEntryMutation(c.config, OpUpdateOne, withProductionQueueEntry(_m))
	return &ProductionQueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProductionQueueEntryClient) UpdateOneID(id string) *ProductionQueueEntryUpdateOne {
	mutation := newProductionQueueEntryMutation(c.config, OpUpdateOne, withProductionQueueEntryID(id))
	return &ProductionQueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProductionQueueEntry.
func (c *ProductionQueueEntryClient) Delete() *ProductionQueueEntryDelete {
	mutation := newProductionQueueEntryMutation(c.config, OpDelete)
	return &ProductionQueueEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProductionQueueEntryClient) DeleteOne(_m *ProductionQueueEntry) *ProductionQueueEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProductionQueueEntryClient) DeleteOneID(id string) *ProductionQueueEntryDeleteOne {
	builder := c.Delete().Where(productionqueueentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProductionQueueEntryDeleteOne{builder}
}

// Query returns a query builder for ProductionQueueEntry.
func (c *ProductionQueueEntryClient) Query() *ProductionQueueEntryQuery {
	return &ProductionQueueEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProductionQueueEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a ProductionQueueEntry entity by its id.
func (c *ProductionQueueEntryClient) Get(ctx context.Context, id string) (*ProductionQueueEntry, error) {
	return c.Query().Where(productionqueueentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProductionQueueEntryClient) GetX(ctx context.Context, id string) *ProductionQueueEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ProductionQueueEntry.
func (c *ProductionQueueEntryClient) QuerySession(_m *ProductionQueueEntry) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(productionqueueentry.Table, productionqueueentry.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, productionqueueentry.SessionTable, productionqueueentry.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a ProductionQueueEntry.
func (c *ProductionQueueEntryClient) QueryParticipant(_m *ProductionQueueEntry) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(productionqueueentry.Table, productionqueueentry.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, productionqueueentry.ParticipantTable, productionqueueentry.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProductionQueueEntryClient) Hooks() []Hook {
	return c.hooks.ProductionQueueEntry
}

// Interceptors returns the client interceptors.
func (c *ProductionQueueEntryClient) Interceptors() []Interceptor {
	return c.inters.ProductionQueueEntry
}

func (c *ProductionQueueEntryClient) mutate(ctx context.Context, m *ProductionQueueEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProductionQueueEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProductionQueueEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProductionQueueEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProductionQueueEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProductionQueueEntry mutation op: %q", m.Op())
	}
}

// RankingSubmissionClient is a client for the RankingSubmission schema.
type RankingSubmissionClient struct {
	config
}

// NewRankingSubmissionClient returns a client for the RankingSubmission from the given config.
func NewRankingSubmissionClient(c config) *RankingSubmissionClient {
	return &RankingSubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `rankingsubmission.Hooks(f(g(h())))`.
func (c *RankingSubmissionClient) Use(hooks ...Hook) {
	c.hooks.RankingSubmission = append(c.hooks.RankingSubmission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `rankingsubmission.Intercept(f(g(h())))`.
func (c *RankingSubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.RankingSubmission = append(c.inters.RankingSubmission, interceptors...)
}

// Create returns a builder for creating a RankingSubmission entity.
func (c *RankingSubmissionClient) Create() *RankingSubmissionCreate {
	mutation := newRankingSubmissionMutation(c.config, OpCreate)
	return &RankingSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RankingSubmission entities.
func (c *RankingSubmissionClient) CreateBulk(builders ...*RankingSubmissionCreate) *RankingSubmissionCreateBulk {
	return &RankingSubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RankingSubmissionClient) MapCreateBulk(slice any, setFunc func(*RankingSubmissionCreate, int)) *RankingSubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RankingSubmissionCreateBulk{err: fmt.Errorf("calling to RankingSubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RankingSubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RankingSubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RankingSubmission.
func (c *RankingSubmissionClient) Update() *RankingSubmissionUpdate {
	mutation := newRankingSubmissionMutation(c.config, OpUpdate)
	return &RankingSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RankingSubmissionClient) UpdateOne(_m *RankingSubmission) *RankingSubmissionUpdateOne {
	mutation := newRankingSubmissionMutation(c.config, OpUpdateOne, withRankingSubmission(_m))
	return &RankingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RankingSubmissionClient) UpdateOneID(id string) *RankingSubmissionUpdateOne {
	mutation := newRankingSubmissionMutation(c.config, OpUpdateOne, withRankingSubmissionID(id))
	return &RankingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RankingSubmission.
func (c *RankingSubmissionClient) Delete() *RankingSubmissionDelete {
	mutation := newRankingSubmissionMutation(c.config, OpDelete)
	return &RankingSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RankingSubmissionClient) DeleteOne(_m *RankingSubmission) *RankingSubmissionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RankingSubmissionClient) DeleteOneID(id string) *RankingSubmissionDeleteOne {
	builder := c.Delete().Where(rankingsubmission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RankingSubmissionDeleteOne{builder}
}

// Query returns a query builder for RankingSubmission.
func (c *RankingSubmissionClient) Query() *RankingSubmissionQuery {
	return &RankingSubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRankingSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a RankingSubmission entity by its id.
func (c *RankingSubmissionClient) Get(ctx context.Context, id string) (*RankingSubmission, error) {
	return c.Query().Where(rankingsubmission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RankingSubmissionClient) GetX(ctx context.Context, id string) *RankingSubmission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a RankingSubmission.
func (c *RankingSubmissionClient) QuerySession(_m *RankingSubmission) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rankingsubmission.Table, rankingsubmission.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rankingsubmission.SessionTable, rankingsubmission.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a RankingSubmission.
func (c *RankingSubmissionClient) QueryParticipant(_m *RankingSubmission) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(rankingsubmission.Table, rankingsubmission.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, rankingsubmission.ParticipantTable, rankingsubmission.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RankingSubmissionClient) Hooks() []Hook {
	return c.hooks.RankingSubmission
}

// Interceptors returns the client interceptors.
func (c *RankingSubmissionClient) Interceptors() []Interceptor {
	return c.inters.RankingSubmission
}

func (c *RankingSubmissionClient) mutate(ctx context.Context, m *RankingSubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RankingSubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RankingSubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RankingSubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RankingSubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RankingSubmission mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryParticipants queries the participants edge of a Session.
func (c *SessionClient) QueryParticipants(_m *Session) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.ParticipantsTable, session.ParticipantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a Session.
func (c *SessionClient) QueryMessages(_m *Session) *MessageQuery {
	query := (&MessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(message.Table, message.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.MessagesTable, session.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTransactions queries the transactions edge of a Session.
func (c *SessionClient) QueryTransactions(_m *Session) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.TransactionsTable, session.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInventories queries the inventories edge of a Session.
func (c *SessionClient) QueryInventories(_m *Session) *ShapeInventoryQuery {
	query := (&ShapeInventoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(shapeinventory.Table, shapeinventory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.InventoriesTable, session.InventoriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProductionEntries queries the production_entries edge of a Session.
func (c *SessionClient) QueryProductionEntries(_m *Session) *ProductionQueueEntryQuery {
	query := (&ProductionQueueEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(productionqueueentry.Table, productionqueueentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.ProductionEntriesTable, session.ProductionEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInvestments queries the investments edge of a Session.
func (c *SessionClient) QueryInvestments(_m *Session) *InvestmentQuery {
	query := (&InvestmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(investment.Table, investment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.InvestmentsTable, session.InvestmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRankingSubmissions queries the ranking_submissions edge of a Session.
func (c *SessionClient) QueryRankingSubmissions(_m *Session) *RankingSubmissionQuery {
	query := (&RankingSubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(rankingsubmission.Table, rankingsubmission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.RankingSubmissionsTable, session.RankingSubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEssayAssignments queries the essay_assignments edge of a Session.
func (c *SessionClient) QueryEssayAssignments(_m *Session) *EssayAssignmentQuery {
	query := (&EssayAssignmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(essayassignment.Table, essayassignment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.EssayAssignmentsTable, session.EssayAssignmentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWordGuesses queries the word_guesses edge of a Session.
func (c *SessionClient) QueryWordGuesses(_m *Session) *WordGuessQuery {
	query := (&WordGuessClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(wordguess.Table, wordguess.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.WordGuessesTable, session.WordGuessesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Session.
func (c *SessionClient) QueryEvents(_m *Session) *EventQuery {
	query := (&EventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(session.Table, session.FieldID, id),
			sqlgraph.To(event.Table, event.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, session.EventsTable, session.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// ShapeInventoryClient is a client for the ShapeInventory schema.
type ShapeInventoryClient struct {
	config
}

// NewShapeInventoryClient returns a client for the ShapeInventory from the given config.
func NewShapeInventoryClient(c config) *ShapeInventoryClient {
	return &ShapeInventoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `shapeinventory.Hooks(f(g(h())))`.
func (c *ShapeInventoryClient) Use(hooks ...Hook) {
	c.hooks.ShapeInventory = append(c.hooks.ShapeInventory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `shapeinventory.Intercept(f(g(h())))`.
func (c *ShapeInventoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ShapeInventory = append(c.inters.ShapeInventory, interceptors...)
}

// Create returns a builder for creating a ShapeInventory entity.
func (c *ShapeInventoryClient) Create() *ShapeInventoryCreate {
	mutation := newShapeInventoryMutation(c.config, OpCreate)
	return &ShapeInventoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ShapeInventory entities.
func (c *ShapeInventoryClient) CreateBulk(builders ...*ShapeInventoryCreate) *ShapeInventoryCreateBulk {
	return &ShapeInventoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ShapeInventoryClient) MapCreateBulk(slice any, setFunc func(*ShapeInventoryCreate, int)) *ShapeInventoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ShapeInventoryCreateBulk{err: fmt.Errorf("calling to ShapeInventoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ShapeInventoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ShapeInventoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ShapeInventory.
func (c *ShapeInventoryClient) Update() *ShapeInventoryUpdate {
	mutation := newShapeInventoryMutation(c.config, OpUpdate)
	return &ShapeInventoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ShapeInventoryClient) UpdateOne(_m *ShapeInventory) *ShapeInventoryUpdateOne {
	mutation := newShapeInventoryMutation(c.config, OpUpdateOne, withShapeInventory(_m))
	return &ShapeInventoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ShapeInventoryClient) UpdateOneID(id string) *ShapeInventoryUpdateOne {
	mutation := newShapeInventoryMutation(c.config, OpUpdateOne, withShapeInventoryID(id))
	return &ShapeInventoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ShapeInventory.
func (c *ShapeInventoryClient) Delete() *ShapeInventoryDelete {
	mutation := newShapeInventoryMutation(c.config, OpDelete)
	return &ShapeInventoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ShapeInventoryClient) DeleteOne(_m *ShapeInventory) *ShapeInventoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ShapeInventoryClient) DeleteOneID(id string) *ShapeInventoryDeleteOne {
	builder := c.Delete().Where(shapeinventory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ShapeInventoryDeleteOne{builder}
}

// Query returns a query builder for ShapeInventory.
func (c *ShapeInventoryClient) Query() *ShapeInventoryQuery {
	return &ShapeInventoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeShapeInventory},
		inters: c.Interceptors(),
	}
}

// Get returns a ShapeInventory entity by its id.
func (c *ShapeInventoryClient) Get(ctx context.Context, id string) (*ShapeInventory, error) {
	return c.Query().Where(shapeinventory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ShapeInventoryClient) GetX(ctx context.Context, id string) *ShapeInventory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a ShapeInventory.
func (c *ShapeInventoryClient) QuerySession(_m *ShapeInventory) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shapeinventory.Table, shapeinventory.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, shapeinventory.SessionTable, shapeinventory.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a ShapeInventory.
func (c *ShapeInventoryClient) QueryParticipant(_m *ShapeInventory) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(shapeinventory.Table, shapeinventory.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, shapeinventory.ParticipantTable, shapeinventory.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ShapeInventoryClient) Hooks() []Hook {
	return c.hooks.ShapeInventory
}

// Interceptors returns the client interceptors.
func (c *ShapeInventoryClient) Interceptors() []Interceptor {
	return c.inters.ShapeInventory
}

func (c *ShapeInventoryClient) mutate(ctx context.Context, m *ShapeInventoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ShapeInventoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ShapeInventoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ShapeInventoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ShapeInventoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ShapeInventory mutation op: %q", m.Op())
	}
}

// TransactionClient is a client for the Transaction schema.
type TransactionClient struct {
	config
}

// NewTransactionClient returns a client for the Transaction from the given config.
func NewTransactionClient(c config) *TransactionClient {
	return &TransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transaction.Hooks(f(g(h())))`.
func (c *TransactionClient) Use(hooks ...Hook) {
	c.hooks.Transaction = append(c.hooks.Transaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transaction.Intercept(f(g(h())))`.
func (c *TransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transaction = append(c.inters.Transaction, interceptors...)
}

// Create returns a builder for creating a Transaction entity.
func (c *TransactionClient) Create() *TransactionCreate {
	mutation := newTransactionMutation(c.config, OpCreate)
	return &TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transaction entities.
func (c *TransactionClient) CreateBulk(builders ...*TransactionCreate) *TransactionCreateBulk {
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionClient) MapCreateBulk(slice any, setFunc func(*TransactionCreate, int)) *TransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionCreateBulk{err: fmt.Errorf("calling to TransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transaction.
func (c *TransactionClient) Update() *TransactionUpdate {
	mutation := newTransactionMutation(c.config, OpUpdate)
	return &TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionClient) UpdateOne(_m *Transaction) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransaction(_m))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionClient) UpdateOneID(id string) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransactionID(id))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transaction.
func (c *TransactionClient) Delete() *TransactionDelete {
	mutation := newTransactionMutation(c.config, OpDelete)
	return &TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionClient) DeleteOne(_m *Transaction) *TransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionClient) DeleteOneID(id string) *TransactionDeleteOne {
	builder := c.Delete().Where(transaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionDeleteOne{builder}
}

// Query returns a query builder for Transaction.
func (c *TransactionClient) Query() *TransactionQuery {
	return &TransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Transaction entity by its id.
func (c *TransactionClient) Get(ctx context.Context, id string) (*Transaction, error) {
	return c.Query().Where(transaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionClient) GetX(ctx context.Context, id string) *Transaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a Transaction.
func (c *TransactionClient) QuerySession(_m *Transaction) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transaction.SessionTable, transaction.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TransactionClient) Hooks() []Hook {
	return c.hooks.Transaction
}

// Interceptors returns the client interceptors.
func (c *TransactionClient) Interceptors() []Interceptor {
	return c.inters.Transaction
}

func (c *TransactionClient) mutate(ctx context.Context, m *TransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transaction mutation op: %q", m.Op())
	}
}

// WordGuessClient is a client for the WordGuess schema.
type WordGuessClient struct {
	config
}

// NewWordGuessClient returns a client for the WordGuess from the given config.
func NewWordGuessClient(c config) *WordGuessClient {
	return &WordGuessClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wordguess.Hooks(f(g(h())))`.
func (c *WordGuessClient) Use(hooks ...Hook) {
	c.hooks.WordGuess = append(c.hooks.WordGuess, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wordguess.Intercept(f(g(h())))`.
func (c *WordGuessClient) Intercept(interceptors ...Interceptor) {
	c.inters.WordGuess = append(c.inters.WordGuess, interceptors...)
}

// Create returns a builder for creating a WordGuess entity.
func (c *WordGuessClient) Create() *WordGuessCreate {
	mutation := newWordGuessMutation(c.config, OpCreate)
	return &WordGuessCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WordGuess entities.
func (c *WordGuessClient) CreateBulk(builders ...*WordGuessCreate) *WordGuessCreateBulk {
	return &WordGuessCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WordGuessClient) MapCreateBulk(slice any, setFunc func(*WordGuessCreate, int)) *WordGuessCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WordGuessCreateBulk{err: fmt.Errorf("calling to WordGuessClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WordGuessCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WordGuessCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WordGuess.
func (c *WordGuessClient) Update() *WordGuessUpdate {
	mutation := newWordGuessMutation(c.config, OpUpdate)
	return &WordGuessUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WordGuessClient) UpdateOne(_m *WordGuess) *WordGuessUpdateOne {
	mutation := newWordGuessMutation(c.config, OpUpdateOne, withWordGuess(_m))
	return &WordGuessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WordGuessClient) UpdateOneID(id string) *WordGuessUpdateOne {
	mutation := newWordGuessMutation(c.config, OpUpdateOne, withWordGuessID(id))
	return &WordGuessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WordGuess.
func (c *WordGuessClient) Delete() *WordGuessDelete {
	mutation := newWordGuessMutation(c.config, OpDelete)
	return &WordGuessDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WordGuessClient) DeleteOne(_m *WordGuess) *WordGuessDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WordGuessClient) DeleteOneID(id string) *WordGuessDeleteOne {
	builder := c.Delete().Where(wordguess.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WordGuessDeleteOne{builder}
}

// Query returns a query builder for WordGuess.
func (c *WordGuessClient) Query() *WordGuessQuery {
	return &WordGuessQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWordGuess},
		inters: c.Interceptors(),
	}
}

// Get returns a WordGuess entity by its id.
func (c *WordGuessClient) Get(ctx context.Context, id string) (*WordGuess, error) {
	return c.Query().Where(wordguess.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WordGuessClient) GetX(ctx context.Context, id string) *WordGuess {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySession queries the session edge of a WordGuess.
func (c *WordGuessClient) QuerySession(_m *WordGuess) *SessionQuery {
	query := (&SessionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wordguess.Table, wordguess.FieldID, id),
			sqlgraph.To(session.Table, session.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, wordguess.SessionTable, wordguess.SessionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParticipant queries the participant edge of a WordGuess.
func (c *WordGuessClient) QueryParticipant(_m *WordGuess) *ParticipantQuery {
	query := (&ParticipantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(wordguess.Table, wordguess.FieldID, id),
			sqlgraph.To(participant.Table, participant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, wordguess.ParticipantTable, wordguess.ParticipantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WordGuessClient) Hooks() []Hook {
	return c.hooks.WordGuess
}

// Interceptors returns the client interceptors.
func (c *WordGuessClient) Interceptors() []Interceptor {
	return c.inters.WordGuess
}

func (c *WordGuessClient) mutate(ctx context.Context, m *WordGuessMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WordGuessCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WordGuessUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WordGuessUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WordGuessDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WordGuess mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		EssayAssignment, Event, Investment, Message, Participant, ProductionQueueEntry,
		RankingSubmission, Session, ShapeInventory, Transaction, WordGuess []ent.Hook
	}
	inters struct {
		EssayAssignment, Event, Investment, Message, Participant, ProductionQueueEntry,
		RankingSubmission, Session, ShapeInventory, Transaction,
		WordGuess []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
