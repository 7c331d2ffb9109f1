// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jonzim-cmd/kura/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/jonzim-cmd/kura/ent/abusetelemetry"
	"github.com/jonzim-cmd/kura/ent/accesslogentry"
	"github.com/jonzim-cmd/kura/ent/event"
	"github.com/jonzim-cmd/kura/ent/projectionsnapshot"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AbuseTelemetry is the client for interacting with the AbuseTelemetry builders.
	AbuseTelemetry *AbuseTelemetryClient
	// AccessLogEntry is the client for interacting with the AccessLogEntry builders.
	AccessLogEntry *AccessLogEntryClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// ProjectionSnapshot is the client for interacting with the ProjectionSnapshot builders.
	ProjectionSnapshot *ProjectionSnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AbuseTelemetry = NewAbuseTelemetryClient(c.config)
	c.AccessLogEntry = NewAccessLogEntryClient(c.config)
	c.Event = NewEventClient(c.config)
	c.ProjectionSnapshot = NewProjectionSnapshotClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		AbuseTelemetry:     NewAbuseTelemetryClient(cfg),
		AccessLogEntry:     NewAccessLogEntryClient(cfg),
		Event:              NewEventClient(cfg),
		ProjectionSnapshot: NewProjectionSnapshotClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		AbuseTelemetry:     NewAbuseTelemetryClient(cfg),
		AccessLogEntry:     NewAccessLogEntryClient(cfg),
		Event:              NewEventClient(cfg),
		ProjectionSnapshot: NewProjectionSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AbuseTelemetry.
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
	c.AbuseTelemetry.Use(hooks...)
	c.AccessLogEntry.Use(hooks...)
	c.Event.Use(hooks...)
	c.ProjectionSnapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AbuseTelemetry.Intercept(interceptors...)
	c.AccessLogEntry.Intercept(interceptors...)
	c.Event.Intercept(interceptors...)
	c.ProjectionSnapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AbuseTelemetryMutation:
		return c.AbuseTelemetry.mutate(ctx, m)
	case *AccessLogEntryMutation:
		return c.AccessLogEntry.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *ProjectionSnapshotMutation:
		return c.ProjectionSnapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AbuseTelemetryClient is a client for the AbuseTelemetry schema.
type AbuseTelemetryClient struct {
	config
}

// NewAbuseTelemetryClient returns a client for the AbuseTelemetry from the given config.
func NewAbuseTelemetryClient(c config) *AbuseTelemetryClient {
	return &AbuseTelemetryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `abusetelemetry.Hooks(f(g(h())))`.
func (c *AbuseTelemetryClient) Use(hooks ...Hook) {
	c.hooks.AbuseTelemetry = append(c.hooks.AbuseTelemetry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `abusetelemetry.Intercept(f(g(h())))`.
func (c *AbuseTelemetryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AbuseTelemetry = append(c.inters.AbuseTelemetry, interceptors...)
}

// Create returns a builder for creating a AbuseTelemetry entity.
func (c *AbuseTelemetryClient) Create() *AbuseTelemetryCreate {
	mutation := newAbuseTelemetryMutation(c.config, OpCreate)
	return &AbuseTelemetryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AbuseTelemetry entities.
func (c *AbuseTelemetryClient) CreateBulk(builders ...*AbuseTelemetryCreate) *AbuseTelemetryCreateBulk {
	return &AbuseTelemetryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AbuseTelemetryClient) MapCreateBulk(slice any, setFunc func(*AbuseTelemetryCreate, int)) *AbuseTelemetryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AbuseTelemetryCreateBulk{err: fmt.Errorf("calling to AbuseTelemetryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AbuseTelemetryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AbuseTelemetryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AbuseTelemetry.
func (c *AbuseTelemetryClient) Update() *AbuseTelemetryUpdate {
	mutation := newAbuseTelemetryMutation(c.config, OpUpdate)
	return &AbuseTelemetryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AbuseTelemetryClient) UpdateOne(_m *AbuseTelemetry) *AbuseTelemetryUpdateOne {
	mutation := newAbuseTelemetryMutation(c.config, OpUpdateOne, withAbuseTelemetry(_m))
	return &AbuseTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AbuseTelemetryClient) UpdateOneID(id int64) *AbuseTelemetryUpdateOne {
	mutation := newAbuseTelemetryMutation(c.config, OpUpdateOne, withAbuseTelemetryID(id))
	return &AbuseTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AbuseTelemetry.
func (c *AbuseTelemetryClient) Delete() *AbuseTelemetryDelete {
	mutation := newAbuseTelemetryMutation(c.config, OpDelete)
	return &AbuseTelemetryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AbuseTelemetryClient) DeleteOne(_m *AbuseTelemetry) *AbuseTelemetryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AbuseTelemetryClient) DeleteOneID(id int64) *AbuseTelemetryDeleteOne {
	builder := c.Delete().Where(abusetelemetry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AbuseTelemetryDeleteOne{builder}
}

// Query returns a query builder for AbuseTelemetry.
func (c *AbuseTelemetryClient) Query() *AbuseTelemetryQuery {
	return &AbuseTelemetryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAbuseTelemetry},
		inters: c.Interceptors(),
	}
}

// Get returns a AbuseTelemetry entity by its id.
func (c *AbuseTelemetryClient) Get(ctx context.Context, id int64) (*AbuseTelemetry, error) {
	return c.Query().Where(abusetelemetry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AbuseTelemetryClient) GetX(ctx context.Context, id int64) *AbuseTelemetry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AbuseTelemetryClient) Hooks() []Hook {
	return c.hooks.AbuseTelemetry
}

// Interceptors returns the client interceptors.
func (c *AbuseTelemetryClient) Interceptors() []Interceptor {
	return c.inters.AbuseTelemetry
}

func (c *AbuseTelemetryClient) mutate(ctx context.Context, m *AbuseTelemetryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AbuseTelemetryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AbuseTelemetryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AbuseTelemetryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AbuseTelemetryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AbuseTelemetry mutation op: %q", m.Op())
	}
}

// AccessLogEntryClient is a client for the AccessLogEntry schema.
type AccessLogEntryClient struct {
	config
}

// NewAccessLogEntryClient returns a client for the AccessLogEntry from the given config.
func NewAccessLogEntryClient(c config) *AccessLogEntryClient {
	return &AccessLogEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `accesslogentry.Hooks(f(g(h())))`.
func (c *AccessLogEntryClient) Use(hooks ...Hook) {
	c.hooks.AccessLogEntry = append(c.hooks.AccessLogEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `accesslogentry.Intercept(f(g(h())))`.
func (c *AccessLogEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.AccessLogEntry = append(c.inters.AccessLogEntry, interceptors...)
}

// Create returns a builder for creating a AccessLogEntry entity.
func (c *AccessLogEntryClient) Create() *AccessLogEntryCreate {
	mutation := newAccessLogEntryMutation(c.config, OpCreate)
	return &AccessLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AccessLogEntry entities.
func (c *AccessLogEntryClient) CreateBulk(builders ...*AccessLogEntryCreate) *AccessLogEntryCreateBulk {
	return &AccessLogEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AccessLogEntryClient) MapCreateBulk(slice any, setFunc func(*AccessLogEntryCreate, int)) *AccessLogEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AccessLogEntryCreateBulk{err: fmt.Errorf("calling to AccessLogEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AccessLogEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AccessLogEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AccessLogEntry.
func (c *AccessLogEntryClient) Update() *AccessLogEntryUpdate {
	mutation := newAccessLogEntryMutation(c.config, OpUpdate)
	return &AccessLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AccessLogEntryClient) UpdateOne(_m *AccessLogEntry) *AccessLogEntryUpdateOne {
	mutation := newAccessLogEntryMutation(c.config, OpUpdateOne, withAccessLogEntry(_m))
	return &AccessLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AccessLogEntryClient) UpdateOneID(id int64) *AccessLogEntryUpdateOne {
	mutation := newAccessLogEntryMutation(c.config, OpUpdateOne, withAccessLogEntryID(id))
	return &AccessLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AccessLogEntry.
func (c *AccessLogEntryClient) Delete() *AccessLogEntryDelete {
	mutation := newAccessLogEntryMutation(c.config, OpDelete)
	return &AccessLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AccessLogEntryClient) DeleteOne(_m *AccessLogEntry) *AccessLogEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AccessLogEntryClient) DeleteOneID(id int64) *AccessLogEntryDeleteOne {
	builder := c.Delete().Where(accesslogentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AccessLogEntryDeleteOne{builder}
}

// Query returns a query builder for AccessLogEntry.
func (c *AccessLogEntryClient) Query() *AccessLogEntryQuery {
	return &AccessLogEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAccessLogEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a AccessLogEntry entity by its id.
func (c *AccessLogEntryClient) Get(ctx context.Context, id int64) (*AccessLogEntry, error) {
	return c.Query().Where(accesslogentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AccessLogEntryClient) GetX(ctx context.Context, id int64) *AccessLogEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AccessLogEntryClient) Hooks() []Hook {
	return c.hooks.AccessLogEntry
}

// Interceptors returns the client interceptors.
func (c *AccessLogEntryClient) Interceptors() []Interceptor {
	return c.inters.AccessLogEntry
}

func (c *AccessLogEntryClient) mutate(ctx context.Context, m *AccessLogEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AccessLogEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AccessLogEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AccessLogEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AccessLogEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AccessLogEntry mutation op: %q", m.Op())
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
func (c *EventClient) UpdateOneID(id uuid.UUID) *EventUpdateOne {
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
func (c *EventClient) DeleteOneID(id uuid.UUID) *EventDeleteOne {
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
func (c *EventClient) Get(ctx context.Context, id uuid.UUID) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id uuid.UUID) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
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

// ProjectionSnapshotClient is a client for the ProjectionSnapshot schema.
type ProjectionSnapshotClient struct {
	config
}

// NewProjectionSnapshotClient returns a client for the ProjectionSnapshot from the given config.
func NewProjectionSnapshotClient(c config) *ProjectionSnapshotClient {
	return &ProjectionSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `projectionsnapshot.Hooks(f(g(h())))`.
func (c *ProjectionSnapshotClient) Use(hooks ...Hook) {
	c.hooks.ProjectionSnapshot = append(c.hooks.ProjectionSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `projectionsnapshot.Intercept(f(g(h())))`.
func (c *ProjectionSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProjectionSnapshot = append(c.inters.ProjectionSnapshot, interceptors...)
}

// Create returns a builder for creating a ProjectionSnapshot entity.
func (c *ProjectionSnapshotClient) Create() *ProjectionSnapshotCreate {
	mutation := newProjectionSnapshotMutation(c.config, OpCreate)
	return &ProjectionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProjectionSnapshot entities.
func (c *ProjectionSnapshotClient) CreateBulk(builders ...*ProjectionSnapshotCreate) *ProjectionSnapshotCreateBulk {
	return &ProjectionSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectionSnapshotClient) MapCreateBulk(slice any, setFunc func(*ProjectionSnapshotCreate, int)) *ProjectionSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectionSnapshotCreateBulk{err: fmt.Errorf("calling to ProjectionSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectionSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectionSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProjectionSnapshot.
func (c *ProjectionSnapshotClient) Update() *ProjectionSnapshotUpdate {
	mutation := newProjectionSnapshotMutation(c.config, OpUpdate)
	return &ProjectionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectionSnapshotClient) UpdateOne(_m *ProjectionSnapshot) *ProjectionSnapshotUpdateOne {
	mutation := newProjectionSnapshotMutation(c.config, OpUpdateOne, withProjectionSnapshot(_m))
	return &ProjectionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectionSnapshotClient) UpdateOneID(id int64) *ProjectionSnapshotUpdateOne {
	mutation := newProjectionSnapshotMutation(c.config, OpUpdateOne, withProjectionSnapshotID(id))
	return &ProjectionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProjectionSnapshot.
func (c *ProjectionSnapshotClient) Delete() *ProjectionSnapshotDelete {
	mutation := newProjectionSnapshotMutation(c.config, OpDelete)
	return &ProjectionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectionSnapshotClient) DeleteOne(_m *ProjectionSnapshot) *ProjectionSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectionSnapshotClient) DeleteOneID(id int64) *ProjectionSnapshotDeleteOne {
	builder := c.Delete().Where(projectionsnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectionSnapshotDeleteOne{builder}
}

// Query returns a query builder for ProjectionSnapshot.
func (c *ProjectionSnapshotClient) Query() *ProjectionSnapshotQuery {
	return &ProjectionSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProjectionSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a ProjectionSnapshot entity by its id.
func (c *ProjectionSnapshotClient) Get(ctx context.Context, id int64) (*ProjectionSnapshot, error) {
	return c.Query().Where(projectionsnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectionSnapshotClient) GetX(ctx context.Context, id int64) *ProjectionSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProjectionSnapshotClient) Hooks() []Hook {
	return c.hooks.ProjectionSnapshot
}

// Interceptors returns the client interceptors.
func (c *ProjectionSnapshotClient) Interceptors() []Interceptor {
	return c.inters.ProjectionSnapshot
}

func (c *ProjectionSnapshotClient) mutate(ctx context.Context, m *ProjectionSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectionSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectionSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectionSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectionSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProjectionSnapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AbuseTelemetry, AccessLogEntry, Event, ProjectionSnapshot []ent.Hook
	}
	inters struct {
		AbuseTelemetry, AccessLogEntry, Event, ProjectionSnapshot []ent.Interceptor
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
