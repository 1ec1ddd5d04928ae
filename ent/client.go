// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/minhokang/baeum/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/cardprogress"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/ent/reviewlog"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CardProgress is the client for interacting with the CardProgress builders.
	CardProgress *CardProgressClient
	// OfflineSession is the client for interacting with the OfflineSession builders.
	OfflineSession *OfflineSessionClient
	// ReviewLog is the client for interacting with the ReviewLog builders.
	ReviewLog *ReviewLogClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CardProgress = NewCardProgressClient(c.config)
	c.OfflineSession = NewOfflineSessionClient(c.config)
	c.ReviewLog = NewReviewLogClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		CardProgress:   NewCardProgressClient(cfg),
		OfflineSession: NewOfflineSessionClient(cfg),
		ReviewLog:      NewReviewLogClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		CardProgress:   NewCardProgressClient(cfg),
		OfflineSession: NewOfflineSessionClient(cfg),
		ReviewLog:      NewReviewLogClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CardProgress.
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
	c.CardProgress.Use(hooks...)
	c.OfflineSession.Use(hooks...)
	c.ReviewLog.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CardProgress.Intercept(interceptors...)
	c.OfflineSession.Intercept(interceptors...)
	c.ReviewLog.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CardProgressMutation:
		return c.CardProgress.mutate(ctx, m)
	case *OfflineSessionMutation:
		return c.OfflineSession.mutate(ctx, m)
	case *ReviewLogMutation:
		return c.ReviewLog.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CardProgressClient is a client for the CardProgress schema.
type CardProgressClient struct {
	config
}

// NewCardProgressClient returns a client for the CardProgress from the given config.
func NewCardProgressClient(c config) *CardProgressClient {
	return &CardProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cardprogress.Hooks(f(g(h())))`.
func (c *CardProgressClient) Use(hooks ...Hook) {
	c.hooks.CardProgress = append(c.hooks.CardProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cardprogress.Intercept(f(g(h())))`.
func (c *CardProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.CardProgress = append(c.inters.CardProgress, interceptors...)
}

// Create returns a builder for creating a CardProgress entity.
func (c *CardProgressClient) Create() *CardProgressCreate {
	mutation := newCardProgressMutation(c.config, OpCreate)
	return &CardProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CardProgress entities.
func (c *CardProgressClient) CreateBulk(builders ...*CardProgressCreate) *CardProgressCreateBulk {
	return &CardProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CardProgressClient) MapCreateBulk(slice any, setFunc func(*CardProgressCreate, int)) *CardProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CardProgressCreateBulk{err: fmt.Errorf("calling to CardProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CardProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CardProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CardProgress.
func (c *CardProgressClient) Update() *CardProgressUpdate {
	mutation := newCardProgressMutation(c.config, OpUpdate)
	return &CardProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CardProgressClient) UpdateOne(_m *CardProgress) *CardProgressUpdateOne {
	mutation := newCardProgressMutation(c.config, OpUpdateOne, withCardProgress(_m))
	return &CardProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CardProgressClient) UpdateOneID(id int) *CardProgressUpdateOne {
	mutation := newCardProgressMutation(c.config, OpUpdateOne, withCardProgressID(id))
	return &CardProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CardProgress.
func (c *CardProgressClient) Delete() *CardProgressDelete {
	mutation := newCardProgressMutation(c.config, OpDelete)
	return &CardProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CardProgressClient) DeleteOne(_m *CardProgress) *CardProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CardProgressClient) DeleteOneID(id int) *CardProgressDeleteOne {
	builder := c.Delete().Where(cardprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CardProgressDeleteOne{builder}
}

// Query returns a query builder for CardProgress.
func (c *CardProgressClient) Query() *CardProgressQuery {
	return &CardProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCardProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a CardProgress entity by its id.
func (c *CardProgressClient) Get(ctx context.Context, id int) (*CardProgress, error) {
	return c.Query().Where(cardprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CardProgressClient) GetX(ctx context.Context, id int) *CardProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CardProgressClient) Hooks() []Hook {
	return c.hooks.CardProgress
}

// Interceptors returns the client interceptors.
func (c *CardProgressClient) Interceptors() []Interceptor {
	return c.inters.CardProgress
}

func (c *CardProgressClient) mutate(ctx context.Context, m *CardProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CardProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CardProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CardProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CardProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CardProgress mutation op: %q", m.Op())
	}
}

// OfflineSessionClient is a client for the OfflineSession schema.
type OfflineSessionClient struct {
	config
}

// NewOfflineSessionClient returns a client for the OfflineSession from the given config.
func NewOfflineSessionClient(c config) *OfflineSessionClient {
	return &OfflineSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `offlinesession.Hooks(f(g(h())))`.
func (c *OfflineSessionClient) Use(hooks ...Hook) {
	c.hooks.OfflineSession = append(c.hooks.OfflineSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `offlinesession.Intercept(f(g(h())))`.
func (c *OfflineSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.OfflineSession = append(c.inters.OfflineSession, interceptors...)
}

// Create returns a builder for creating a OfflineSession entity.
func (c *OfflineSessionClient) Create() *OfflineSessionCreate {
	mutation := newOfflineSessionMutation(c.config, OpCreate)
	return &OfflineSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OfflineSession entities.
func (c *OfflineSessionClient) CreateBulk(builders ...*OfflineSessionCreate) *OfflineSessionCreateBulk {
	return &OfflineSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OfflineSessionClient) MapCreateBulk(slice any, setFunc func(*OfflineSessionCreate, int)) *OfflineSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OfflineSessionCreateBulk{err: fmt.Errorf("calling to OfflineSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OfflineSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OfflineSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OfflineSession.
func (c *OfflineSessionClient) Update() *OfflineSessionUpdate {
	mutation := newOfflineSessionMutation(c.config, OpUpdate)
	return &OfflineSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OfflineSessionClient) UpdateOne(_m *OfflineSession) *OfflineSessionUpdateOne {
	mutation := newOfflineSessionMutation(c.config, OpUpdateOne, withOfflineSession(_m))
	return &OfflineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OfflineSessionClient) UpdateOneID(id int) *OfflineSessionUpdateOne {
	mutation := newOfflineSessionMutation(c.config, OpUpdateOne, withOfflineSessionID(id))
	return &OfflineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OfflineSession.
func (c *OfflineSessionClient) Delete() *OfflineSessionDelete {
	mutation := newOfflineSessionMutation(c.config, OpDelete)
	return &OfflineSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OfflineSessionClient) DeleteOne(_m *OfflineSession) *OfflineSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OfflineSessionClient) DeleteOneID(id int) *OfflineSessionDeleteOne {
	builder := c.Delete().Where(offlinesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OfflineSessionDeleteOne{builder}
}

// Query returns a query builder for OfflineSession.
func (c *OfflineSessionClient) Query() *OfflineSessionQuery {
	return &OfflineSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOfflineSession},
		inters: c.Interceptors(),
	}
}

// Get returns a OfflineSession entity by its id.
func (c *OfflineSessionClient) Get(ctx context.Context, id int) (*OfflineSession, error) {
	return c.Query().Where(offlinesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OfflineSessionClient) GetX(ctx context.Context, id int) *OfflineSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OfflineSessionClient) Hooks() []Hook {
	return c.hooks.OfflineSession
}

// Interceptors returns the client interceptors.
func (c *OfflineSessionClient) Interceptors() []Interceptor {
	return c.inters.OfflineSession
}

func (c *OfflineSessionClient) mutate(ctx context.Context, m *OfflineSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OfflineSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OfflineSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OfflineSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OfflineSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OfflineSession mutation op: %q", m.Op())
	}
}

// ReviewLogClient is a client for the ReviewLog schema.
type ReviewLogClient struct {
	config
}

// NewReviewLogClient returns a client for the ReviewLog from the given config.
func NewReviewLogClient(c config) *ReviewLogClient {
	return &ReviewLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewlog.Hooks(f(g(h())))`.
func (c *ReviewLogClient) Use(hooks ...Hook) {
	c.hooks.ReviewLog = append(c.hooks.ReviewLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewlog.Intercept(f(g(h())))`.
func (c *ReviewLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewLog = append(c.inters.ReviewLog, interceptors...)
}

// Create returns a builder for creating a ReviewLog entity.
func (c *ReviewLogClient) Create() *ReviewLogCreate {
	mutation := newReviewLogMutation(c.config, OpCreate)
	return &ReviewLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewLog entities.
func (c *ReviewLogClient) CreateBulk(builders ...*ReviewLogCreate) *ReviewLogCreateBulk {
	return &ReviewLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewLogClient) MapCreateBulk(slice any, setFunc func(*ReviewLogCreate, int)) *ReviewLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewLogCreateBulk{err: fmt.Errorf("calling to ReviewLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewLog.
func (c *ReviewLogClient) Update() *ReviewLogUpdate {
	mutation := newReviewLogMutation(c.config, OpUpdate)
	return &ReviewLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewLogClient) UpdateOne(_m *ReviewLog) *ReviewLogUpdateOne {
	mutation := newReviewLogMutation(c.config, OpUpdateOne, withReviewLog(_m))
	return &ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewLogClient) UpdateOneID(id int) *ReviewLogUpdateOne {
	mutation := newReviewLogMutation(c.config, OpUpdateOne, withReviewLogID(id))
	return &ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewLog.
func (c *ReviewLogClient) Delete() *ReviewLogDelete {
	mutation := newReviewLogMutation(c.config, OpDelete)
	return &ReviewLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewLogClient) DeleteOne(_m *ReviewLog) *ReviewLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewLogClient) DeleteOneID(id int) *ReviewLogDeleteOne {
	builder := c.Delete().Where(reviewlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewLogDeleteOne{builder}
}

// Query returns a query builder for ReviewLog.
func (c *ReviewLogClient) Query() *ReviewLogQuery {
	return &ReviewLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewLog entity by its id.
func (c *ReviewLogClient) Get(ctx context.Context, id int) (*ReviewLog, error) {
	return c.Query().Where(reviewlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewLogClient) GetX(ctx context.Context, id int) *ReviewLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewLogClient) Hooks() []Hook {
	return c.hooks.ReviewLog
}

// Interceptors returns the client interceptors.
func (c *ReviewLogClient) Interceptors() []Interceptor {
	return c.inters.ReviewLog
}

func (c *ReviewLogClient) mutate(ctx context.Context, m *ReviewLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewLog mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CardProgress, OfflineSession, ReviewLog []ent.Hook
	}
	inters struct {
		CardProgress, OfflineSession, ReviewLog []ent.Interceptor
	}
)
