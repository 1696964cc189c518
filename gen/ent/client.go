// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/avalette/metreur-tracker/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avalette/metreur-tracker/gen/ent/extractionjob"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// FixtureRecord is the client for interacting with the FixtureRecord builders.
	FixtureRecord *FixtureRecordClient
	// Survey is the client for interacting with the Survey builders.
	Survey *SurveyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.FixtureRecord = NewFixtureRecordClient(c.config)
	c.Survey = NewSurveyClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ExtractionJob: NewExtractionJobClient(cfg),
		FixtureRecord: NewFixtureRecordClient(cfg),
		Survey:        NewSurveyClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ExtractionJob: NewExtractionJobClient(cfg),
		FixtureRecord: NewFixtureRecordClient(cfg),
		Survey:        NewSurveyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractionJob.
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
	c.ExtractionJob.Use(hooks...)
	c.FixtureRecord.Use(hooks...)
	c.Survey.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractionJob.Intercept(interceptors...)
	c.FixtureRecord.Intercept(interceptors...)
	c.Survey.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *FixtureRecordMutation:
		return c.FixtureRecord.mutate(ctx, m)
	case *SurveyMutation:
		return c.Survey.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id uuid.UUID) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id uuid.UUID) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySurvey queries the survey edge of a ExtractionJob.
func (c *ExtractionJobClient) QuerySurvey(_m *ExtractionJob) *SurveyQuery {
	query := (&SurveyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.SurveyTable, extractionjob.SurveyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// FixtureRecordClient is a client for the FixtureRecord schema.
type FixtureRecordClient struct {
	config
}

// NewFixtureRecordClient returns a client for the FixtureRecord from the given config.
func NewFixtureRecordClient(c config) *FixtureRecordClient {
	return &FixtureRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fixturerecord.Hooks(f(g(h())))`.
func (c *FixtureRecordClient) Use(hooks ...Hook) {
	c.hooks.FixtureRecord = append(c.hooks.FixtureRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fixturerecord.Intercept(f(g(h())))`.
func (c *FixtureRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FixtureRecord = append(c.inters.FixtureRecord, interceptors...)
}

// Create returns a builder for creating a FixtureRecord entity.
func (c *FixtureRecordClient) Create() *FixtureRecordCreate {
	mutation := newFixtureRecordMutation(c.config, OpCreate)
	return &FixtureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FixtureRecord entities.
func (c *FixtureRecordClient) CreateBulk(builders ...*FixtureRecordCreate) *FixtureRecordCreateBulk {
	return &FixtureRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FixtureRecordClient) MapCreateBulk(slice any, setFunc func(*FixtureRecordCreate, int)) *FixtureRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FixtureRecordCreateBulk{err: fmt.Errorf("calling to FixtureRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FixtureRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FixtureRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FixtureRecord.
func (c *FixtureRecordClient) Update() *FixtureRecordUpdate {
	mutation := newFixtureRecordMutation(c.config, OpUpdate)
	return &FixtureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FixtureRecordClient) UpdateOne(_m *FixtureRecord) *FixtureRecordUpdateOne {
	mutation := newFixtureRecordMutation(c.config, OpUpdateOne, withFixtureRecord(_m))
	return &FixtureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FixtureRecordClient) UpdateOneID(id uuid.UUID) *FixtureRecordUpdateOne {
	mutation := newFixtureRecordMutation(c.config, OpUpdateOne, withFixtureRecordID(id))
	return &FixtureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FixtureRecord.
func (c *FixtureRecordClient) Delete() *FixtureRecordDelete {
	mutation := newFixtureRecordMutation(c.config, OpDelete)
	return &FixtureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FixtureRecordClient) DeleteOne(_m *FixtureRecord) *FixtureRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FixtureRecordClient) DeleteOneID(id uuid.UUID) *FixtureRecordDeleteOne {
	builder := c.Delete().Where(fixturerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FixtureRecordDeleteOne{builder}
}

// Query returns a query builder for FixtureRecord.
func (c *FixtureRecordClient) Query() *FixtureRecordQuery {
	return &FixtureRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFixtureRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FixtureRecord entity by its id.
func (c *FixtureRecordClient) Get(ctx context.Context, id uuid.UUID) (*FixtureRecord, error) {
	return c.Query().Where(fixturerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FixtureRecordClient) GetX(ctx context.Context, id uuid.UUID) *FixtureRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySurvey queries the survey edge of a FixtureRecord.
func (c *FixtureRecordClient) QuerySurvey(_m *FixtureRecord) *SurveyQuery {
	query := (&SurveyClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fixturerecord.Table, fixturerecord.FieldID, id),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fixturerecord.SurveyTable, fixturerecord.SurveyColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FixtureRecordClient) Hooks() []Hook {
	return c.hooks.FixtureRecord
}

// Interceptors returns the client interceptors.
func (c *FixtureRecordClient) Interceptors() []Interceptor {
	return c.inters.FixtureRecord
}

func (c *FixtureRecordClient) mutate(ctx context.Context, m *FixtureRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FixtureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FixtureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FixtureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FixtureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FixtureRecord mutation op: %q", m.Op())
	}
}

// SurveyClient is a client for the Survey schema.
type SurveyClient struct {
	config
}

// NewSurveyClient returns a client for the Survey from the given config.
func NewSurveyClient(c config) *SurveyClient {
	return &SurveyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `survey.Hooks(f(g(h())))`.
func (c *SurveyClient) Use(hooks ...Hook) {
	c.hooks.Survey = append(c.hooks.Survey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `survey.Intercept(f(g(h())))`.
func (c *SurveyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Survey = append(c.inters.Survey, interceptors...)
}

// Create returns a builder for creating a Survey entity.
func (c *SurveyClient) Create() *SurveyCreate {
	mutation := newSurveyMutation(c.config, OpCreate)
	return &SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Survey entities.
func (c *SurveyClient) CreateBulk(builders ...*SurveyCreate) *SurveyCreateBulk {
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurveyClient) MapCreateBulk(slice any, setFunc func(*SurveyCreate, int)) *SurveyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurveyCreateBulk{err: fmt.Errorf("calling to SurveyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurveyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Survey.
func (c *SurveyClient) Update() *SurveyUpdate {
	mutation := newSurveyMutation(c.config, OpUpdate)
	return &SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurveyClient) UpdateOne(_m *Survey) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurvey(_m))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurveyClient) UpdateOneID(id uuid.UUID) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurveyID(id))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Survey.
func (c *SurveyClient) Delete() *SurveyDelete {
	mutation := newSurveyMutation(c.config, OpDelete)
	return &SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurveyClient) DeleteOne(_m *Survey) *SurveyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurveyClient) DeleteOneID(id uuid.UUID) *SurveyDeleteOne {
	builder := c.Delete().Where(survey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurveyDeleteOne{builder}
}

// Query returns a query builder for Survey.
func (c *SurveyClient) Query() *SurveyQuery {
	return &SurveyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurvey},
		inters: c.Interceptors(),
	}
}

// Get returns a Survey entity by its id.
func (c *SurveyClient) Get(ctx context.Context, id uuid.UUID) (*Survey, error) {
	return c.Query().Where(survey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurveyClient) GetX(ctx context.Context, id uuid.UUID) *Survey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFixtures queries the fixtures edge of a Survey.
func (c *SurveyClient) QueryFixtures(_m *Survey) *FixtureRecordQuery {
	query := (&FixtureRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(survey.Table, survey.FieldID, id),
			sqlgraph.To(fixturerecord.Table, fixturerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, survey.FixturesTable, survey.FixturesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Survey.
func (c *SurveyClient) QueryJobs(_m *Survey) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(survey.Table, survey.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, survey.JobsTable, survey.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SurveyClient) Hooks() []Hook {
	return c.hooks.Survey
}

// Interceptors returns the client interceptors.
func (c *SurveyClient) Interceptors() []Interceptor {
	return c.inters.Survey
}

func (c *SurveyClient) mutate(ctx context.Context, m *SurveyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Survey mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractionJob, FixtureRecord, Survey []ent.Hook
	}
	inters struct {
		ExtractionJob, FixtureRecord, Survey []ent.Interceptor
	}
)
