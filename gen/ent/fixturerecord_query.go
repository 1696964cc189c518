// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// FixtureRecordQuery is the builder for querying FixtureRecord entities.
type FixtureRecordQuery struct {
	config
	ctx        *QueryContext
	order      []fixturerecord.OrderOption
	inters     []Interceptor
	predicates []predicate.FixtureRecord
	withSurvey *SurveyQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FixtureRecordQuery builder.
func (_q *FixtureRecordQuery) Where(ps ...predicate.FixtureRecord) *FixtureRecordQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *FixtureRecordQuery) Limit(limit int) *FixtureRecordQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *FixtureRecordQuery) Offset(offset int) *FixtureRecordQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *FixtureRecordQuery) Unique(unique bool) *FixtureRecordQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *FixtureRecordQuery) Order(o ...fixturerecord.OrderOption) *FixtureRecordQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySurvey chains the current query on the "survey" edge.
func (_q *FixtureRecordQuery) QuerySurvey() *SurveyQuery {
	query := (&SurveyClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(fixturerecord.Table, fixturerecord.FieldID, selector),
			sqlgraph.To(survey.Table, survey.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fixturerecord.SurveyTable, fixturerecord.SurveyColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first FixtureRecord entity from the query.
// Returns a *NotFoundError when no FixtureRecord was found.
func (_q *FixtureRecordQuery) First(ctx context.Context) (*FixtureRecord, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fixturerecord.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *FixtureRecordQuery) FirstX(ctx context.Context) *FixtureRecord {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FixtureRecord ID from the query.
// Returns a *NotFoundError when no FixtureRecord ID was found.
func (_q *FixtureRecordQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fixturerecord.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *FixtureRecordQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FixtureRecord entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FixtureRecord entity is found.
// Returns a *NotFoundError when no FixtureRecord entities are found.
func (_q *FixtureRecordQuery) Only(ctx context.Context) (*FixtureRecord, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fixturerecord.Label}
	default:
		return nil, &NotSingularError{fixturerecord.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *FixtureRecordQuery) OnlyX(ctx context.Context) *FixtureRecord {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FixtureRecord ID in the query.
// Returns a *NotSingularError when more than one FixtureRecord ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *FixtureRecordQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fixturerecord.Label}
	default:
		err = &NotSingularError{fixturerecord.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *FixtureRecordQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FixtureRecords.
func (_q *FixtureRecordQuery) All(ctx context.Context) ([]*FixtureRecord, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FixtureRecord, *FixtureRecordQuery]()
	return withInterceptors[[]*FixtureRecord](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *FixtureRecordQuery) AllX(ctx context.Context) []*FixtureRecord {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FixtureRecord IDs.
func (_q *FixtureRecordQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(fixturerecord.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *FixtureRecordQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *FixtureRecordQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*FixtureRecordQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *FixtureRecordQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *FixtureRecordQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *FixtureRecordQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FixtureRecordQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *FixtureRecordQuery) Clone() *FixtureRecordQuery {
	if _q == nil {
		return nil
	}
	return &FixtureRecordQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]fixturerecord.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.FixtureRecord{}, _q.predicates...),
		withSurvey: _q.withSurvey.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSurvey tells the query-builder to eager-load the nodes that are connected to
// the "survey" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *FixtureRecordQuery) WithSurvey(opts ...func(*SurveyQuery)) *FixtureRecordQuery {
	query := (&SurveyClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSurvey = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SurveyID uuid.UUID `json:"survey_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FixtureRecord.Query().
//		GroupBy(fixturerecord.FieldSurveyID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *FixtureRecordQuery) GroupBy(field string, fields ...string) *FixtureRecordGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FixtureRecordGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = fixturerecord.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SurveyID uuid.UUID `json:"survey_id,omitempty"`
//	}
//
//	client.FixtureRecord.Query().
//		Select(fixturerecord.FieldSurveyID).
//		Scan(ctx, &v)
func (_q *FixtureRecordQuery) Select(fields ...string) *FixtureRecordSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &FixtureRecordSelect{FixtureRecordQuery: _q}
	sbuild.label = fixturerecord.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FixtureRecordSelect configured with the given aggregations.
func (_q *FixtureRecordQuery) Aggregate(fns ...AggregateFunc) *FixtureRecordSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *FixtureRecordQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !fixturerecord.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *FixtureRecordQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FixtureRecord, error) {
	var (
		nodes       = []*FixtureRecord{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withSurvey != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FixtureRecord).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FixtureRecord{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSurvey; query != nil {
		if err := _q.loadSurvey(ctx, query, nodes, nil,
			func(n *FixtureRecord, e *Survey) { n.Edges.Survey = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *FixtureRecordQuery) loadSurvey(ctx context.Context, query *SurveyQuery, nodes []*FixtureRecord, init func(*FixtureRecord), assign func(*FixtureRecord, *Survey)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*FixtureRecord)
	for i := range nodes {
		fk := nodes[i].SurveyID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(survey.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "survey_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *FixtureRecordQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *FixtureRecordQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fixturerecord.Table, fixturerecord.Columns, sqlgraph.NewFieldSpec(fixturerecord.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fixturerecord.FieldID)
		for i := range fields {
			if fields[i] != fixturerecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSurvey != nil {
			_spec.Node.AddColumnOnce(fixturerecord.FieldSurveyID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *FixtureRecordQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(fixturerecord.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = fixturerecord.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FixtureRecordGroupBy is the group-by builder for FixtureRecord entities.
type FixtureRecordGroupBy struct {
	selector
	build *FixtureRecordQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *FixtureRecordGroupBy) Aggregate(fns ...AggregateFunc) *FixtureRecordGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *FixtureRecordGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FixtureRecordQuery, *FixtureRecordGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *FixtureRecordGroupBy) sqlScan(ctx context.Context, root *FixtureRecordQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FixtureRecordSelect is the builder for selecting fields of FixtureRecord entities.
type FixtureRecordSelect struct {
	*FixtureRecordQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *FixtureRecordSelect) Aggregate(fns ...AggregateFunc) *FixtureRecordSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *FixtureRecordSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FixtureRecordQuery, *FixtureRecordSelect](ctx, _s.FixtureRecordQuery, _s, _s.inters, v)
}

func (_s *FixtureRecordSelect) sqlScan(ctx context.Context, root *FixtureRecordQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
