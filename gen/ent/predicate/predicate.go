// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExtractionJob is the predicate function for extractionjob builders.
type ExtractionJob func(*sql.Selector)

// FixtureRecord is the predicate function for fixturerecord builders.
type FixtureRecord func(*sql.Selector)

// Survey is the predicate function for survey builders.
type Survey func(*sql.Selector)
