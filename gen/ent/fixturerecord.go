// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/avalette/metreur-tracker/gen/ent/fixturerecord"
	"github.com/avalette/metreur-tracker/gen/ent/survey"
	"github.com/google/uuid"
)

// FixtureRecord is the model entity for the FixtureRecord schema.
type FixtureRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SurveyID holds the value of the "survey_id" field.
	SurveyID uuid.UUID `json:"survey_id,omitempty"`
	// Repere holds the value of the "repere" field.
	Repere *string `json:"repere,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// OriginalData holds the value of the "original_data" field.
	OriginalData json.RawMessage `json:"original_data,omitempty"`
	// ModifiedData holds the value of the "modified_data" field.
	ModifiedData json.RawMessage `json:"modified_data,omitempty"`
	// Deviations holds the value of the "deviations" field.
	Deviations json.RawMessage `json:"deviations,omitempty"`
	// IsValidated holds the value of the "is_validated" field.
	IsValidated bool `json:"is_validated,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FixtureRecordQuery when eager-loading is set.
	Edges        FixtureRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FixtureRecordEdges holds the relations/edges for other nodes in the graph.
type FixtureRecordEdges struct {
	// Survey holds the value of the survey edge.
	Survey *Survey `json:"survey,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SurveyOrErr returns the Survey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FixtureRecordEdges) SurveyOrErr() (*Survey, error) {
	if e.Survey != nil {
		return e.Survey, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: survey.Label}
	}
	return nil, &NotLoadedError{edge: "survey"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FixtureRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fixturerecord.FieldOriginalData, fixturerecord.FieldModifiedData, fixturerecord.FieldDeviations:
			values[i] = new([]byte)
		case fixturerecord.FieldIsValidated:
			values[i] = new(sql.NullBool)
		case fixturerecord.FieldPosition:
			values[i] = new(sql.NullInt64)
		case fixturerecord.FieldRepere, fixturerecord.FieldTitle, fixturerecord.FieldStatus:
			values[i] = new(sql.NullString)
		case fixturerecord.FieldValidatedAt, fixturerecord.FieldCreatedAt, fixturerecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case fixturerecord.FieldID, fixturerecord.FieldSurveyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FixtureRecord fields.
func (_m *FixtureRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fixturerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fixturerecord.FieldSurveyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field survey_id", values[i])
			} else if value != nil {
				_m.SurveyID = *value
			}
		case fixturerecord.FieldRepere:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field repere", values[i])
			} else if value.Valid {
				_m.Repere = new(string)
				*_m.Repere = value.String
			}
		case fixturerecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case fixturerecord.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case fixturerecord.FieldOriginalData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field original_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OriginalData); err != nil {
					return fmt.Errorf("unmarshal field original_data: %w", err)
				}
			}
		case fixturerecord.FieldModifiedData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field modified_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ModifiedData); err != nil {
					return fmt.Errorf("unmarshal field modified_data: %w", err)
				}
			}
		case fixturerecord.FieldDeviations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deviations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deviations); err != nil {
					return fmt.Errorf("unmarshal field deviations: %w", err)
				}
			}
		case fixturerecord.FieldIsValidated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_validated", values[i])
			} else if value.Valid {
				_m.IsValidated = value.Bool
			}
		case fixturerecord.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case fixturerecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case fixturerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fixturerecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FixtureRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FixtureRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySurvey queries the "survey" edge of the FixtureRecord entity.
func (_m *FixtureRecord) QuerySurvey() *SurveyQuery {
	return NewFixtureRecordClient(_m.config).QuerySurvey(_m)
}

// Update returns a builder for updating this FixtureRecord.
// Note that you need to call FixtureRecord.Unwrap() before calling this method if this FixtureRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FixtureRecord) Update() *FixtureRecordUpdateOne {
	return NewFixtureRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FixtureRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FixtureRecord) Unwrap() *FixtureRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FixtureRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FixtureRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FixtureRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("survey_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SurveyID))
	builder.WriteString(", ")
	if v := _m.Repere; v != nil {
		builder.WriteString("repere=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("original_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginalData))
	builder.WriteString(", ")
	builder.WriteString("modified_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModifiedData))
	builder.WriteString(", ")
	builder.WriteString("deviations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deviations))
	builder.WriteString(", ")
	builder.WriteString("is_validated=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsValidated))
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FixtureRecords is a parsable slice of FixtureRecord.
type FixtureRecords []*FixtureRecord
