// Code generated by ent, DO NOT EDIT.

package fixturerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldID, id))
}

// SurveyID applies equality check predicate on the "survey_id" field. It's identical to SurveyIDEQ.
func SurveyID(v uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldSurveyID, v))
}

// Repere applies equality check predicate on the "repere" field. It's identical to RepereEQ.
func Repere(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldRepere, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldTitle, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldPosition, v))
}

// IsValidated applies equality check predicate on the "is_validated" field. It's identical to IsValidatedEQ.
func IsValidated(v bool) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldIsValidated, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldValidatedAt, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SurveyIDEQ applies the EQ predicate on the "survey_id" field.
func SurveyIDEQ(v uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldSurveyID, v))
}

// SurveyIDNEQ applies the NEQ predicate on the "survey_id" field.
func SurveyIDNEQ(v uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldSurveyID, v))
}

// SurveyIDIn applies the In predicate on the "survey_id" field.
func SurveyIDIn(vs ...uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldSurveyID, vs...))
}

// SurveyIDNotIn applies the NotIn predicate on the "survey_id" field.
func SurveyIDNotIn(vs ...uuid.UUID) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldSurveyID, vs...))
}

// RepereEQ applies the EQ predicate on the "repere" field.
func RepereEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldRepere, v))
}

// RepereNEQ applies the NEQ predicate on the "repere" field.
func RepereNEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldRepere, v))
}

// RepereIn applies the In predicate on the "repere" field.
func RepereIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldRepere, vs...))
}

// RepereNotIn applies the NotIn predicate on the "repere" field.
func RepereNotIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldRepere, vs...))
}

// RepereGT applies the GT predicate on the "repere" field.
func RepereGT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldRepere, v))
}

// RepereGTE applies the GTE predicate on the "repere" field.
func RepereGTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldRepere, v))
}

// RepereLT applies the LT predicate on the "repere" field.
func RepereLT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldRepere, v))
}

// RepereLTE applies the LTE predicate on the "repere" field.
func RepereLTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldRepere, v))
}

// RepereContains applies the Contains predicate on the "repere" field.
func RepereContains(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContains(FieldRepere, v))
}

// RepereHasPrefix applies the HasPrefix predicate on the "repere" field.
func RepereHasPrefix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasPrefix(FieldRepere, v))
}

// RepereHasSuffix applies the HasSuffix predicate on the "repere" field.
func RepereHasSuffix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasSuffix(FieldRepere, v))
}

// RepereIsNil applies the IsNil predicate on the "repere" field.
func RepereIsNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIsNull(FieldRepere))
}

// RepereNotNil applies the NotNil predicate on the "repere" field.
func RepereNotNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotNull(FieldRepere))
}

// RepereEqualFold applies the EqualFold predicate on the "repere" field.
func RepereEqualFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEqualFold(FieldRepere, v))
}

// RepereContainsFold applies the ContainsFold predicate on the "repere" field.
func RepereContainsFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContainsFold(FieldRepere, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContainsFold(FieldTitle, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldPosition, v))
}

// ModifiedDataIsNil applies the IsNil predicate on the "modified_data" field.
func ModifiedDataIsNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIsNull(FieldModifiedData))
}

// ModifiedDataNotNil applies the NotNil predicate on the "modified_data" field.
func ModifiedDataNotNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotNull(FieldModifiedData))
}

// DeviationsIsNil applies the IsNil predicate on the "deviations" field.
func DeviationsIsNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIsNull(FieldDeviations))
}

// DeviationsNotNil applies the NotNil predicate on the "deviations" field.
func DeviationsNotNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotNull(FieldDeviations))
}

// IsValidatedEQ applies the EQ predicate on the "is_validated" field.
func IsValidatedEQ(v bool) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldIsValidated, v))
}

// IsValidatedNEQ applies the NEQ predicate on the "is_validated" field.
func IsValidatedNEQ(v bool) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldIsValidated, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotNull(FieldValidatedAt))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSurvey applies the HasEdge predicate on the "survey" edge.
func HasSurvey() predicate.FixtureRecord {
	return predicate.FixtureRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SurveyTable, SurveyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSurveyWith applies the HasEdge predicate on the "survey" edge with a given conditions (other predicates).
func HasSurveyWith(preds ...predicate.Survey) predicate.FixtureRecord {
	return predicate.FixtureRecord(func(s *sql.Selector) {
		step := newSurveyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FixtureRecord) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FixtureRecord) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FixtureRecord) predicate.FixtureRecord {
	return predicate.FixtureRecord(sql.NotPredicates(p))
}
