// Code generated by ent, DO NOT EDIT.

package survey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/avalette/metreur-tracker/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldID, id))
}

// Reference applies equality check predicate on the "reference" field. It's identical to ReferenceEQ.
func Reference(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldReference, v))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientName, v))
}

// ClientAddress applies equality check predicate on the "client_address" field. It's identical to ClientAddressEQ.
func ClientAddress(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientAddress, v))
}

// ClientPhone applies equality check predicate on the "client_phone" field. It's identical to ClientPhoneEQ.
func ClientPhone(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientPhone, v))
}

// ClientEmail applies equality check predicate on the "client_email" field. It's identical to ClientEmailEQ.
func ClientEmail(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientEmail, v))
}

// SourceFilename applies equality check predicate on the "source_filename" field. It's identical to SourceFilenameEQ.
func SourceFilename(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSourceFilename, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldUpdatedAt, v))
}

// ReferenceEQ applies the EQ predicate on the "reference" field.
func ReferenceEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldReference, v))
}

// ReferenceNEQ applies the NEQ predicate on the "reference" field.
func ReferenceNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldReference, v))
}

// ReferenceIn applies the In predicate on the "reference" field.
func ReferenceIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldReference, vs...))
}

// ReferenceNotIn applies the NotIn predicate on the "reference" field.
func ReferenceNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldReference, vs...))
}

// ReferenceGT applies the GT predicate on the "reference" field.
func ReferenceGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldReference, v))
}

// ReferenceGTE applies the GTE predicate on the "reference" field.
func ReferenceGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldReference, v))
}

// ReferenceLT applies the LT predicate on the "reference" field.
func ReferenceLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldReference, v))
}

// ReferenceLTE applies the LTE predicate on the "reference" field.
func ReferenceLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldReference, v))
}

// ReferenceContains applies the Contains predicate on the "reference" field.
func ReferenceContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldReference, v))
}

// ReferenceHasPrefix applies the HasPrefix predicate on the "reference" field.
func ReferenceHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldReference, v))
}

// ReferenceHasSuffix applies the HasSuffix predicate on the "reference" field.
func ReferenceHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldReference, v))
}

// ReferenceEqualFold applies the EqualFold predicate on the "reference" field.
func ReferenceEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldReference, v))
}

// ReferenceContainsFold applies the ContainsFold predicate on the "reference" field.
func ReferenceContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldReference, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameIsNil applies the IsNil predicate on the "client_name" field.
func ClientNameIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldClientName))
}

// ClientNameNotNil applies the NotNil predicate on the "client_name" field.
func ClientNameNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldClientName))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldClientName, v))
}

// ClientAddressEQ applies the EQ predicate on the "client_address" field.
func ClientAddressEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientAddress, v))
}

// ClientAddressNEQ applies the NEQ predicate on the "client_address" field.
func ClientAddressNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldClientAddress, v))
}

// ClientAddressIn applies the In predicate on the "client_address" field.
func ClientAddressIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldClientAddress, vs...))
}

// ClientAddressNotIn applies the NotIn predicate on the "client_address" field.
func ClientAddressNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldClientAddress, vs...))
}

// ClientAddressGT applies the GT predicate on the "client_address" field.
func ClientAddressGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldClientAddress, v))
}

// ClientAddressGTE applies the GTE predicate on the "client_address" field.
func ClientAddressGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldClientAddress, v))
}

// ClientAddressLT applies the LT predicate on the "client_address" field.
func ClientAddressLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldClientAddress, v))
}

// ClientAddressLTE applies the LTE predicate on the "client_address" field.
func ClientAddressLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldClientAddress, v))
}

// ClientAddressContains applies the Contains predicate on the "client_address" field.
func ClientAddressContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldClientAddress, v))
}

// ClientAddressHasPrefix applies the HasPrefix predicate on the "client_address" field.
func ClientAddressHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldClientAddress, v))
}

// ClientAddressHasSuffix applies the HasSuffix predicate on the "client_address" field.
func ClientAddressHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldClientAddress, v))
}

// ClientAddressIsNil applies the IsNil predicate on the "client_address" field.
func ClientAddressIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldClientAddress))
}

// ClientAddressNotNil applies the NotNil predicate on the "client_address" field.
func ClientAddressNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldClientAddress))
}

// ClientAddressEqualFold applies the EqualFold predicate on the "client_address" field.
func ClientAddressEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldClientAddress, v))
}

// ClientAddressContainsFold applies the ContainsFold predicate on the "client_address" field.
func ClientAddressContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldClientAddress, v))
}

// ClientPhoneEQ applies the EQ predicate on the "client_phone" field.
func ClientPhoneEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientPhone, v))
}

// ClientPhoneNEQ applies the NEQ predicate on the "client_phone" field.
func ClientPhoneNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldClientPhone, v))
}

// ClientPhoneIn applies the In predicate on the "client_phone" field.
func ClientPhoneIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldClientPhone, vs...))
}

// ClientPhoneNotIn applies the NotIn predicate on the "client_phone" field.
func ClientPhoneNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldClientPhone, vs...))
}

// ClientPhoneGT applies the GT predicate on the "client_phone" field.
func ClientPhoneGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldClientPhone, v))
}

// ClientPhoneGTE applies the GTE predicate on the "client_phone" field.
func ClientPhoneGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldClientPhone, v))
}

// ClientPhoneLT applies the LT predicate on the "client_phone" field.
func ClientPhoneLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldClientPhone, v))
}

// ClientPhoneLTE applies the LTE predicate on the "client_phone" field.
func ClientPhoneLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldClientPhone, v))
}

// ClientPhoneContains applies the Contains predicate on the "client_phone" field.
func ClientPhoneContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldClientPhone, v))
}

// ClientPhoneHasPrefix applies the HasPrefix predicate on the "client_phone" field.
func ClientPhoneHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldClientPhone, v))
}

// ClientPhoneHasSuffix applies the HasSuffix predicate on the "client_phone" field.
func ClientPhoneHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldClientPhone, v))
}

// ClientPhoneIsNil applies the IsNil predicate on the "client_phone" field.
func ClientPhoneIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldClientPhone))
}

// ClientPhoneNotNil applies the NotNil predicate on the "client_phone" field.
func ClientPhoneNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldClientPhone))
}

// ClientPhoneEqualFold applies the EqualFold predicate on the "client_phone" field.
func ClientPhoneEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldClientPhone, v))
}

// ClientPhoneContainsFold applies the ContainsFold predicate on the "client_phone" field.
func ClientPhoneContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldClientPhone, v))
}

// ClientEmailEQ applies the EQ predicate on the "client_email" field.
func ClientEmailEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldClientEmail, v))
}

// ClientEmailNEQ applies the NEQ predicate on the "client_email" field.
func ClientEmailNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldClientEmail, v))
}

// ClientEmailIn applies the In predicate on the "client_email" field.
func ClientEmailIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldClientEmail, vs...))
}

// ClientEmailNotIn applies the NotIn predicate on the "client_email" field.
func ClientEmailNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldClientEmail, vs...))
}

// ClientEmailGT applies the GT predicate on the "client_email" field.
func ClientEmailGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldClientEmail, v))
}

// ClientEmailGTE applies the GTE predicate on the "client_email" field.
func ClientEmailGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldClientEmail, v))
}

// ClientEmailLT applies the LT predicate on the "client_email" field.
func ClientEmailLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldClientEmail, v))
}

// ClientEmailLTE applies the LTE predicate on the "client_email" field.
func ClientEmailLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldClientEmail, v))
}

// ClientEmailContains applies the Contains predicate on the "client_email" field.
func ClientEmailContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldClientEmail, v))
}

// ClientEmailHasPrefix applies the HasPrefix predicate on the "client_email" field.
func ClientEmailHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldClientEmail, v))
}

// ClientEmailHasSuffix applies the HasSuffix predicate on the "client_email" field.
func ClientEmailHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldClientEmail, v))
}

// ClientEmailIsNil applies the IsNil predicate on the "client_email" field.
func ClientEmailIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldClientEmail))
}

// ClientEmailNotNil applies the NotNil predicate on the "client_email" field.
func ClientEmailNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldClientEmail))
}

// ClientEmailEqualFold applies the EqualFold predicate on the "client_email" field.
func ClientEmailEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldClientEmail, v))
}

// ClientEmailContainsFold applies the ContainsFold predicate on the "client_email" field.
func ClientEmailContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldClientEmail, v))
}

// SourceFilenameEQ applies the EQ predicate on the "source_filename" field.
func SourceFilenameEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldSourceFilename, v))
}

// SourceFilenameNEQ applies the NEQ predicate on the "source_filename" field.
func SourceFilenameNEQ(v string) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldSourceFilename, v))
}

// SourceFilenameIn applies the In predicate on the "source_filename" field.
func SourceFilenameIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldSourceFilename, vs...))
}

// SourceFilenameNotIn applies the NotIn predicate on the "source_filename" field.
func SourceFilenameNotIn(vs ...string) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldSourceFilename, vs...))
}

// SourceFilenameGT applies the GT predicate on the "source_filename" field.
func SourceFilenameGT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldSourceFilename, v))
}

// SourceFilenameGTE applies the GTE predicate on the "source_filename" field.
func SourceFilenameGTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldSourceFilename, v))
}

// SourceFilenameLT applies the LT predicate on the "source_filename" field.
func SourceFilenameLT(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldSourceFilename, v))
}

// SourceFilenameLTE applies the LTE predicate on the "source_filename" field.
func SourceFilenameLTE(v string) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldSourceFilename, v))
}

// SourceFilenameContains applies the Contains predicate on the "source_filename" field.
func SourceFilenameContains(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContains(FieldSourceFilename, v))
}

// SourceFilenameHasPrefix applies the HasPrefix predicate on the "source_filename" field.
func SourceFilenameHasPrefix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasPrefix(FieldSourceFilename, v))
}

// SourceFilenameHasSuffix applies the HasSuffix predicate on the "source_filename" field.
func SourceFilenameHasSuffix(v string) predicate.Survey {
	return predicate.Survey(sql.FieldHasSuffix(FieldSourceFilename, v))
}

// SourceFilenameEqualFold applies the EqualFold predicate on the "source_filename" field.
func SourceFilenameEqualFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldEqualFold(FieldSourceFilename, v))
}

// SourceFilenameContainsFold applies the ContainsFold predicate on the "source_filename" field.
func SourceFilenameContainsFold(v string) predicate.Survey {
	return predicate.Survey(sql.FieldContainsFold(FieldSourceFilename, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldConfidence, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.Survey {
	return predicate.Survey(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.Survey {
	return predicate.Survey(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Survey {
	return predicate.Survey(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFixtures applies the HasEdge predicate on the "fixtures" edge.
func HasFixtures() predicate.Survey {
	return predicate.Survey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FixturesTable, FixturesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFixturesWith applies the HasEdge predicate on the "fixtures" edge with a given conditions (other predicates).
func HasFixturesWith(preds ...predicate.FixtureRecord) predicate.Survey {
	return predicate.Survey(func(s *sql.Selector) {
		step := newFixturesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Survey {
	return predicate.Survey(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractionJob) predicate.Survey {
	return predicate.Survey(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Survey) predicate.Survey {
	return predicate.Survey(sql.NotPredicates(p))
}
