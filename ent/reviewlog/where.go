// Code generated by ent, DO NOT EDIT.

package reviewlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCardID, v))
}

// Quality applies equality check predicate on the "quality" field. It's identical to QualityEQ.
func Quality(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuality, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCorrect, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldHintsUsed, v))
}

// StudyMode applies equality check predicate on the "study_mode" field. It's identical to StudyModeEQ.
func StudyMode(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldStudyMode, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldTimestamp, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContainsFold(FieldCardID, v))
}

// QualityEQ applies the EQ predicate on the "quality" field.
func QualityEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldQuality, v))
}

// QualityNEQ applies the NEQ predicate on the "quality" field.
func QualityNEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldQuality, v))
}

// QualityIn applies the In predicate on the "quality" field.
func QualityIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldQuality, vs...))
}

// QualityNotIn applies the NotIn predicate on the "quality" field.
func QualityNotIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldQuality, vs...))
}

// QualityGT applies the GT predicate on the "quality" field.
func QualityGT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldQuality, v))
}

// QualityGTE applies the GTE predicate on the "quality" field.
func QualityGTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldQuality, v))
}

// QualityLT applies the LT predicate on the "quality" field.
func QualityLT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldQuality, v))
}

// QualityLTE applies the LTE predicate on the "quality" field.
func QualityLTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldQuality, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldCorrect, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldHintsUsed, v))
}

// StudyModeEQ applies the EQ predicate on the "study_mode" field.
func StudyModeEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldStudyMode, v))
}

// StudyModeNEQ applies the NEQ predicate on the "study_mode" field.
func StudyModeNEQ(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldStudyMode, v))
}

// StudyModeIn applies the In predicate on the "study_mode" field.
func StudyModeIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldStudyMode, vs...))
}

// StudyModeNotIn applies the NotIn predicate on the "study_mode" field.
func StudyModeNotIn(vs ...string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldStudyMode, vs...))
}

// StudyModeGT applies the GT predicate on the "study_mode" field.
func StudyModeGT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldStudyMode, v))
}

// StudyModeGTE applies the GTE predicate on the "study_mode" field.
func StudyModeGTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldStudyMode, v))
}

// StudyModeLT applies the LT predicate on the "study_mode" field.
func StudyModeLT(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldStudyMode, v))
}

// StudyModeLTE applies the LTE predicate on the "study_mode" field.
func StudyModeLTE(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldStudyMode, v))
}

// StudyModeContains applies the Contains predicate on the "study_mode" field.
func StudyModeContains(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContains(FieldStudyMode, v))
}

// StudyModeHasPrefix applies the HasPrefix predicate on the "study_mode" field.
func StudyModeHasPrefix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasPrefix(FieldStudyMode, v))
}

// StudyModeHasSuffix applies the HasSuffix predicate on the "study_mode" field.
func StudyModeHasSuffix(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldHasSuffix(FieldStudyMode, v))
}

// StudyModeEqualFold applies the EqualFold predicate on the "study_mode" field.
func StudyModeEqualFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEqualFold(FieldStudyMode, v))
}

// StudyModeContainsFold applies the ContainsFold predicate on the "study_mode" field.
func StudyModeContainsFold(v string) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldContainsFold(FieldStudyMode, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ReviewLog {
	return predicate.ReviewLog(sql.FieldLTE(FieldTimestamp, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewLog) predicate.ReviewLog {
	return predicate.ReviewLog(sql.NotPredicates(p))
}
