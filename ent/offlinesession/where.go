// Code generated by ent, DO NOT EDIT.

package offlinesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldSessionID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldCreatedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldExpiresAt, v))
}

// DesiredRetention applies equality check predicate on the "desired_retention" field. It's identical to DesiredRetentionEQ.
func DesiredRetention(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldDesiredRetention, v))
}

// FocusMode applies equality check predicate on the "focus_mode" field. It's identical to FocusModeEQ.
func FocusMode(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldFocusMode, v))
}

// Consumed applies equality check predicate on the "consumed" field. It's identical to ConsumedEQ.
func Consumed(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldConsumed, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldContainsFold(FieldSessionID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLTE(FieldCreatedAt, v))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLTE(FieldExpiresAt, v))
}

// DesiredRetentionEQ applies the EQ predicate on the "desired_retention" field.
func DesiredRetentionEQ(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldDesiredRetention, v))
}

// DesiredRetentionNEQ applies the NEQ predicate on the "desired_retention" field.
func DesiredRetentionNEQ(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldDesiredRetention, v))
}

// DesiredRetentionIn applies the In predicate on the "desired_retention" field.
func DesiredRetentionIn(vs ...float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldIn(FieldDesiredRetention, vs...))
}

// DesiredRetentionNotIn applies the NotIn predicate on the "desired_retention" field.
func DesiredRetentionNotIn(vs ...float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNotIn(FieldDesiredRetention, vs...))
}

// DesiredRetentionGT applies the GT predicate on the "desired_retention" field.
func DesiredRetentionGT(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGT(FieldDesiredRetention, v))
}

// DesiredRetentionGTE applies the GTE predicate on the "desired_retention" field.
func DesiredRetentionGTE(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldGTE(FieldDesiredRetention, v))
}

// DesiredRetentionLT applies the LT predicate on the "desired_retention" field.
func DesiredRetentionLT(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLT(FieldDesiredRetention, v))
}

// DesiredRetentionLTE applies the LTE predicate on the "desired_retention" field.
func DesiredRetentionLTE(v float64) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldLTE(FieldDesiredRetention, v))
}

// FocusModeEQ applies the EQ predicate on the "focus_mode" field.
func FocusModeEQ(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldFocusMode, v))
}

// FocusModeNEQ applies the NEQ predicate on the "focus_mode" field.
func FocusModeNEQ(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldFocusMode, v))
}

// ConsumedEQ applies the EQ predicate on the "consumed" field.
func ConsumedEQ(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldEQ(FieldConsumed, v))
}

// ConsumedNEQ applies the NEQ predicate on the "consumed" field.
func ConsumedNEQ(v bool) predicate.OfflineSession {
	return predicate.OfflineSession(sql.FieldNEQ(FieldConsumed, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OfflineSession) predicate.OfflineSession {
	return predicate.OfflineSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OfflineSession) predicate.OfflineSession {
	return predicate.OfflineSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OfflineSession) predicate.OfflineSession {
	return predicate.OfflineSession(sql.NotPredicates(p))
}
