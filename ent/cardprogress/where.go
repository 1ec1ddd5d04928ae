// Code generated by ent, DO NOT EDIT.

package cardprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldID, id))
}

// CardID applies equality check predicate on the "card_id" field. It's identical to CardIDEQ.
func CardID(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldCardID, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldState, v))
}

// LearningStep applies equality check predicate on the "learning_step" field. It's identical to LearningStepEQ.
func LearningStep(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldLearningStep, v))
}

// Stability applies equality check predicate on the "stability" field. It's identical to StabilityEQ.
func Stability(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldStability, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldDifficulty, v))
}

// Repetitions applies equality check predicate on the "repetitions" field. It's identical to RepetitionsEQ.
func Repetitions(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldRepetitions, v))
}

// EaseFactor applies equality check predicate on the "ease_factor" field. It's identical to EaseFactorEQ.
func EaseFactor(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldEaseFactor, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldNextReview, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldTotalReviews, v))
}

// CorrectReviews applies equality check predicate on the "correct_reviews" field. It's identical to CorrectReviewsEQ.
func CorrectReviews(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldCorrectReviews, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// CardIDEQ applies the EQ predicate on the "card_id" field.
func CardIDEQ(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldCardID, v))
}

// CardIDNEQ applies the NEQ predicate on the "card_id" field.
func CardIDNEQ(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldCardID, v))
}

// CardIDIn applies the In predicate on the "card_id" field.
func CardIDIn(vs ...string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldCardID, vs...))
}

// CardIDNotIn applies the NotIn predicate on the "card_id" field.
func CardIDNotIn(vs ...string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldCardID, vs...))
}

// CardIDGT applies the GT predicate on the "card_id" field.
func CardIDGT(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldCardID, v))
}

// CardIDGTE applies the GTE predicate on the "card_id" field.
func CardIDGTE(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldCardID, v))
}

// CardIDLT applies the LT predicate on the "card_id" field.
func CardIDLT(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldCardID, v))
}

// CardIDLTE applies the LTE predicate on the "card_id" field.
func CardIDLTE(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldCardID, v))
}

// CardIDContains applies the Contains predicate on the "card_id" field.
func CardIDContains(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldContains(FieldCardID, v))
}

// CardIDHasPrefix applies the HasPrefix predicate on the "card_id" field.
func CardIDHasPrefix(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldHasPrefix(FieldCardID, v))
}

// CardIDHasSuffix applies the HasSuffix predicate on the "card_id" field.
func CardIDHasSuffix(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldHasSuffix(FieldCardID, v))
}

// CardIDEqualFold applies the EqualFold predicate on the "card_id" field.
func CardIDEqualFold(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEqualFold(FieldCardID, v))
}

// CardIDContainsFold applies the ContainsFold predicate on the "card_id" field.
func CardIDContainsFold(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldContainsFold(FieldCardID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldContainsFold(FieldState, v))
}

// LearningStepEQ applies the EQ predicate on the "learning_step" field.
func LearningStepEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldLearningStep, v))
}

// LearningStepNEQ applies the NEQ predicate on the "learning_step" field.
func LearningStepNEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldLearningStep, v))
}

// LearningStepIn applies the In predicate on the "learning_step" field.
func LearningStepIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldLearningStep, vs...))
}

// LearningStepNotIn applies the NotIn predicate on the "learning_step" field.
func LearningStepNotIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldLearningStep, vs...))
}

// LearningStepGT applies the GT predicate on the "learning_step" field.
func LearningStepGT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldLearningStep, v))
}

// LearningStepGTE applies the GTE predicate on the "learning_step" field.
func LearningStepGTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldLearningStep, v))
}

// LearningStepLT applies the LT predicate on the "learning_step" field.
func LearningStepLT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldLearningStep, v))
}

// LearningStepLTE applies the LTE predicate on the "learning_step" field.
func LearningStepLTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldLearningStep, v))
}

// StabilityEQ applies the EQ predicate on the "stability" field.
func StabilityEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldStability, v))
}

// StabilityNEQ applies the NEQ predicate on the "stability" field.
func StabilityNEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldStability, v))
}

// StabilityIn applies the In predicate on the "stability" field.
func StabilityIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldStability, vs...))
}

// StabilityNotIn applies the NotIn predicate on the "stability" field.
func StabilityNotIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldStability, vs...))
}

// StabilityGT applies the GT predicate on the "stability" field.
func StabilityGT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldStability, v))
}

// StabilityGTE applies the GTE predicate on the "stability" field.
func StabilityGTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldStability, v))
}

// StabilityLT applies the LT predicate on the "stability" field.
func StabilityLT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldStability, v))
}

// StabilityLTE applies the LTE predicate on the "stability" field.
func StabilityLTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldStability, v))
}

// StabilityIsNil applies the IsNil predicate on the "stability" field.
func StabilityIsNil() predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIsNull(FieldStability))
}

// StabilityNotNil applies the NotNil predicate on the "stability" field.
func StabilityNotNil() predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotNull(FieldStability))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotNull(FieldDifficulty))
}

// RepetitionsEQ applies the EQ predicate on the "repetitions" field.
func RepetitionsEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldRepetitions, v))
}

// RepetitionsNEQ applies the NEQ predicate on the "repetitions" field.
func RepetitionsNEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldRepetitions, v))
}

// RepetitionsIn applies the In predicate on the "repetitions" field.
func RepetitionsIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldRepetitions, vs...))
}

// RepetitionsNotIn applies the NotIn predicate on the "repetitions" field.
func RepetitionsNotIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldRepetitions, vs...))
}

// RepetitionsGT applies the GT predicate on the "repetitions" field.
func RepetitionsGT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldRepetitions, v))
}

// RepetitionsGTE applies the GTE predicate on the "repetitions" field.
func RepetitionsGTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldRepetitions, v))
}

// RepetitionsLT applies the LT predicate on the "repetitions" field.
func RepetitionsLT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldRepetitions, v))
}

// RepetitionsLTE applies the LTE predicate on the "repetitions" field.
func RepetitionsLTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldRepetitions, v))
}

// EaseFactorEQ applies the EQ predicate on the "ease_factor" field.
func EaseFactorEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldEaseFactor, v))
}

// EaseFactorNEQ applies the NEQ predicate on the "ease_factor" field.
func EaseFactorNEQ(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldEaseFactor, v))
}

// EaseFactorIn applies the In predicate on the "ease_factor" field.
func EaseFactorIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldEaseFactor, vs...))
}

// EaseFactorNotIn applies the NotIn predicate on the "ease_factor" field.
func EaseFactorNotIn(vs ...float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldEaseFactor, vs...))
}

// EaseFactorGT applies the GT predicate on the "ease_factor" field.
func EaseFactorGT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldEaseFactor, v))
}

// EaseFactorGTE applies the GTE predicate on the "ease_factor" field.
func EaseFactorGTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldEaseFactor, v))
}

// EaseFactorLT applies the LT predicate on the "ease_factor" field.
func EaseFactorLT(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldEaseFactor, v))
}

// EaseFactorLTE applies the LTE predicate on the "ease_factor" field.
func EaseFactorLTE(v float64) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldEaseFactor, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldIntervalDays, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldNextReview, v))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldTotalReviews, v))
}

// CorrectReviewsEQ applies the EQ predicate on the "correct_reviews" field.
func CorrectReviewsEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldCorrectReviews, v))
}

// CorrectReviewsNEQ applies the NEQ predicate on the "correct_reviews" field.
func CorrectReviewsNEQ(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldCorrectReviews, v))
}

// CorrectReviewsIn applies the In predicate on the "correct_reviews" field.
func CorrectReviewsIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsNotIn applies the NotIn predicate on the "correct_reviews" field.
func CorrectReviewsNotIn(vs ...int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldCorrectReviews, vs...))
}

// CorrectReviewsGT applies the GT predicate on the "correct_reviews" field.
func CorrectReviewsGT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldCorrectReviews, v))
}

// CorrectReviewsGTE applies the GTE predicate on the "correct_reviews" field.
func CorrectReviewsGTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldCorrectReviews, v))
}

// CorrectReviewsLT applies the LT predicate on the "correct_reviews" field.
func CorrectReviewsLT(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldCorrectReviews, v))
}

// CorrectReviewsLTE applies the LTE predicate on the "correct_reviews" field.
func CorrectReviewsLTE(v int) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldCorrectReviews, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CardProgress {
	return predicate.CardProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CardProgress) predicate.CardProgress {
	return predicate.CardProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CardProgress) predicate.CardProgress {
	return predicate.CardProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CardProgress) predicate.CardProgress {
	return predicate.CardProgress(sql.NotPredicates(p))
}
