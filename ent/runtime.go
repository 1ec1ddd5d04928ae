// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/minhokang/baeum/ent/cardprogress"
	"github.com/minhokang/baeum/ent/offlinesession"
	"github.com/minhokang/baeum/ent/reviewlog"
	"github.com/minhokang/baeum/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cardprogressFields := schema.CardProgress{}.Fields()
	_ = cardprogressFields
	// cardprogressDescCardID is the schema descriptor for card_id field.
	cardprogressDescCardID := cardprogressFields[0].Descriptor()
	// cardprogress.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	cardprogress.CardIDValidator = cardprogressDescCardID.Validators[0].(func(string) error)
	// cardprogressDescState is the schema descriptor for state field.
	cardprogressDescState := cardprogressFields[1].Descriptor()
	// cardprogress.StateValidator is a validator for the "state" field. It is called by the builders before save.
	cardprogress.StateValidator = cardprogressDescState.Validators[0].(func(string) error)
	// cardprogressDescLearningStep is the schema descriptor for learning_step field.
	cardprogressDescLearningStep := cardprogressFields[2].Descriptor()
	// cardprogress.DefaultLearningStep holds the default value on creation for the learning_step field.
	cardprogress.DefaultLearningStep = cardprogressDescLearningStep.Default.(int)
	// cardprogressDescRepetitions is the schema descriptor for repetitions field.
	cardprogressDescRepetitions := cardprogressFields[5].Descriptor()
	// cardprogress.DefaultRepetitions holds the default value on creation for the repetitions field.
	cardprogress.DefaultRepetitions = cardprogressDescRepetitions.Default.(int)
	// cardprogressDescEaseFactor is the schema descriptor for ease_factor field.
	cardprogressDescEaseFactor := cardprogressFields[6].Descriptor()
	// cardprogress.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	cardprogress.DefaultEaseFactor = cardprogressDescEaseFactor.Default.(float64)
	// cardprogressDescIntervalDays is the schema descriptor for interval_days field.
	cardprogressDescIntervalDays := cardprogressFields[7].Descriptor()
	// cardprogress.DefaultIntervalDays holds the default value on creation for the interval_days field.
	cardprogress.DefaultIntervalDays = cardprogressDescIntervalDays.Default.(int)
	// cardprogressDescTotalReviews is the schema descriptor for total_reviews field.
	cardprogressDescTotalReviews := cardprogressFields[9].Descriptor()
	// cardprogress.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	cardprogress.DefaultTotalReviews = cardprogressDescTotalReviews.Default.(int)
	// cardprogressDescCorrectReviews is the schema descriptor for correct_reviews field.
	cardprogressDescCorrectReviews := cardprogressFields[10].Descriptor()
	// cardprogress.DefaultCorrectReviews holds the default value on creation for the correct_reviews field.
	cardprogress.DefaultCorrectReviews = cardprogressDescCorrectReviews.Default.(int)
	// cardprogressDescUpdatedAt is the schema descriptor for updated_at field.
	cardprogressDescUpdatedAt := cardprogressFields[11].Descriptor()
	// cardprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cardprogress.DefaultUpdatedAt = cardprogressDescUpdatedAt.Default.(func() time.Time)
	// cardprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cardprogress.UpdateDefaultUpdatedAt = cardprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	offlinesessionFields := schema.OfflineSession{}.Fields()
	_ = offlinesessionFields
	// offlinesessionDescSessionID is the schema descriptor for session_id field.
	offlinesessionDescSessionID := offlinesessionFields[0].Descriptor()
	// offlinesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	offlinesession.SessionIDValidator = offlinesessionDescSessionID.Validators[0].(func(string) error)
	// offlinesessionDescFocusMode is the schema descriptor for focus_mode field.
	offlinesessionDescFocusMode := offlinesessionFields[4].Descriptor()
	// offlinesession.DefaultFocusMode holds the default value on creation for the focus_mode field.
	offlinesession.DefaultFocusMode = offlinesessionDescFocusMode.Default.(bool)
	// offlinesessionDescConsumed is the schema descriptor for consumed field.
	offlinesessionDescConsumed := offlinesessionFields[6].Descriptor()
	// offlinesession.DefaultConsumed holds the default value on creation for the consumed field.
	offlinesession.DefaultConsumed = offlinesessionDescConsumed.Default.(bool)
	reviewlogFields := schema.ReviewLog{}.Fields()
	_ = reviewlogFields
	// reviewlogDescCardID is the schema descriptor for card_id field.
	reviewlogDescCardID := reviewlogFields[0].Descriptor()
	// reviewlog.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	reviewlog.CardIDValidator = reviewlogDescCardID.Validators[0].(func(string) error)
	// reviewlogDescHintsUsed is the schema descriptor for hints_used field.
	reviewlogDescHintsUsed := reviewlogFields[3].Descriptor()
	// reviewlog.DefaultHintsUsed holds the default value on creation for the hints_used field.
	reviewlog.DefaultHintsUsed = reviewlogDescHintsUsed.Default.(int)
	// reviewlogDescStudyMode is the schema descriptor for study_mode field.
	reviewlogDescStudyMode := reviewlogFields[4].Descriptor()
	// reviewlog.DefaultStudyMode holds the default value on creation for the study_mode field.
	reviewlog.DefaultStudyMode = reviewlogDescStudyMode.Default.(string)
	// reviewlogDescTimestamp is the schema descriptor for timestamp field.
	reviewlogDescTimestamp := reviewlogFields[5].Descriptor()
	// reviewlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewlog.DefaultTimestamp = reviewlogDescTimestamp.Default.(func() time.Time)
}
