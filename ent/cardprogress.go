// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/cardprogress"
)

// CardProgress is the model entity for the CardProgress schema.
type CardProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Card identifier from the content pack
	CardID string `json:"card_id,omitempty"`
	// New, Learning, Review, or Relearning
	State string `json:"state,omitempty"`
	// Position on the learning-step ladder
	LearningStep int `json:"learning_step,omitempty"`
	// Memory-model stability; unset until graduation
	Stability *float64 `json:"stability,omitempty"`
	// Memory-model difficulty; unset until graduation
	Difficulty *float64 `json:"difficulty,omitempty"`
	// Successful reviews since graduation
	Repetitions int `json:"repetitions,omitempty"`
	// Classic-scheduler ease factor
	EaseFactor float64 `json:"ease_factor,omitempty"`
	// Classic-scheduler current interval
	IntervalDays int `json:"interval_days,omitempty"`
	// When the card is next due
	NextReview time.Time `json:"next_review,omitempty"`
	// Lifetime review count
	TotalReviews int `json:"total_reviews,omitempty"`
	// Lifetime successful review count
	CorrectReviews int `json:"correct_reviews,omitempty"`
	// Last write time
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CardProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cardprogress.FieldStability, cardprogress.FieldDifficulty, cardprogress.FieldEaseFactor:
			values[i] = new(sql.NullFloat64)
		case cardprogress.FieldID, cardprogress.FieldLearningStep, cardprogress.FieldRepetitions, cardprogress.FieldIntervalDays, cardprogress.FieldTotalReviews, cardprogress.FieldCorrectReviews:
			values[i] = new(sql.NullInt64)
		case cardprogress.FieldCardID, cardprogress.FieldState:
			values[i] = new(sql.NullString)
		case cardprogress.FieldNextReview, cardprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CardProgress fields.
func (_m *CardProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cardprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case cardprogress.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case cardprogress.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case cardprogress.FieldLearningStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learning_step", values[i])
			} else if value.Valid {
				_m.LearningStep = int(value.Int64)
			}
		case cardprogress.FieldStability:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field stability", values[i])
			} else if value.Valid {
				_m.Stability = new(float64)
				*_m.Stability = value.Float64
			}
		case cardprogress.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = new(float64)
				*_m.Difficulty = value.Float64
			}
		case cardprogress.FieldRepetitions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetitions", values[i])
			} else if value.Valid {
				_m.Repetitions = int(value.Int64)
			}
		case cardprogress.FieldEaseFactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ease_factor", values[i])
			} else if value.Valid {
				_m.EaseFactor = value.Float64
			}
		case cardprogress.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				_m.IntervalDays = int(value.Int64)
			}
		case cardprogress.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				_m.NextReview = value.Time
			}
		case cardprogress.FieldTotalReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_reviews", values[i])
			} else if value.Valid {
				_m.TotalReviews = int(value.Int64)
			}
		case cardprogress.FieldCorrectReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_reviews", values[i])
			} else if value.Valid {
				_m.CorrectReviews = int(value.Int64)
			}
		case cardprogress.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CardProgress.
// This includes values selected through modifiers, order, etc.
func (_m *CardProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CardProgress.
// Note that you need to call CardProgress.Unwrap() before calling this method if this CardProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CardProgress) Update() *CardProgressUpdateOne {
	return NewCardProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CardProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CardProgress) Unwrap() *CardProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CardProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CardProgress) String() string {
	var builder strings.Builder
	builder.WriteString("CardProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("learning_step=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningStep))
	builder.WriteString(", ")
	if v := _m.Stability; v != nil {
		builder.WriteString("stability=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Difficulty; v != nil {
		builder.WriteString("difficulty=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("repetitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Repetitions))
	builder.WriteString(", ")
	builder.WriteString("ease_factor=")
	builder.WriteString(fmt.Sprintf("%v", _m.EaseFactor))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(_m.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalReviews))
	builder.WriteString(", ")
	builder.WriteString("correct_reviews=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectReviews))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CardProgresses is a parsable slice of CardProgress.
type CardProgresses []*CardProgress
