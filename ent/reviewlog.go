// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/reviewlog"
)

// ReviewLog is the model entity for the ReviewLog schema.
type ReviewLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Card identifier from the content pack
	CardID string `json:"card_id,omitempty"`
	// Graded quality: 0, 2, 3, 4, or 5
	Quality int `json:"quality,omitempty"`
	// Whether the answer counted as a successful recall
	Correct bool `json:"correct,omitempty"`
	// Hint levels consumed before answering
	HintsUsed int `json:"hints_used,omitempty"`
	// online or offline
	StudyMode string `json:"study_mode,omitempty"`
	// UTC wall-clock time of the review
	Timestamp    time.Time `json:"timestamp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewlog.FieldCorrect:
			values[i] = new(sql.NullBool)
		case reviewlog.FieldID, reviewlog.FieldQuality, reviewlog.FieldHintsUsed:
			values[i] = new(sql.NullInt64)
		case reviewlog.FieldCardID, reviewlog.FieldStudyMode:
			values[i] = new(sql.NullString)
		case reviewlog.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewLog fields.
func (_m *ReviewLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case reviewlog.FieldCardID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field card_id", values[i])
			} else if value.Valid {
				_m.CardID = value.String
			}
		case reviewlog.FieldQuality:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = int(value.Int64)
			}
		case reviewlog.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case reviewlog.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case reviewlog.FieldStudyMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field study_mode", values[i])
			} else if value.Valid {
				_m.StudyMode = value.String
			}
		case reviewlog.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewLog.
// This includes values selected through modifiers, order, etc.
func (_m *ReviewLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewLog.
// Note that you need to call ReviewLog.Unwrap() before calling this method if this ReviewLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ReviewLog) Update() *ReviewLogUpdateOne {
	return NewReviewLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ReviewLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ReviewLog) Unwrap() *ReviewLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ReviewLog) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("card_id=")
	builder.WriteString(_m.CardID)
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("study_mode=")
	builder.WriteString(_m.StudyMode)
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewLogs is a parsable slice of ReviewLog.
type ReviewLogs []*ReviewLog
