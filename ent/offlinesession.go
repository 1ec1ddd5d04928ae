// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/minhokang/baeum/ent/offlinesession"
)

// OfflineSession is the model entity for the OfflineSession schema.
type OfflineSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Snapshot UUID handed to the device
	SessionID string `json:"session_id,omitempty"`
	// When the snapshot was taken
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Replay deadline
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// Retention knob frozen into the snapshot
	DesiredRetention float64 `json:"desired_retention,omitempty"`
	// Focus-mode knob frozen into the snapshot
	FocusMode bool `json:"focus_mode,omitempty"`
	// Card id to frozen memory state
	Cards map[string]interface{} `json:"cards,omitempty"`
	// Set once a batch has been reconciled
	Consumed     bool `json:"consumed,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OfflineSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case offlinesession.FieldCards:
			values[i] = new([]byte)
		case offlinesession.FieldFocusMode, offlinesession.FieldConsumed:
			values[i] = new(sql.NullBool)
		case offlinesession.FieldDesiredRetention:
			values[i] = new(sql.NullFloat64)
		case offlinesession.FieldID:
			values[i] = new(sql.NullInt64)
		case offlinesession.FieldSessionID:
			values[i] = new(sql.NullString)
		case offlinesession.FieldCreatedAt, offlinesession.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OfflineSession fields.
func (_m *OfflineSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case offlinesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case offlinesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case offlinesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case offlinesession.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case offlinesession.FieldDesiredRetention:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field desired_retention", values[i])
			} else if value.Valid {
				_m.DesiredRetention = value.Float64
			}
		case offlinesession.FieldFocusMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field focus_mode", values[i])
			} else if value.Valid {
				_m.FocusMode = value.Bool
			}
		case offlinesession.FieldCards:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cards", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cards); err != nil {
					return fmt.Errorf("unmarshal field cards: %w", err)
				}
			}
		case offlinesession.FieldConsumed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field consumed", values[i])
			} else if value.Valid {
				_m.Consumed = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OfflineSession.
// This includes values selected through modifiers, order, etc.
func (_m *OfflineSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this OfflineSession.
// Note that you need to call OfflineSession.Unwrap() before calling this method if this OfflineSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OfflineSession) Update() *OfflineSessionUpdateOne {
	return NewOfflineSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OfflineSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OfflineSession) Unwrap() *OfflineSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OfflineSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OfflineSession) String() string {
	var builder strings.Builder
	builder.WriteString("OfflineSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("desired_retention=")
	builder.WriteString(fmt.Sprintf("%v", _m.DesiredRetention))
	builder.WriteString(", ")
	builder.WriteString("focus_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.FocusMode))
	builder.WriteString(", ")
	builder.WriteString("cards=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cards))
	builder.WriteString(", ")
	builder.WriteString("consumed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Consumed))
	builder.WriteByte(')')
	return builder.String()
}

// OfflineSessions is a parsable slice of OfflineSession.
type OfflineSessions []*OfflineSession
