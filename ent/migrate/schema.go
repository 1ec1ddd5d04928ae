// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CardProgressesColumns holds the columns for the "card_progresses" table.
	CardProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString, Unique: true},
		{Name: "state", Type: field.TypeString},
		{Name: "learning_step", Type: field.TypeInt, Default: 0},
		{Name: "stability", Type: field.TypeFloat64, Nullable: true},
		{Name: "difficulty", Type: field.TypeFloat64, Nullable: true},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "interval_days", Type: field.TypeInt, Default: 0},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "total_reviews", Type: field.TypeInt, Default: 0},
		{Name: "correct_reviews", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CardProgressesTable holds the schema information for the "card_progresses" table.
	CardProgressesTable = &schema.Table{
		Name:       "card_progresses",
		Columns:    CardProgressesColumns,
		PrimaryKey: []*schema.Column{CardProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "cardprogress_card_id",
				Unique:  false,
				Columns: []*schema.Column{CardProgressesColumns[1]},
			},
			{
				Name:    "cardprogress_next_review",
				Unique:  false,
				Columns: []*schema.Column{CardProgressesColumns[9]},
			},
			{
				Name:    "cardprogress_state",
				Unique:  false,
				Columns: []*schema.Column{CardProgressesColumns[2]},
			},
		},
	}
	// OfflineSessionsColumns holds the columns for the "offline_sessions" table.
	OfflineSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "desired_retention", Type: field.TypeFloat64},
		{Name: "focus_mode", Type: field.TypeBool, Default: false},
		{Name: "cards", Type: field.TypeJSON},
		{Name: "consumed", Type: field.TypeBool, Default: false},
	}
	// OfflineSessionsTable holds the schema information for the "offline_sessions" table.
	OfflineSessionsTable = &schema.Table{
		Name:       "offline_sessions",
		Columns:    OfflineSessionsColumns,
		PrimaryKey: []*schema.Column{OfflineSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "offlinesession_session_id",
				Unique:  false,
				Columns: []*schema.Column{OfflineSessionsColumns[1]},
			},
			{
				Name:    "offlinesession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{OfflineSessionsColumns[3]},
			},
			{
				Name:    "offlinesession_consumed",
				Unique:  false,
				Columns: []*schema.Column{OfflineSessionsColumns[7]},
			},
		},
	}
	// ReviewLogsColumns holds the columns for the "review_logs" table.
	ReviewLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "card_id", Type: field.TypeString},
		{Name: "quality", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "hints_used", Type: field.TypeInt, Default: 0},
		{Name: "study_mode", Type: field.TypeString, Default: "online"},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// ReviewLogsTable holds the schema information for the "review_logs" table.
	ReviewLogsTable = &schema.Table{
		Name:       "review_logs",
		Columns:    ReviewLogsColumns,
		PrimaryKey: []*schema.Column{ReviewLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewlog_card_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[1]},
			},
			{
				Name:    "reviewlog_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[6]},
			},
			{
				Name:    "reviewlog_correct",
				Unique:  false,
				Columns: []*schema.Column{ReviewLogsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CardProgressesTable,
		OfflineSessionsTable,
		ReviewLogsTable,
	}
)

func init() {
}
