package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewLog records one graded answer. Rows are append-only; the selector
// reads recent failures and last-review times from here.
type ReviewLog struct {
	ent.Schema
}

func (ReviewLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Comment("Card identifier from the content pack"),
		field.Int("quality").
			Comment("Graded quality: 0, 2, 3, 4, or 5"),
		field.Bool("correct").
			Comment("Whether the answer counted as a successful recall"),
		field.Int("hints_used").
			Default(0).
			Comment("Hint levels consumed before answering"),
		field.String("study_mode").
			Default("online").
			Comment("online or offline"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the review"),
	}
}

func (ReviewLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("timestamp"),
		index.Fields("correct"),
	}
}
