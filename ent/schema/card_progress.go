package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CardProgress holds one card's scheduling state. One row per card; the
// scheduler is the only writer.
type CardProgress struct {
	ent.Schema
}

func (CardProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("card_id").
			NotEmpty().
			Unique().
			Comment("Card identifier from the content pack"),
		field.String("state").
			NotEmpty().
			Comment("New, Learning, Review, or Relearning"),
		field.Int("learning_step").
			Default(0).
			Comment("Position on the learning-step ladder"),
		field.Float("stability").
			Optional().
			Nillable().
			Comment("Memory-model stability; unset until graduation"),
		field.Float("difficulty").
			Optional().
			Nillable().
			Comment("Memory-model difficulty; unset until graduation"),
		field.Int("repetitions").
			Default(0).
			Comment("Successful reviews since graduation"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("Classic-scheduler ease factor"),
		field.Int("interval_days").
			Default(0).
			Comment("Classic-scheduler current interval"),
		field.Time("next_review").
			Comment("When the card is next due"),
		field.Int("total_reviews").
			Default(0).
			Comment("Lifetime review count"),
		field.Int("correct_reviews").
			Default(0).
			Comment("Lifetime successful review count"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (CardProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("card_id"),
		index.Fields("next_review"),
		index.Fields("state"),
	}
}
