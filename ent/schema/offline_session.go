package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OfflineSession persists an offline study snapshot so a later sync can be
// replayed against the exact states the device left with.
type OfflineSession struct {
	ent.Schema
}

func (OfflineSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Snapshot UUID handed to the device"),
		field.Time("created_at").
			Immutable().
			Comment("When the snapshot was taken"),
		field.Time("expires_at").
			Immutable().
			Comment("Replay deadline"),
		field.Float("desired_retention").
			Comment("Retention knob frozen into the snapshot"),
		field.Bool("focus_mode").
			Default(false).
			Comment("Focus-mode knob frozen into the snapshot"),
		field.JSON("cards", map[string]any{}).
			Comment("Card id to frozen memory state"),
		field.Bool("consumed").
			Default(false).
			Comment("Set once a batch has been reconciled"),
	}
}

func (OfflineSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("expires_at"),
		index.Fields("consumed"),
	}
}
