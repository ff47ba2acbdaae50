package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records a progression transition: step toggles, level
// changes, XP awards and badge unlocks.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").NotEmpty(),
		field.String("action").NotEmpty(),
		field.String("step_id").Optional().Nillable(),
		field.String("roadmap_title").Optional(),
		field.Int("nsqf_level").Default(0),
		field.Int("xp_delta").Default(0),
		field.String("badge_id").Optional().Nillable(),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("action"),
	}
}
