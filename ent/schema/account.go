package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account is the per-learner record: profile, credentials, stats, the
// active roadmap and the roadmap history stack. One row per email.
type Account struct {
	ent.Schema
}

func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty(),
		field.String("first_name").NotEmpty(),
		field.String("last_name"),
		field.String("designation"),
		field.Enum("education_stage").
			Values("discovery", "direction", "commitment", "progression").
			Default("discovery"),
		field.Int("age").Default(0),
		field.String("password").
			Sensitive().
			Comment("Opaque credential string, exact-match on login. Local single-user store, no hashing."),
		field.JSON("stats", map[string]any{}).
			Comment("learner.Stats as JSON"),
		field.JSON("current_roadmap", map[string]any{}).
			Optional().
			Comment("Active roadmap.Roadmap as JSON; absent before the first assessment"),
		field.JSON("roadmap_history", []map[string]any{}).
			Optional().
			Comment("Superseded roadmaps, oldest first"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
	}
}
