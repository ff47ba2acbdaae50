package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// AppSession holds the active session scalar: at most one row naming the
// signed-in account. Absent when logged out.
type AppSession struct {
	ent.Schema
}

func (AppSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").NotEmpty(),
		field.Time("started_at").
			Default(time.Now),
	}
}
