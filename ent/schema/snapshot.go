package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures the full player profile at a point in time. The latest
// snapshot is the profile; older ones are pruned.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence this snapshot is consistent with"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized profile state"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
	}
}
