package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuestEvent records quest lifecycle transitions: started, completed,
// abandoned.
type QuestEvent struct {
	ent.Schema
}

func (QuestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quest session"),
		field.String("quest_id").
			NotEmpty(),
		field.String("title").
			Default(""),
		field.String("action").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.Int("answered").
			Default(0).
			Comment("Questions answered (abandoned only)"),
		field.Int("score").
			Default(0).
			Comment("Correct answers (completed only)"),
		field.Int("total").
			Default(0).
			Comment("Questions in the session"),
		field.Int("xp_reward").
			Default(0).
			Comment("XP awarded (completed only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration (completed only)"),
	}
}

func (QuestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("quest_id"),
		index.Fields("action"),
	}
}
