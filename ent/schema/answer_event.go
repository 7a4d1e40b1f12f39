package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one submitted answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("quest_id").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("skill").
			NotEmpty().
			Comment("addition, subtraction, multiplication, division, word-problem"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy or medium"),
		field.Bool("correct"),
		field.Int("selected_index"),
		field.Int("correct_index"),
		field.Int64("elapsed_ms").
			Default(0),
		field.Int("hints_used").
			Default(0),
		field.Int("attempt").
			Default(1),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("skill"),
	}
}
